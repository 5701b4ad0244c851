// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// ParseDigitHeader parses the digit-only headers -- Content-Length,
// Max-Forwards, Expires and Min-Expires -- all of which share the
// 1*DIGIT grammar (rfc3261 §§20.14, 20.22, 20.19, 20.21). It is a thin
// adapter over parseUIntHeader so the driver can dispatch all four
// through one function keyed off HdrT.
func ParseDigitHeader(buf []byte) (UIntVal, ErrorHdr) {
	return parseUIntHeader(buf)
}
