// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// ParseTokenListValue parses one comma-split value of a token-list
// header: Allow, Supported, Require, Proxy-Require, Unsupported,
// Allow-Events, Content-Encoding, Accept-Encoding, Content-Language
// and Accept-Language all share the "1#token"-family grammar
// (rfc3261 §§20.5, 20.32, 20.32, 20.34, 20.40, 20.4, 20.11, 20.2,
// 20.13, 20.3). The driver already split the comma-list; this just
// validates and trims one element.
func ParseTokenListValue(buf []byte) (Field, ErrorHdr) {
	var f Field
	start, end := trimSWS(buf, 0, len(buf))
	if start == end {
		return f, ErrHdrEmpty
	}
	for i := start; i < end; i++ {
		if !IsTokenChar(buf[i]) {
			return f, ErrHdrBadChar
		}
	}
	f.Set(start, end)
	return f, ErrHdrOk
}
