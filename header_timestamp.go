// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// TimestampVal is a parsed Timestamp header value (rfc3261 §20.38):
// 1*(DIGIT) [ "." *(DIGIT) ] [ LWS delay ], where delay has the same
// shape as the timestamp itself.
type TimestampVal struct {
	Value Field // the request timestamp, digits and optional fraction
	Delay Field // optional round-trip delay, empty if absent
}

func scanTimestampNum(buf []byte, start, end int) int {
	i := start
	for i < end && IsDigit(buf[i]) {
		i++
	}
	if i < end && buf[i] == '.' {
		i++
		for i < end && IsDigit(buf[i]) {
			i++
		}
	}
	return i
}

// ParseTimestamp parses a Timestamp header value.
func ParseTimestamp(buf []byte) (TimestampVal, ErrorHdr) {
	var v TimestampVal
	start, end := trimSWS(buf, 0, len(buf))
	if start == end {
		return v, ErrHdrEmpty
	}
	if !IsDigit(buf[start]) {
		return v, ErrHdrValNotNumber
	}
	i := scanTimestampNum(buf, start, end)
	v.Value.Set(start, i)

	j := skipWS(buf, i)
	if j == i || j >= end {
		if i != end {
			return v, ErrHdrBadChar
		}
		return v, ErrHdrOk
	}
	if !IsDigit(buf[j]) {
		return v, ErrHdrBadChar
	}
	k := scanTimestampNum(buf, j, end)
	v.Delay.Set(j, k)
	if k != end {
		return v, ErrHdrBadChar
	}
	return v, ErrHdrOk
}
