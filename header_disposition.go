// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// DispositionVal is a parsed Content-Disposition value (rfc3261
// §20.11): disp-type *(SEMI disp-param).
type DispositionVal struct {
	Type   Field
	Params Params
}

// ParseDisposition parses a Content-Disposition header value.
func ParseDisposition(buf []byte) (DispositionVal, ErrorHdr) {
	var v DispositionVal
	start, end := trimSWS(buf, 0, len(buf))
	if start == end {
		return v, ErrHdrEmpty
	}
	i := start
	for i < end && IsTokenChar(buf[i]) {
		i++
	}
	if i == start {
		return v, ErrHdrBadChar
	}
	v.Type.Set(start, i)

	i = skipWS(buf, i)
	if i == end {
		return v, ErrHdrOk
	}
	if buf[i] != ';' {
		return v, ErrHdrBadChar
	}
	params, pend, err := ParseParams(buf, i)
	if err != ErrHdrOk {
		return v, err
	}
	if pend != end {
		return v, ErrHdrBadChar
	}
	v.Params = params
	return v, ErrHdrOk
}

// Handling returns the "handling" disp-param, if present.
func (v *DispositionVal) Handling() ([]byte, bool) {
	val, has, ok := v.Params.Get("handling")
	return val, ok && has
}
