// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// ExtensionVal is the generic fallback parse for any header not in
// the RFC table (HdrOther): a token or quoted-string value, optionally
// followed by a generic parameter list, which covers the vast bulk of
// real-world extension headers (rfc3261 §20 "generic-param" grammar).
// Headers that don't fit this shape are still captured whole: on a
// grammar mismatch Value spans the entire trimmed segment and Params
// is left empty.
type ExtensionVal struct {
	Value  Field
	Quoted bool
	Params Params
}

// ParseExtension parses one comma-split extension-header value.
func ParseExtension(buf []byte) (ExtensionVal, ErrorHdr) {
	var v ExtensionVal
	start, end := trimSWS(buf, 0, len(buf))
	if start == end {
		v.Value.Set(start, end)
		return v, ErrHdrOk
	}
	i := start
	if buf[i] == '"' {
		i++
		valStart := i
		n, err := SkipQuoted(buf, i)
		if err != ErrHdrOk {
			v.Value.Set(start, end)
			return v, ErrHdrOk
		}
		v.Value.Set(valStart, n-1)
		v.Quoted = true
		i = n
	} else {
		valStart := i
		for i < end && IsTokenChar(buf[i]) {
			i++
		}
		if i == valStart {
			v.Value.Set(start, end)
			return v, ErrHdrOk
		}
		v.Value.Set(valStart, i)
	}

	i = skipWS(buf, i)
	if i == end {
		return v, ErrHdrOk
	}
	if buf[i] != ';' {
		v.Value.Set(start, end)
		v.Quoted = false
		return v, ErrHdrOk
	}
	params, pend, err := ParseParams(buf, i)
	if err != ErrHdrOk || pend != end {
		v.Value.Set(start, end)
		v.Quoted = false
		return v, ErrHdrOk
	}
	v.Params = params
	return v, ErrHdrOk
}
