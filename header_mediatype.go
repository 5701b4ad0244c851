// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// MediaTypeVal is a parsed media-range: type "/" subtype *(SEMI
// param), shared by Content-Type (rfc3261 §20.15, single instance)
// and Accept (§20.1, comma-foldable list of media ranges).
type MediaTypeVal struct {
	Type    Field
	Subtype Field
	Params  Params
}

// ParseMediaType parses one media-range value.
func ParseMediaType(buf []byte) (MediaTypeVal, ErrorHdr) {
	var v MediaTypeVal
	start, end := trimSWS(buf, 0, len(buf))
	if start == end {
		return v, ErrHdrEmpty
	}
	i := start
	typeStart := i
	for i < end && buf[i] != '/' {
		if !IsTokenChar(buf[i]) {
			return v, ErrHdrBadChar
		}
		i++
	}
	if i == typeStart || i >= end {
		return v, ErrHdrBadChar
	}
	v.Type.Set(typeStart, i)
	i++ // consume '/'

	subStart := i
	for i < end && buf[i] != ';' && !IsWSP(buf[i]) {
		if !IsTokenChar(buf[i]) {
			break
		}
		i++
	}
	if i == subStart {
		return v, ErrHdrBadChar
	}
	v.Subtype.Set(subStart, i)

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
