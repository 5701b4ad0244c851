// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// URIRefVal is a parsed Error-Info/Alert-Info/Call-Info value
// (rfc3261 §§20.18, 20.4 (alert), 20.9): "<" absoluteURI ">" *(SEMI
// generic-param). The referenced URI isn't necessarily a sip:/sips:/
// tel: URI (a cid: or http: URL is common for Alert-Info/Call-Info),
// so URI is kept as a raw span rather than run through ParseURI.
type URIRefVal struct {
	URI    Field
	Params Params
}

// ParseURIRef parses one comma-split Error-Info/Alert-Info/Call-Info
// value.
func ParseURIRef(buf []byte) (URIRefVal, ErrorHdr) {
	var v URIRefVal
	start, end := trimSWS(buf, 0, len(buf))
	if start == end {
		return v, ErrHdrEmpty
	}
	if buf[start] != '<' {
		return v, ErrHdrBadChar
	}
	i := start + 1
	uriStart := i
	for i < end && buf[i] != '>' {
		i++
	}
	if i >= end {
		return v, ErrHdrBadChar
	}
	v.URI.Set(uriStart, i)
	i++

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

// Purpose returns the "purpose" generic-param, if present (used by
// both Alert-Info and Call-Info, e.g. purpose=icon/card/info).
func (v *URIRefVal) Purpose() ([]byte, bool) {
	val, has, ok := v.Params.Get("purpose")
	return val, ok && has
}
