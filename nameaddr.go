// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

import "bytes"

// NameAddr is the parsed value of a From/To/Contact/Route/Record-Route
// style header: [display-name] ("<" addr-spec ">" / addr-spec) *(;param).
// The display-name/angle-bracket split is, per rfc3261 20.10, "a common
// source of interoperability problems": a bare addr-spec with no "<>"
// can't unambiguously tell a trailing ";tag=x" apart from a URI
// parameter, so this parser resolves it the way every header that uses
// this grammar needs it resolved -- trailing ";params" after a bare
// addr-spec are always header parameters, never folded into the URI.
type NameAddr struct {
	Name   Field // display-name, quotes stripped; empty if none
	Star   bool  // Contact: * (no addr-spec at all)
	URI    SipURI
	Params Params
}

// offsetBy shifts every Field in u by delta, used when a SipURI was
// parsed out of a sub-slice of a larger buffer (the contents of a
// "<...>" pair) and its offsets need to be re-based onto the full
// buffer the caller is borrowing from.
func (u *SipURI) offsetBy(delta int) {
	u.Scheme.Offs += OffsT(delta)
	if !u.User.Empty() {
		u.User.Offs += OffsT(delta)
	}
	if !u.Pass.Empty() {
		u.Pass.Offs += OffsT(delta)
	}
	if !u.Host.Empty() {
		u.Host.Offs += OffsT(delta)
	}
	if !u.Port.Empty() {
		u.Port.Offs += OffsT(delta)
	}
	for i := range u.Params.list {
		u.Params.list[i].Name.Offs += OffsT(delta)
		if u.Params.list[i].HasVal {
			u.Params.list[i].Value.Offs += OffsT(delta)
		}
	}
	u.Params.buf = nil // re-based, caller must re-point it
	for i := range u.Headers.list {
		u.Headers.list[i].Name.Offs += OffsT(delta)
		if u.Headers.list[i].HasVal {
			u.Headers.list[i].Value.Offs += OffsT(delta)
		}
	}
	u.Headers.buf = nil
}

// ParseNameAddr parses buf (a single, already comma- and CRLF-split
// header value segment) as a name-addr or addr-spec. It consumes the
// whole of buf; there is no continuation state and no comma handling
// here, both of which are the header-collection driver's job.
func ParseNameAddr(buf []byte) (NameAddr, ErrorHdr) {
	var na NameAddr

	start, end := trimSWS(buf, 0, len(buf))
	if start == end {
		return na, ErrHdrEmpty
	}
	buf = buf[:end]
	i := start

	if buf[i] == '*' && i+1 == end {
		na.Star = true
		return na, ErrHdrOk
	}

	if buf[i] == '"' {
		i++
		nameStart := i
		n, err := SkipQuoted(buf, i)
		if err != ErrHdrOk {
			return na, err
		}
		na.Name.Set(nameStart, n-1)
		i = skipWS(buf, n)
		if i >= end || buf[i] != '<' {
			return na, ErrHdrBadChar
		}
		return na, parseAngleAddr(buf, i, end, &na)
	}

	if idx := bytes.IndexByte(buf[i:end], '<'); idx >= 0 {
		nameStart, nameEnd := trimSWS(buf, i, i+idx)
		if nameEnd > nameStart {
			na.Name.Set(nameStart, nameEnd)
		}
		return na, parseAngleAddr(buf, i+idx, end, &na)
	}

	// bare addr-spec: URI runs up to the first top-level ';', the rest
	// (if any) is the header parameter list.
	uriEnd := end
	if idx := bytes.IndexByte(buf[i:end], ';'); idx >= 0 {
		uriEnd = i + idx
	}
	uri, n, err := ParseURI(buf[i:uriEnd])
	if err != ErrHdrOk {
		return na, err
	}
	if n != uriEnd-i {
		return na, ErrHdrBadUri
	}
	uri.offsetBy(i)
	uri.Params.buf = buf
	uri.Headers.buf = buf
	na.URI = uri

	if uriEnd < end {
		params, pend, perr := ParseParams(buf, uriEnd)
		if perr != ErrHdrOk {
			return na, perr
		}
		if pend != end {
			return na, ErrHdrBadChar
		}
		na.Params = params
	}
	return na, ErrHdrOk
}

// parseAngleAddr parses the "<" addr-spec ">" *(;param) tail starting
// at the '<' offset lt, filling na.URI and na.Params. end is the
// (already SWS-trimmed) end of the whole segment.
func parseAngleAddr(buf []byte, lt, end int, na *NameAddr) ErrorHdr {
	gt := bytes.IndexByte(buf[lt+1:end], '>')
	if gt < 0 {
		return ErrHdrBadChar
	}
	gt += lt + 1
	uri, n, err := ParseURI(buf[lt+1 : gt])
	if err != ErrHdrOk {
		return err
	}
	if n != gt-(lt+1) {
		return ErrHdrBadUri
	}
	uri.offsetBy(lt + 1)
	uri.Params.buf = buf
	uri.Headers.buf = buf
	na.URI = uri

	i := skipWS(buf, gt+1)
	if i >= end {
		return ErrHdrOk
	}
	if buf[i] != ';' {
		return ErrHdrBadChar
	}
	params, pend, perr := ParseParams(buf, i)
	if perr != ErrHdrOk {
		return perr
	}
	if pend != end {
		return ErrHdrBadChar
	}
	na.Params = params
	return ErrHdrOk
}

// Tag returns the "tag" header parameter (From/To), if present.
func (na *NameAddr) Tag() ([]byte, bool) {
	v, has, ok := na.Params.Get("tag")
	return v, ok && has
}

// Q returns the Contact "q" parameter as a fixed-point *1000 value
// (e.g. "0.7" -> 700), matching the teacher's Q encoding.
func (na *NameAddr) Q() (uint16, bool, ErrorHdr) {
	v, has, ok := na.Params.Get("q")
	if !ok || !has {
		return 0, false, ErrHdrOk
	}
	dot := bytes.IndexByte(v, '.')
	var intPart, fracPart []byte
	if dot < 0 {
		intPart = v
	} else {
		intPart = v[:dot]
		fracPart = v[dot+1:]
		if len(fracPart) > 3 {
			return 0, true, ErrHdrValTooLong
		}
	}
	u, err := parseUint(intPart)
	if err != ErrHdrOk {
		return 0, true, err
	}
	var d uint64
	if len(fracPart) > 0 {
		d, err = parseUint(fracPart)
		if err != ErrHdrOk {
			return 0, true, err
		}
		switch len(fracPart) {
		case 1:
			d *= 100
		case 2:
			d *= 10
		}
	}
	if u > 1 || d > 999 || (u == 1 && d > 0) {
		return 0, true, ErrHdrValBad
	}
	return uint16(u*1000 + d), true, ErrHdrOk
}

// Expires returns the Contact "expires" parameter, clamped to the
// maximum uint32 value per rfc3261's expires grammar.
func (na *NameAddr) Expires() (uint32, bool, ErrorHdr) {
	v, has, ok := na.Params.Get("expires")
	if !ok || !has {
		return 0, false, ErrHdrOk
	}
	n, err := parseUint(v)
	if err != ErrHdrOk {
		return 0, true, err
	}
	if n > uint64(^uint32(0)) {
		return ^uint32(0), true, ErrHdrOk
	}
	return uint32(n), true, ErrHdrOk
}

// LR reports whether the Route/Record-Route "lr" parameter is present.
func (na *NameAddr) LR() bool {
	return na.Params.Has("lr")
}
