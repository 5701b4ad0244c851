// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// ParseHeaders is the header-collection driver: it walks a complete
// buffer of RFC 3261-style headers (e.g. the portion of a SIP message
// between the start-line and the body, or a standalone headers blob
// for testing), splitting it into name/value lines, joining
// CRLF-continued lines into one value (the folding whitespace stays in
// the value), comma-splitting the headers whose
// grammar allows a repeated value, and dispatching each resulting
// segment to the matching per-header parser. It stops at the first
// blank line (the CRLF that separates headers from a body) and
// returns the offset right after that CRLF as next, or len(buf) if
// the buffer ends without one.
func ParseHeaders(buf []byte) (hm *HeaderMap, next int, err *ParseError) {
	hm = NewHeaderMap()
	i := 0
	for i < len(buf) {
		if buf[i] == '\r' || buf[i] == '\n' {
			n, _, e := skipCRLF(buf, i)
			if e != ErrHdrOk {
				return hm, i, newErr(e, i)
			}
			return hm, n, nil
		}

		nameStart := i
		for i < len(buf) && IsTokenChar(buf[i]) {
			i++
		}
		if i == nameStart {
			return hm, i, newErr(ErrHdrBad, i)
		}
		nameEnd := i
		name := buf[nameStart:nameEnd]

		j := skipWS(buf, i)
		if j >= len(buf) || buf[j] != ':' {
			return hm, j, newErr(ErrHdrExpected, j)
		}
		j++

		valEnd, n, verr := scanHeaderValue(buf, j)
		if verr != ErrHdrOk {
			return hm, valEnd, newErr(verr, valEnd)
		}

		ht := LookupHeaderName(name)
		var nameField Field
		nameField.Set(nameStart, nameEnd)
		if perr := addHeaderLine(hm, buf, ht, nameField, j, valEnd); perr != ErrHdrOk {
			return hm, valEnd, newHdrErr(perr, valEnd, ht.CanonicalName())
		}

		i = n
	}
	return hm, i, nil
}

// scanHeaderValue finds the end of a (possibly folded) header value
// starting at start: the offset of the CR/LF that terminates it (not
// followed by WSP), and the offset right after that CRLF. Reaching
// the end of buf without a terminating CRLF is treated as an implicit
// end rather than an error, so a headers-only fixture with no final
// blank line still parses.
func scanHeaderValue(buf []byte, start int) (end int, next int, err ErrorHdr) {
	i := start
	for i < len(buf) {
		c := buf[i]
		if c == '\r' || c == '\n' {
			n, _, e := skipCRLF(buf, i)
			if e != ErrHdrOk {
				return i, i, e
			}
			if n < len(buf) && IsWSP(buf[n]) {
				i = n
				continue
			}
			return i, n, ErrHdrOk
		}
		i++
	}
	return i, i, ErrHdrOk
}

// addHeaderLine comma-splits (if applicable) and parses the header
// value at buf[valStart:valEnd], appending one Header per resulting
// value to hm. name is the wire header name's Field, already resolved
// against buf.
func addHeaderLine(hm *HeaderMap, buf []byte, ht HdrT, name Field, valStart, valEnd int) ErrorHdr {
	if !ht.commaFoldable() {
		return addHeaderValue(hm, buf, ht, name, valStart, valEnd)
	}
	for _, seg := range splitCommaSegments(buf, valStart, valEnd) {
		if err := addHeaderValue(hm, buf, ht, name, int(seg.Offs), seg.End()); err != ErrHdrOk {
			return err
		}
	}
	return ErrHdrOk
}

func addHeaderValue(hm *HeaderMap, buf []byte, ht HdrT, name Field, start, end int) ErrorHdr {
	hv, err := parseHeaderValue(ht, buf[start:end])
	if err != ErrHdrOk {
		return err
	}
	hv.Raw.Set(start, end)
	h := Header{Type: ht, Name: name, Value: hv}
	hm.add(h, name.Get(buf))
	return ErrHdrOk
}

// parseHeaderValue dispatches a single already-split header value
// segment to the parser matching its HdrT, wrapping the result in a
// HeaderValue. Segments have not been SWS-trimmed yet; every
// per-header parser trims its own bounds.
func parseHeaderValue(ht HdrT, seg []byte) (HeaderValue, ErrorHdr) {
	switch ht {
	case HdrFrom, HdrTo, HdrContact, HdrRoute, HdrRecordRoute,
		HdrReplyTo, HdrReferTo, HdrReferredBy:
		na, err := ParseNameAddr(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeNameAddr, Value: &na}, ErrHdrOk

	case HdrCallID:
		f, err := ParseCallID(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeToken, Value: f}, ErrHdrOk

	case HdrInReplyTo:
		c, err := ParseInReplyToEntry(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeCallID, Value: c}, ErrHdrOk

	case HdrCSeq:
		c, err := ParseCSeq(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeCSeq, Value: c}, ErrHdrOk

	case HdrVia:
		vv, err := ParseVia(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeVia, Value: vv}, ErrHdrOk

	case HdrMaxForwards, HdrContentLength, HdrExpires, HdrMinExpires:
		u, err := ParseDigitHeader(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeUInt, Value: u}, ErrHdrOk

	case HdrAllow, HdrSupported, HdrRequire, HdrProxyRequire,
		HdrUnsupported, HdrAllowEvents, HdrContentEncoding,
		HdrAcceptEncoding, HdrContentLanguage, HdrAcceptLanguage:
		f, err := ParseTokenListValue(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeToken, Value: f}, ErrHdrOk

	case HdrContentType, HdrAccept:
		m, err := ParseMediaType(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeMediaType, Value: m}, ErrHdrOk

	case HdrContentDisposition:
		d, err := ParseDisposition(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeDisposition, Value: d}, ErrHdrOk

	case HdrAuthorization, HdrProxyAuthorization,
		HdrWWWAuthenticate, HdrProxyAuthenticate:
		a, err := ParseAuth(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeAuth, Value: a}, ErrHdrOk

	case HdrAuthenticationInfo:
		a, err := ParseAuthInfo(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeAuth, Value: a}, ErrHdrOk

	case HdrDate, HdrOrganization, HdrSubject, HdrServer,
		HdrUserAgent, HdrPriority:
		f, err := ParseFreeText(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeToken, Value: f}, ErrHdrOk

	case HdrRetryAfter:
		r, err := ParseRetryAfter(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeRetryAfter, Value: r}, ErrHdrOk

	case HdrWarning:
		w, err := ParseWarning(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeWarning, Value: w}, ErrHdrOk

	case HdrErrorInfo, HdrAlertInfo, HdrCallInfo:
		u, err := ParseURIRef(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeURIList, Value: u}, ErrHdrOk

	case HdrMIMEVersion:
		m, err := ParseMIMEVersion(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeMIMEVersion, Value: m}, ErrHdrOk

	case HdrTimestamp:
		t, err := ParseTimestamp(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeTimestamp, Value: t}, ErrHdrOk

	default: // HdrOther and any HdrT not given a dedicated engine
		e, err := ParseExtension(seg)
		if err != ErrHdrOk {
			return HeaderValue{}, err
		}
		return HeaderValue{VType: VTypeExtension, Value: e}, ErrHdrOk
	}
}

// splitCommaSegments splits buf[start:end] on top-level commas, for
// the headers whose grammar is a comma-separated list of repeated
// values (rfc3261 §7.3.1 / §25.1 "1#element"). A comma inside a
// quoted-string or an angle-bracketed addr-spec doesn't end a value
// (a URI's "maddr" or a display-name can legally contain one), so this
// tracks {TopLevel, InQuote, InAngle} while scanning rather than doing
// a plain bytes.Split.
func splitCommaSegments(buf []byte, start, end int) []Field {
	const (
		sTop = iota
		sQuote
		sAngle
	)
	var segs []Field
	state := sTop
	st := start
	for i := start; i < end; i++ {
		switch state {
		case sTop:
			switch buf[i] {
			case '"':
				state = sQuote
			case '<':
				state = sAngle
			case ',':
				var f Field
				f.Set(st, i)
				segs = append(segs, f)
				st = i + 1
			}
		case sQuote:
			switch buf[i] {
			case '\\':
				i++
			case '"':
				state = sTop
			}
		case sAngle:
			if buf[i] == '>' {
				state = sTop
			}
		}
	}
	var f Field
	f.Set(st, end)
	segs = append(segs, f)
	return segs
}
