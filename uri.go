// Copyright 2022 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

import (
	"bytes"

	"github.com/intuitivelabs/bytescase"
)

// URIScheme identifies the scheme a SipURI was parsed with.
type URIScheme int8

const (
	InvalidURI URIScheme = iota
	SIPUri
	SIPSUri
	TELUri
)

func (s URIScheme) String() string {
	names := [...]string{"invalid", "sip", "sips", "tel"}
	if int(s) < 0 || int(s) >= len(names) {
		return "invalid"
	}
	return names[s]
}

// URIHeader is one "name[=value]" entry from a SIP-URI's "?h1=v1&h2" part.
type URIHeader struct {
	Name   Field
	Value  Field
	HasVal bool
}

// URIHeaders is the parsed, ordered "?h1=v1&h2=v2" component of a URI.
type URIHeaders struct {
	buf  []byte
	list []URIHeader
}

func (h *URIHeaders) Len() int          { return len(h.list) }
func (h *URIHeaders) At(i int) URIHeader { return h.list[i] }

// Get looks up a URI header name case-insensitively.
func (h *URIHeaders) Get(name string) (val []byte, ok bool) {
	for _, e := range h.list {
		if bytescase.CmpEq(e.Name.Get(h.buf), []byte(name)) {
			if e.HasVal {
				return e.Value.Get(h.buf), true
			}
			return nil, true
		}
	}
	return nil, false
}

// parseURIHeaders parses the "h1=v1&h2=v2" part after a SIP-URI's "?",
// consuming to the end of buf (the headers component is always last).
func parseURIHeaders(buf []byte, offs int) (URIHeaders, ErrorHdr) {
	res := URIHeaders{buf: buf}
	i := offs
	for i < len(buf) {
		nameStart := i
		for i < len(buf) && buf[i] != '=' && buf[i] != '&' {
			i++
		}
		if i == nameStart {
			return res, ErrHdrBadUri
		}
		h := URIHeader{}
		h.Name.Set(nameStart, i)
		if i < len(buf) && buf[i] == '=' {
			i++
			valStart := i
			for i < len(buf) && buf[i] != '&' {
				i++
			}
			h.Value.Set(valStart, i)
			h.HasVal = true
		}
		res.list = append(res.list, h)
		if i < len(buf) && buf[i] == '&' {
			i++
			continue
		}
	}
	return res, ErrHdrOk
}

// SipURI is a parsed sip:/sips:/tel: URI. All fields are borrowed
// slices into the buffer ParseURI was called with.
type SipURI struct {
	Type   URIScheme
	Scheme Field
	User   Field
	Pass   Field
	Host   Field
	Port   Field
	PortNo uint16
	Params Params
	Headers URIHeaders
}

// IsIPv4Host reports whether u.Host is an IPv4 literal.
func (u *SipURI) IsIPv4Host(buf []byte) bool {
	return IsIPv4Literal(u.Host.Get(buf))
}

// CmpShort compares two URIs up to and including the port, ignoring
// parameters and headers -- not a full rfc3261 19.1.4 comparison (that
// also requires matching user/ttl/method/maddr presence and headers),
// just a fast identity check useful for Route/Contact matching.
func CmpShort(u1 *SipURI, buf1 []byte, u2 *SipURI, buf2 []byte) bool {
	return u1.Type == u2.Type && u1.PortNo == u2.PortNo &&
		bytes.Equal(u1.User.Get(buf1), u2.User.Get(buf2)) &&
		bytes.Equal(u1.Pass.Get(buf1), u2.Pass.Get(buf2)) &&
		bytescase.CmpEq(u1.Host.Get(buf1), u2.Host.Get(buf2))
}

// ParseURI parses a sip:, sips: or tel: URI out of buf[0:]. On success
// it returns the parsed SipURI and the offset right after it (normally
// len(buf), since URI parsing is always handed a pre-sliced segment).
// ParseURI never copies: every Field in the result borrows buf. A '%'
// not followed by two hex digits fails with ErrHdrBadEscape.
func ParseURI(buf []byte) (SipURI, int, ErrorHdr) {
	const (
		schSIP  uint32 = 0x3a706973 // "sip:"
		schSIPS        = 0x73706973 // "sips"
		schTEL         = 0x3a6c6574 // "tel:"
	)

	const (
		uInit uint32 = iota
		uInitSIP
		uInitSIPS
		uInitTEL
		uUser
		uPass0
		uPass1
		uHost0
		uHost1
		uHost61
		uHost6E
		uPort
		uParam0
		uParam1
		uHeaders
	)

	var uri SipURI

	if len(buf) < 5 {
		return uri, len(buf), ErrHdrEof
	}
	sch := ((uint32(buf[3]) << 24) | (uint32(buf[2]) << 16) |
		(uint32(buf[1]) << 8) | uint32(buf[0])) | 0x20202020

	var state uint32
	var schLen int
	switch sch {
	case schSIP:
		uri.Type = SIPUri
		state = uInitSIP
		schLen = 3
	case schTEL:
		uri.Type = TELUri
		state = uInitTEL
		schLen = 3
	case schSIPS:
		if buf[4] != ':' {
			return uri, 4, ErrHdrBadUri
		}
		uri.Type = SIPSUri
		state = uInitSIPS
		schLen = 4
	default:
		return uri, 0, ErrHdrBadUri
	}
	uri.Scheme.Set(0, schLen+1)
	offs := schLen + 1

	for k := offs; k < len(buf); k++ {
		if buf[k] == '%' && (k+2 >= len(buf) ||
			!IsHexDigit(buf[k+1]) || !IsHexDigit(buf[k+2])) {
			return uri, k, ErrHdrBadEscape
		}
	}

	var s int
	var foundUser bool
	var passOffs int
	var portNo int
	var paramsStart int
	var headersStart int
	haveParams, haveHeaders := false, false

	i := offs
	var c byte
	for ; i < len(buf); i++ {
		c = buf[i]
		switch state {
		case uInitSIP, uInitSIPS, uInitTEL:
			switch c {
			case '[':
				state = uHost61
				s = i
			case ':', ']':
				return uri, i, ErrHdrBadUri
			default:
				state = uUser
				s = i
			}
		case uUser:
			switch c {
			case '@':
				uri.User.Set(s, i)
				state = uHost0
				foundUser = true
				s = i + 1
			case ':':
				uri.User.Set(s, i)
				state = uPass0
				s = i + 1
			case ';':
				uri.Host.Set(s, i)
				state = uParam0
				paramsStart = i
				s = i + 1
			case '?':
				uri.Host.Set(s, i)
				state = uHeaders
				headersStart = i + 1
				s = i + 1
			case '[', ']':
				return uri, i, ErrHdrBadUri
			}
		case uPass0:
			switch c {
			case '@':
				uri.Pass.Set(s, i)
				portNo = 0
				state = uHost0
				foundUser = true
				s = i + 1
			case ';', '?':
				uri.Port.Set(s, i)
				if portNo > 65535 {
					return uri, i, ErrHdrBadUri
				}
				uri.PortNo = uint16(portNo)
				uri.Host = uri.User
				uri.User.Reset()
				foundUser = true
				s = i + 1
				if c == ';' {
					state = uParam0
					paramsStart = i
				} else {
					state = uHeaders
					headersStart = i + 1
				}
			case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
				portNo = portNo*10 + int(c-'0')
			case '[', ']', ':':
				return uri, i, ErrHdrBadUri
			default:
				portNo = 0
				state = uPass1
			}
		case uPass1:
			switch c {
			case '@':
				uri.Pass.Set(s, i)
				state = uHost0
				foundUser = true
				s = i + 1
			case ';', '?', '[', ']', ':':
				return uri, i, ErrHdrBadUri
			}
		case uHost0:
			switch c {
			case '[':
				state = uHost61
			case ':', ';', '?', '&', '@':
				return uri, i, ErrHdrBadUri
			default:
				state = uHost1
			}
		case uHost1:
			switch c {
			case ':':
				uri.Host.Set(s, i)
				state = uPort
				s = i + 1
			case ';':
				uri.Host.Set(s, i)
				state = uParam0
				paramsStart = i
				s = i + 1
			case '?':
				uri.Host.Set(s, i)
				state = uHeaders
				headersStart = i + 1
				s = i + 1
			case '&', '@':
				return uri, i, ErrHdrBadUri
			}
		case uHost61:
			switch c {
			case ']':
				state = uHost6E
			case '[', '@', ';', '?', '&':
				return uri, i, ErrHdrBadUri
			}
		case uHost6E:
			switch c {
			case ':':
				uri.Host.Set(s, i)
				state = uPort
				s = i + 1
			case ';':
				uri.Host.Set(s, i)
				state = uParam0
				paramsStart = i
				s = i + 1
			case '?':
				uri.Host.Set(s, i)
				state = uHeaders
				headersStart = i + 1
				s = i + 1
			default:
				return uri, i, ErrHdrBadUri
			}
		case uPort:
			switch c {
			case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
				portNo = portNo*10 + int(c-'0')
			case ';':
				uri.Port.Set(s, i)
				if portNo > 65535 {
					return uri, i, ErrHdrBadUri
				}
				uri.PortNo = uint16(portNo)
				state = uParam0
				paramsStart = i
				s = i + 1
			case '?':
				uri.Port.Set(s, i)
				if portNo > 65535 {
					return uri, i, ErrHdrBadUri
				}
				uri.PortNo = uint16(portNo)
				state = uHeaders
				headersStart = i + 1
				s = i + 1
			default:
				return uri, i, ErrHdrBadUri
			}
		case uParam0, uParam1:
			switch c {
			case '@':
				if foundUser {
					return uri, i, ErrHdrBadUri
				}
				if passOffs != 0 {
					uri.User.Set(int(uri.Host.Offs), passOffs)
					uri.Pass.Set(passOffs+1, i)
				} else {
					uri.User.Set(int(uri.Host.Offs), i)
					uri.Pass.Reset()
				}
				foundUser = true
				state = uHost0
				s = i + 1
				uri.Host.Reset()
				uri.Port.Reset()
				uri.PortNo = 0
				haveParams, haveHeaders = false, false
			case ':':
				if !foundUser {
					if passOffs != 0 {
						foundUser = true
						passOffs = 0
					} else {
						passOffs = i
					}
				}
				state = uParam1
			case ';':
				if passOffs != 0 {
					passOffs = 0
					foundUser = true
				}
				state = uParam0
			case '?':
				haveParams = true
				state = uHeaders
				headersStart = i + 1
				s = i + 1
				if passOffs != 0 {
					passOffs = 0
					foundUser = true
				}
			default:
				state = uParam1
			}
		case uHeaders:
			switch c {
			case '@':
				if foundUser {
					return uri, i, ErrHdrBadUri
				}
				if passOffs != 0 {
					uri.User.Set(int(uri.Host.Offs), passOffs)
					uri.Pass.Set(passOffs+1, i)
				} else {
					uri.User.Set(int(uri.Host.Offs), i)
					uri.Pass.Reset()
				}
				foundUser = true
				state = uHost0
				s = i + 1
				uri.Host.Reset()
				uri.Port.Reset()
				uri.PortNo = 0
				haveParams, haveHeaders = false, false
			case ';':
				if foundUser || passOffs != 0 {
					return uri, i, ErrHdrBadUri
				}
			case ':':
				if !foundUser {
					if passOffs != 0 {
						foundUser = true
						passOffs = 0
					} else {
						passOffs = i
					}
				}
			case '?':
				if passOffs != 0 {
					foundUser = true
					passOffs = 0
				}
			}
		}
	}
	switch state {
	case uInit, uInitTEL, uInitSIP, uInitSIPS:
		return uri, i, ErrHdrEof
	case uUser:
		if foundUser {
			return uri, i, ErrHdrBadUri
		}
		uri.Host.Set(s, i)
	case uPass0, uPass1:
		if foundUser || state == uPass1 {
			return uri, i, ErrHdrBadUri
		}
		uri.Port.Set(s, i)
		if portNo > 65535 {
			return uri, i, ErrHdrBadUri
		}
		uri.PortNo = uint16(portNo)
		uri.Host = uri.User
		uri.User.Reset()
	case uHost1, uHost6E:
		uri.Host.Set(s, i)
	case uHost0, uHost61:
		return uri, i, ErrHdrBadUri
	case uPort:
		uri.Port.Set(s, i)
		if portNo > 65535 {
			return uri, i, ErrHdrBadUri
		}
		uri.PortNo = uint16(portNo)
	case uParam0, uParam1:
		haveParams = true
	case uHeaders:
		haveHeaders = true
	}

	if uri.Type == TELUri {
		uri.User = uri.Host
		uri.Host.Reset()
	}

	if haveParams {
		params, _, err := ParseParams(buf, paramsStart)
		if err != ErrHdrOk {
			return uri, i, err
		}
		uri.Params = params
	}
	if haveHeaders {
		hdrs, err := parseURIHeaders(buf, headersStart)
		if err != ErrHdrOk {
			return uri, i, err
		}
		uri.Headers = hdrs
	}

	return uri, i, ErrHdrOk
}
