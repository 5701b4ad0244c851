// Copyright 2019-2020 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package sipsp

import "github.com/intuitivelabs/bytescase"

// HdrT identifies a SIP header's RFC-registered meaning. HdrOther
// covers every extension/unrecognized header name.
type HdrT uint8

const (
	HdrNone HdrT = iota
	HdrFrom
	HdrTo
	HdrCallID
	HdrCSeq
	HdrVia
	HdrContact
	HdrRoute
	HdrRecordRoute
	HdrMaxForwards
	HdrContentLength
	HdrExpires
	HdrMinExpires
	HdrAllow
	HdrSupported
	HdrRequire
	HdrProxyRequire
	HdrUnsupported
	HdrAllowEvents
	HdrContentEncoding
	HdrAcceptEncoding
	HdrContentLanguage
	HdrAcceptLanguage
	HdrContentType
	HdrAccept
	HdrContentDisposition
	HdrAuthorization
	HdrProxyAuthorization
	HdrWWWAuthenticate
	HdrProxyAuthenticate
	HdrAuthenticationInfo
	HdrDate
	HdrRetryAfter
	HdrWarning
	HdrInReplyTo
	HdrErrorInfo
	HdrAlertInfo
	HdrCallInfo
	HdrMIMEVersion
	HdrOrganization
	HdrSubject
	HdrServer
	HdrUserAgent
	HdrPriority
	HdrTimestamp
	HdrReplyTo
	HdrReferTo
	HdrReferredBy
	HdrOther // last: extension / unrecognized header
)

// commaFoldable reports whether repeated instances of this header, or
// multiple comma-separated values on one line, mean the same thing
// (rfc3261 §7.3.1) and so should be split/merged by the driver. The
// auth-scheme and other non-list headers are excluded: their internal
// commas (if any) separate credential fields, not repeated values, or
// their grammar simply has no list form to begin with.
func (h HdrT) commaFoldable() bool {
	switch h {
	case HdrAuthorization, HdrProxyAuthorization, HdrWWWAuthenticate,
		HdrProxyAuthenticate, HdrAuthenticationInfo,
		HdrDate, HdrOrganization, HdrSubject, HdrServer, HdrUserAgent,
		HdrPriority, HdrMIMEVersion, HdrCallID, HdrCSeq, HdrContentLength,
		HdrMaxForwards, HdrExpires, HdrMinExpires, HdrTimestamp,
		HdrRetryAfter, HdrContentType, HdrContentDisposition,
		HdrFrom, HdrTo, HdrReplyTo, HdrReferTo, HdrReferredBy:
		return false
	}
	return true
}

type hdrName2TypeEnt struct {
	n []byte
	t HdrT
}

// hdrNames is the canonical (long-form) name for every registered
// HdrT, indexed by HdrT itself.
var hdrNames = [HdrOther + 1][]byte{
	HdrFrom:                []byte("From"),
	HdrTo:                  []byte("To"),
	HdrCallID:              []byte("Call-ID"),
	HdrCSeq:                []byte("CSeq"),
	HdrVia:                 []byte("Via"),
	HdrContact:             []byte("Contact"),
	HdrRoute:               []byte("Route"),
	HdrRecordRoute:         []byte("Record-Route"),
	HdrMaxForwards:         []byte("Max-Forwards"),
	HdrContentLength:       []byte("Content-Length"),
	HdrExpires:             []byte("Expires"),
	HdrMinExpires:          []byte("Min-Expires"),
	HdrAllow:               []byte("Allow"),
	HdrSupported:           []byte("Supported"),
	HdrRequire:             []byte("Require"),
	HdrProxyRequire:        []byte("Proxy-Require"),
	HdrUnsupported:         []byte("Unsupported"),
	HdrAllowEvents:         []byte("Allow-Events"),
	HdrContentEncoding:     []byte("Content-Encoding"),
	HdrAcceptEncoding:      []byte("Accept-Encoding"),
	HdrContentLanguage:     []byte("Content-Language"),
	HdrAcceptLanguage:      []byte("Accept-Language"),
	HdrContentType:         []byte("Content-Type"),
	HdrAccept:              []byte("Accept"),
	HdrContentDisposition:  []byte("Content-Disposition"),
	HdrAuthorization:       []byte("Authorization"),
	HdrProxyAuthorization:  []byte("Proxy-Authorization"),
	HdrWWWAuthenticate:     []byte("WWW-Authenticate"),
	HdrProxyAuthenticate:   []byte("Proxy-Authenticate"),
	HdrAuthenticationInfo:  []byte("Authentication-Info"),
	HdrDate:                []byte("Date"),
	HdrRetryAfter:          []byte("Retry-After"),
	HdrWarning:             []byte("Warning"),
	HdrInReplyTo:           []byte("In-Reply-To"),
	HdrErrorInfo:           []byte("Error-Info"),
	HdrAlertInfo:           []byte("Alert-Info"),
	HdrCallInfo:            []byte("Call-Info"),
	HdrMIMEVersion:         []byte("MIME-Version"),
	HdrOrganization:        []byte("Organization"),
	HdrSubject:             []byte("Subject"),
	HdrServer:              []byte("Server"),
	HdrUserAgent:           []byte("User-Agent"),
	HdrPriority:            []byte("Priority"),
	HdrTimestamp:           []byte("Timestamp"),
	HdrReplyTo:             []byte("Reply-To"),
	HdrReferTo:             []byte("Refer-To"),
	HdrReferredBy:          []byte("Referred-By"),
}

// compactAlias maps the single-letter compact forms rfc3261 §7.3.3
// registers to the HdrT of their long-form equivalent.
var compactAlias = map[byte]HdrT{
	'f': HdrFrom,
	't': HdrTo,
	'm': HdrContact,
	'i': HdrCallID,
	'l': HdrContentLength,
	'c': HdrContentType,
	'k': HdrSupported,
	's': HdrSubject,
	'e': HdrContentEncoding,
	'v': HdrVia,
	'r': HdrReferTo,
	'b': HdrReferredBy,
	'u': HdrAllowEvents,
	// 'o' (Event, rfc6665) has no registered HdrT in this catalogue and
	// is left unmapped, routing "o:" to HdrOther like any other
	// unrecognized compact form.
}

// hdrBitsLen/hdrBitsFChar size the (lowercased first byte, length)
// bucket table below, the same scheme the header-name/method-name
// dispatch tables in this package use throughout.
const (
	hdrBitsLen   uint = 5
	hdrBitsFChar uint = 5
)

var hdrNameLookup [1 << (hdrBitsLen + hdrBitsFChar)][]hdrName2TypeEnt

func hashHdrName(n []byte) int {
	const (
		mC = (1 << hdrBitsFChar) - 1
		mL = (1 << hdrBitsLen) - 1
	)
	return (int(bytescase.ByteToLower(n[0])) & mC) |
		((len(n) & mL) << hdrBitsFChar)
}

func init() {
	for t := HdrFrom; t <= HdrReferredBy; t++ {
		n := hdrNames[t]
		if n == nil {
			continue
		}
		h := hashHdrName(n)
		hdrNameLookup[h] = append(hdrNameLookup[h], hdrName2TypeEnt{n, t})
	}
}

// CanonicalName returns the canonical (long-form) wire name for h, or
// "" for HdrNone/HdrOther (an extension header's own name travels with
// the parsed Header instead).
func (h HdrT) CanonicalName() string {
	if int(h) >= len(hdrNames) || hdrNames[h] == nil {
		return ""
	}
	return string(hdrNames[h])
}

// LookupHeaderName resolves a header name token -- compact or
// canonical, matched case-insensitively per rfc3261 §7.3.1 -- to its
// HdrT. It returns HdrOther for anything it doesn't recognize, which
// is not an error: extension headers are a normal, first-class result.
func LookupHeaderName(name []byte) HdrT {
	if len(name) == 0 {
		return HdrOther
	}
	if len(name) == 1 {
		if t, ok := compactAlias[bytescase.ByteToLower(name[0])]; ok {
			return t
		}
		return HdrOther
	}
	i := hashHdrName(name)
	for _, e := range hdrNameLookup[i] {
		if bytescase.CmpEq(name, e.n) {
			return e.t
		}
	}
	return HdrOther
}
