// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

import "github.com/intuitivelabs/bytescase"

// AuthVal is a parsed Authorization/Proxy-Authorization/WWW-Authenticate/
// Proxy-Authenticate/Authentication-Info value (rfc3261 §§20.7-20.8,
// 20.27-20.28, 20.6): auth-scheme LWS auth-param *(COMMA auth-param).
// Authentication-Info has no leading auth-scheme; callers that know
// they're parsing one should skip Scheme and go straight to Params via
// ParseAuthInfo.
type AuthVal struct {
	Scheme Field
	Params Params
}

// skipAuthWS skips simple or folded whitespace ahead of i, the way
// every other multi-line-aware header parser in this package does --
// auth-param lists fold across lines in real traffic just like any
// other header value, so a bare skipWS would stop dead at the '\r' of
// a fold and misread the rest of the credential list as malformed.
func skipAuthWS(buf []byte, i int) (int, ErrorHdr) {
	j, _, err := skipLWS(buf, i)
	if err != ErrHdrOk && err != ErrHdrEOH {
		return i, err
	}
	return j, ErrHdrOk
}

// parseAuthParams parses a COMMA-separated list of auth-param entries
// (name "=" (token / quoted-string)) starting at offs, unlike
// ParseParams which is SEMI-separated and allows valueless flags.
func parseAuthParams(buf []byte, offs, end int) (Params, ErrorHdr) {
	res := Params{buf: buf}
	i := offs
	for {
		j, err := skipAuthWS(buf, i)
		if err != ErrHdrOk {
			return res, err
		}
		i = j
		if i >= end {
			break
		}
		nameStart := i
		for i < end && IsTokenChar(buf[i]) {
			i++
		}
		if i == nameStart {
			return res, ErrHdrBadChar
		}
		p := Param{}
		p.Name.Set(nameStart, i)
		j, err = skipAuthWS(buf, i)
		if err != ErrHdrOk {
			return res, err
		}
		i = j
		if i >= end || buf[i] != '=' {
			return res, ErrHdrExpected
		}
		i++
		j, err = skipAuthWS(buf, i)
		if err != ErrHdrOk {
			return res, err
		}
		i = j
		if i < end && buf[i] == '"' {
			i++
			valStart := i
			n, qerr := SkipQuoted(buf, i)
			if qerr != ErrHdrOk {
				return res, qerr
			}
			p.Value.Set(valStart, n-1)
			p.HasVal = true
			p.Quoted = true
			i = n
		} else {
			valStart := i
			for i < end && IsTokenChar(buf[i]) {
				i++
			}
			if i == valStart {
				return res, ErrHdrBadChar
			}
			p.Value.Set(valStart, i)
			p.HasVal = true
		}
		res.list = append(res.list, p)
		j, err = skipAuthWS(buf, i)
		if err != ErrHdrOk {
			return res, err
		}
		i = j
		if i >= end {
			break
		}
		if buf[i] != ',' {
			return res, ErrHdrBadChar
		}
		i++
	}
	return res, ErrHdrOk
}

// ParseAuth parses an Authorization/Proxy-Authorization/WWW-Authenticate/
// Proxy-Authenticate value: auth-scheme LWS #auth-param.
func ParseAuth(buf []byte) (AuthVal, ErrorHdr) {
	var v AuthVal
	start, end := trimSWS(buf, 0, len(buf))
	if start == end {
		return v, ErrHdrEmpty
	}
	i := start
	schemeStart := i
	for i < end && IsTokenChar(buf[i]) {
		i++
	}
	if i == schemeStart {
		return v, ErrHdrBadChar
	}
	v.Scheme.Set(schemeStart, i)

	j, _, err := skipLWS(buf, i)
	if err != ErrHdrOk && err != ErrHdrEOH {
		return v, err
	}
	if j == i {
		return v, ErrHdrBadChar
	}
	params, perr := parseAuthParams(buf, j, end)
	if perr != ErrHdrOk {
		return v, perr
	}
	v.Params = params
	return v, ErrHdrOk
}

// ParseAuthInfo parses an Authentication-Info value: #auth-param, with
// no leading auth-scheme (rfc3261 §20.6).
func ParseAuthInfo(buf []byte) (AuthVal, ErrorHdr) {
	var v AuthVal
	start, end := trimSWS(buf, 0, len(buf))
	if start == end {
		return v, ErrHdrEmpty
	}
	params, err := parseAuthParams(buf, start, end)
	if err != ErrHdrOk {
		return v, err
	}
	v.Params = params
	return v, ErrHdrOk
}

// Realm returns the "realm" auth-param, if present.
func (v *AuthVal) Realm() ([]byte, bool) {
	val, has, ok := v.Params.Get("realm")
	return val, ok && has
}

// Nonce returns the "nonce" auth-param, if present.
func (v *AuthVal) Nonce() ([]byte, bool) {
	val, has, ok := v.Params.Get("nonce")
	return val, ok && has
}

// Username returns the "username" auth-param, if present.
func (v *AuthVal) Username() ([]byte, bool) {
	val, has, ok := v.Params.Get("username")
	return val, ok && has
}

// Algorithm returns the "algorithm" auth-param, if present.
func (v *AuthVal) Algorithm() ([]byte, bool) {
	val, has, ok := v.Params.Get("algorithm")
	return val, ok && has
}

// Qop returns the "qop" auth-param, if present.
func (v *AuthVal) Qop() ([]byte, bool) {
	val, has, ok := v.Params.Get("qop")
	return val, ok && has
}

// Stale reports whether the "stale" auth-param is present and "true".
func (v *AuthVal) Stale() bool {
	val, has, ok := v.Params.Get("stale")
	return ok && has && bytescase.CmpEq(val, []byte("true"))
}
