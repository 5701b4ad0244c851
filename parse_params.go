// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

// Code originally from intuitivelabs/https/parse_tok.go, reworked into a
// non-streaming, whole-buffer parser.

package sipsp

import "github.com/intuitivelabs/bytescase"

// SkipQuoted skips a quoted string, looking for the closing quote.
// It expects to be called with offs pointing _inside_ an open quote
// (right after the '"'). On success it returns the offset right after
// the closing quote. It handles backslash escapes and rejects raw CR,
// LF or DEL inside the quotes (rfc7230 3.2.6).
func SkipQuoted(buf []byte, offs int) (int, ErrorHdr) {
	i := offs
	for i < len(buf) {
		c := buf[i]
		switch c {
		case '"':
			return i + 1, ErrHdrOk
		case '\\':
			if i+1 >= len(buf) {
				return i, ErrHdrUnterminatedQuoted
			}
			if buf[i+1] == '\r' || buf[i+1] == '\n' {
				return i + 1, ErrHdrBadChar
			}
			i += 2
			continue
		case '\n', '\r', 0x7f:
			return i, ErrHdrBadChar
		default:
			if c < 0x21 && c != ' ' && c != '\t' {
				return i, ErrHdrBadChar
			}
		}
		i++
	}
	return i, ErrHdrUnterminatedQuoted
}

// Param is one ";name[=value]" entry from a generic parameter list.
// Quoted string values keep their Value field pointing inside the
// quotes, not including the delimiters.
type Param struct {
	Name   Field
	Value  Field
	HasVal bool
	Quoted bool
}

// Params is an ordered ";name[=value]" list with case-insensitive,
// last-occurrence-wins lookup (a later "foo=bar;foo=baz" makes Get
// return "baz", matching the rest of this package's duplicate-name
// resolution).
type Params struct {
	buf  []byte
	list []Param
}

// Len returns the number of parsed parameters, counting duplicates.
func (p *Params) Len() int { return len(p.list) }

// At returns the i'th parameter in source order.
func (p *Params) At(i int) Param { return p.list[i] }

// Get looks up name case-insensitively and returns the value of its
// last occurrence. ok is false if name was never present; found but
// valueless (";lr") returns ok=true, hasVal=false.
func (p *Params) Get(name string) (val []byte, hasVal bool, ok bool) {
	for i := len(p.list) - 1; i >= 0; i-- {
		n := p.list[i].Name.Get(p.buf)
		if bytescase.CmpEq(n, []byte(name)) {
			if p.list[i].HasVal {
				return p.list[i].Value.Get(p.buf), true, true
			}
			return nil, false, true
		}
	}
	return nil, false, false
}

// Has reports whether name is present at all (e.g. for flag-only
// parameters such as "lr" or "tag").
func (p *Params) Has(name string) bool {
	_, _, ok := p.Get(name)
	return ok
}

// ParseParams parses a ";name[=value]" list starting at offs, which
// must point at the leading ';' of the first parameter (or at the end
// of input/input not starting with ';', in which case it returns an
// empty Params and offs unchanged). It consumes up to len(buf),
// stopping early only on a syntax error. Values are either tokens or
// quoted strings; unescaping the quoted-pair backslashes is left to
// the caller, matching the zero-copy contract of the rest of this
// package.
func ParseParams(buf []byte, offs int) (Params, int, ErrorHdr) {
	res := Params{buf: buf}
	i := offs
	for {
		i = skipWS(buf, i)
		if i >= len(buf) || buf[i] != ';' {
			return res, i, ErrHdrOk
		}
		i++ // consume ';'
		i = skipWS(buf, i)
		if i >= len(buf) {
			return res, i, ErrHdrOk
		}
		if buf[i] == ';' {
			// empty parameter, allow and continue
			continue
		}
		nameStart := i
		for i < len(buf) && IsTokenChar(buf[i]) {
			i++
		}
		if i == nameStart {
			return res, i, ErrHdrBadChar
		}
		p := Param{}
		p.Name.Set(nameStart, i)
		i = skipWS(buf, i)
		if i < len(buf) && buf[i] == '=' {
			i++
			i = skipWS(buf, i)
			if i < len(buf) && buf[i] == '"' {
				i++
				valStart := i
				n, err := SkipQuoted(buf, i)
				if err != ErrHdrOk {
					return res, i, err
				}
				p.Value.Set(valStart, n-1)
				p.HasVal = true
				p.Quoted = true
				i = n
			} else {
				valStart := i
				for i < len(buf) && IsTokenChar(buf[i]) {
					i++
				}
				if i == valStart {
					return res, i, ErrHdrBadChar
				}
				p.Value.Set(valStart, i)
				p.HasVal = true
			}
		}
		res.list = append(res.list, p)
	}
}
