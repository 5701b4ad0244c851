// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// WarningVal is a parsed Warning header value (rfc3261 §20.43):
// warn-code SP warn-agent SP warn-text, where warn-text is a
// quoted-string. This is one comma-split element of a Warning header,
// which itself is a list of these.
type WarningVal struct {
	Code    uint16
	CodeRaw Field
	Agent   Field
	Text    Field // inside the quotes, unescaped form left to caller
}

// ParseWarning parses one Warning header value.
func ParseWarning(buf []byte) (WarningVal, ErrorHdr) {
	var v WarningVal
	start, end := trimSWS(buf, 0, len(buf))
	if start == end {
		return v, ErrHdrEmpty
	}
	i := start
	codeStart := i
	for i < end && IsDigit(buf[i]) {
		i++
	}
	if i-codeStart != 3 {
		return v, ErrHdrValBad
	}
	v.CodeRaw.Set(codeStart, i)
	n, err := parseUint(buf[codeStart:i])
	if err != ErrHdrOk {
		return v, err
	}
	v.Code = uint16(n)

	j := skipWS(buf, i)
	if j == i {
		return v, ErrHdrBadChar
	}
	i = j
	agentStart := i
	for i < end && !IsWSP(buf[i]) {
		i++
	}
	if i == agentStart {
		return v, ErrHdrNoToken
	}
	v.Agent.Set(agentStart, i)

	j = skipWS(buf, i)
	if j == i || j >= end || buf[j] != '"' {
		return v, ErrHdrBadChar
	}
	i = j + 1
	textStart := i
	n2, qerr := SkipQuoted(buf, i)
	if qerr != ErrHdrOk {
		return v, qerr
	}
	v.Text.Set(textStart, n2-1)
	if n2 != end {
		return v, ErrHdrBadChar
	}
	return v, ErrHdrOk
}
