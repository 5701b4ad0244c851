// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// The scanners in this file operate on a buffer that is always complete:
// there is no "more bytes needed" state to carry across calls, unlike the
// teacher's streaming equivalents. Reaching the end of buf while looking
// for a CRLF or closing delimiter is itself the answer (ErrHdrEof), not a
// request to be called again later.

// skipCRLF skips over a CRLF, a lone CR or a lone LF at buf[offs].
// It returns the offset right after what it skipped and the length of
// what it skipped (1 or 2). If buf[offs] is neither CR nor LF, it
// returns ErrHdrNoCR.
func skipCRLF(buf []byte, offs int) (int, int, ErrorHdr) {
	if offs >= len(buf) {
		return offs, 0, ErrHdrEof
	}
	switch buf[offs] {
	case '\r':
		if offs+1 < len(buf) && buf[offs+1] == '\n' {
			return offs + 2, 2, ErrHdrOk
		}
		return offs + 1, 1, ErrHdrOk
	case '\n':
		return offs + 1, 1, ErrHdrOk
	}
	return offs, 0, ErrHdrNoCR
}

// skipLWS jumps over linear white space, folding "CRLF 1*WSP" into
// plain whitespace. It returns the offset right after the white space,
// or ErrHdrEOH plus the offset of the CR/LF that terminates the header
// (a CRLF not followed by WSP, or a CRLF immediately followed by
// buffer end).
func skipLWS(buf []byte, offs int) (int, int, ErrorHdr) {
	i := offs
	for i < len(buf) {
		c := buf[i]
		switch c {
		case ' ', '\t':
			i++
		case '\r', '\n':
			n, crl, err := skipCRLF(buf, i)
			if err != ErrHdrOk {
				return n, crl, err
			}
			if n >= len(buf) || !IsWSP(buf[n]) {
				return i, crl, ErrHdrEOH
			}
			i = n
		default:
			return i, 0, ErrHdrOk
		}
	}
	return i, 0, ErrHdrOk
}

// skipSWS is an alias for skipLWS kept for readability at call sites
// that are scanning separator whitespace rather than folded content.
func skipSWS(buf []byte, offs int) (int, int, ErrorHdr) {
	return skipLWS(buf, offs)
}

// skipWS jumps over simple (non-folding) white space: SP and HTAB only.
func skipWS(buf []byte, offs int) int {
	for offs < len(buf) && IsWSP(buf[offs]) {
		offs++
	}
	return offs
}

// skipToken jumps over non-white-space, non-CRLF octets.
func skipToken(buf []byte, offs int) int {
	for offs < len(buf) && !IsWSP(buf[offs]) && buf[offs] != '\r' && buf[offs] != '\n' {
		offs++
	}
	return offs
}

// skipTokenDelim is like skipToken but also stops at delim.
func skipTokenDelim(buf []byte, offs int, delim byte) int {
	for offs < len(buf) && !IsWSP(buf[offs]) &&
		buf[offs] != '\r' && buf[offs] != '\n' && buf[offs] != delim {
		offs++
	}
	return offs
}

// skipLine skips to the end of the current line (CR or LF) and then
// over the line terminator.
func skipLine(buf []byte, offs int) (int, int, ErrorHdr) {
	for offs < len(buf) && buf[offs] != '\n' && buf[offs] != '\r' {
		offs++
	}
	return skipCRLF(buf, offs)
}

// trimSWS trims leading and trailing linear white space (including
// folded CRLF WSP) from buf[start:end], returning the new bounds.
// Used by the free-text header engine, which must preserve internal
// folding verbatim while discarding only the outer whitespace.
func trimSWS(buf []byte, start, end int) (int, int) {
	for start < end && (IsWSP(buf[start]) || buf[start] == '\r' || buf[start] == '\n') {
		start++
	}
	for end > start && (IsWSP(buf[end-1]) || buf[end-1] == '\r' || buf[end-1] == '\n') {
		end--
	}
	return start, end
}
