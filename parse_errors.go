// // Copyright 2019-2020 Intuitive Labs GmbH. All rights reserved.
// //
// // Use of this source code is governed by source-available license
// // that can be found in the LICENSE file in the root of the source
// // tree.

package sipsp

// ErrorHdr is the type for the errors returned by header and URI parsing
// functions. It implements the error interface. The zero value is by
// convention a non-error, so to convert from ErrorHdr to error one
// should use: if (errHdr == 0) { return nil } else { return errHdr }
// (similar to syscall.Errno).
type ErrorHdr uint32

// Possible error values returned by the parsing functions in this package.
// They correspond to the error taxonomy of the SIP header grammar: an
// exhausted input, a missing token, a missing required literal, an
// unterminated quoted-string, a bad %-escape, a malformed URI, a
// header-specific grammar mismatch, or a framing-level error.
const (
	ErrHdrOk         ErrorHdr = iota // no error, equivalent to nil
	ErrHdrEOH                        // header end (CRLF not followed by WSP)
	ErrHdrEmpty                      // empty header (e.g. body start marker)
	ErrHdrMoreValues                 // more comma-separated values follow
	ErrHdrEof                        // input exhausted where more was needed
	ErrHdrNoCR                       // CR/LF expected, not found
	ErrHdrBadChar                    // invalid character for this grammar
	ErrHdrNoToken                    // expected a token, found none
	ErrHdrExpected                   // a required literal was absent
	ErrHdrParams                     // error parsing a parameter list
	ErrHdrBad                        // generic bad-header grammar mismatch
	ErrHdrValNotNumber               // expected digits, found non-digit
	ErrHdrValTooLong                 // value longer than the header allows
	ErrHdrValBad                     // malformed header value
	ErrHdrNumTooBig                  // numeric header value overflowed
	ErrHdrUnterminatedQuoted         // quoted-string never closed
	ErrHdrBadEscape                  // '%' not followed by 2 hex digits
	ErrHdrBadUri                     // URI syntax violation
	ErrHdrBadMessage                 // structural error above the header level
	ErrHdrBug                        // internal BUG while parsing
	ErrConvBug                       // error conversion BUG
)

// error values corresponding to each ErrorHdr value: this way the interface
// allocations are done only once.
// NOTE: keep in sync with the const block above.
var err2ErrorVal = [...]error{
	nil, // 0 corresponds to nil
	ErrHdrEOH,
	ErrHdrEmpty,
	ErrHdrMoreValues,
	ErrHdrEof,
	ErrHdrNoCR,
	ErrHdrBadChar,
	ErrHdrNoToken,
	ErrHdrExpected,
	ErrHdrParams,
	ErrHdrBad,
	ErrHdrValNotNumber,
	ErrHdrValTooLong,
	ErrHdrValBad,
	ErrHdrNumTooBig,
	ErrHdrUnterminatedQuoted,
	ErrHdrBadEscape,
	ErrHdrBadUri,
	ErrHdrBadMessage,
	ErrHdrBug,
	ErrConvBug,
}

var errHdrStr = [...]string{
	ErrHdrOk:                 "no error",
	ErrHdrEOH:                "end of header",
	ErrHdrEmpty:              "empty header",
	ErrHdrMoreValues:         "more header values present",
	ErrHdrEof:                "unexpected end of input",
	ErrHdrNoCR:               "CR or LF expected",
	ErrHdrBadChar:            "invalid character in header",
	ErrHdrNoToken:            "expected token, found none",
	ErrHdrExpected:           "expected literal not found",
	ErrHdrParams:             "error parsing header parameter",
	ErrHdrBad:                "bad header",
	ErrHdrValNotNumber:       "header value is not a number",
	ErrHdrValTooLong:         "header value is too long",
	ErrHdrValBad:             "bad header value",
	ErrHdrNumTooBig:          "numeric header value too big",
	ErrHdrUnterminatedQuoted: "unterminated quoted string",
	ErrHdrBadEscape:          "invalid %-escape",
	ErrHdrBadUri:             "invalid URI",
	ErrHdrBadMessage:         "invalid message structure",
	ErrHdrBug:                "internal BUG while parsing header",
	ErrConvBug:               "error conversion BUG",
}

// Error implements the error interface.
func (e ErrorHdr) Error() string {
	return errHdrStr[e]
}

// ErrorConv converts the ErrorHdr value to error.
// It uses "boxed" values to prevent runtime allocations.
func (e ErrorHdr) ErrorConv() error {
	if int(e) < len(err2ErrorVal) {
		return err2ErrorVal[e]
	}
	return ErrConvBug
}

// ParseError decorates an ErrorHdr with the byte offset it was detected at
// and, for header-specific grammar mismatches, the RFC header name that
// failed to parse. It carries no heap-allocated state beyond the two
// fields it stores, so constructing one never copies message data.
type ParseError struct {
	Err    ErrorHdr
	Offset int
	Header string // set only for header-grammar mismatches (HeaderFormat)
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Header != "" {
		return e.Header + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap allows errors.Is/errors.As to see through to the ErrorHdr code.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newErr builds a ParseError for a plain (non-header-specific) failure.
func newErr(err ErrorHdr, offs int) *ParseError {
	return &ParseError{Err: err, Offset: offs}
}

// newHdrErr builds a ParseError tagging the RFC header name under which
// the failure occurred (spec's HeaderFormat(rfc_name) error case).
func newHdrErr(err ErrorHdr, offs int, header string) *ParseError {
	return &ParseError{Err: err, Offset: offs, Header: header}
}
