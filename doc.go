// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

// Package sipsp implements a zero-copy parser for SIP (rfc3261) header
// values.
//
// Every parsed structure borrows from the original input buffer through
// a Field (an offset/length pair); nothing is copied except small,
// fixed-size metadata. Callers keep the buffer alive as long as any
// parsed result is in use.
//
// ParseHeaders is the entry point: given a buffer positioned at the
// start of a header block, it scans line by line, folds CRLF-continued
// lines, splits comma-foldable header values at top level (respecting
// quoted strings and "<...>" URIs), dispatches each value to the
// matching per-header parser, and collects the results into a
// HeaderMap. Every per-header parser (ParseVia, ParseCSeq, ParseAuth,
// ...) can also be called directly on an already-isolated value.
//
// The package assumes the input is already fully buffered: there is no
// streaming or incremental-parse state, unlike the package this one is
// descended from.
package sipsp
