// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

import "github.com/intuitivelabs/bytescase"

// HeaderMap collects every parsed header instance of a message,
// two-tier like the teacher's HdrLst: RFC-registered headers go in a
// fixed, HdrT-indexed slice-of-slices for O(1) lookup by type, while
// extension headers (HdrOther) are kept in a name-indexed map, since
// their set isn't known ahead of time.
type HeaderMap struct {
	rfc [HdrOther][]Header
	ext map[string][]Header
	n   int
}

// NewHeaderMap returns an empty, ready-to-use HeaderMap.
func NewHeaderMap() *HeaderMap {
	return &HeaderMap{}
}

// lowerKey returns a lowercased string copy of name, used as the map
// key for extension headers (bytescase only compares/copies into an
// existing []byte, it has no byte-slice-to-lowercase-string helper).
func lowerKey(name []byte) string {
	b := make([]byte, len(name))
	for i, c := range name {
		b[i] = bytescase.ByteToLower(c)
	}
	return string(b)
}

// add appends h to the map, routing it by h.Type. name is the literal
// wire header name (needed to key extension headers; RFC headers are
// already keyed by h.Type and ignore it).
func (m *HeaderMap) add(h Header, name []byte) {
	m.n++
	if h.Type != HdrOther {
		m.rfc[h.Type] = append(m.rfc[h.Type], h)
		return
	}
	if m.ext == nil {
		m.ext = make(map[string][]Header)
	}
	key := lowerKey(name)
	m.ext[key] = append(m.ext[key], h)
}

// Len returns the total number of parsed header instances, RFC and
// extension combined.
func (m *HeaderMap) Len() int { return m.n }

// Get returns every parsed instance of the RFC header t, in wire
// order. It returns nil for t == HdrNone/HdrOther; use GetExt for
// extension headers.
func (m *HeaderMap) Get(t HdrT) []Header {
	if t == HdrNone || t >= HdrOther {
		return nil
	}
	return m.rfc[t]
}

// GetFirst returns the first parsed instance of t, if any.
func (m *HeaderMap) GetFirst(t HdrT) (Header, bool) {
	l := m.Get(t)
	if len(l) == 0 {
		return Header{}, false
	}
	return l[0], true
}

// GetExt returns every parsed instance of the extension header named
// name (case-insensitive), in wire order.
func (m *HeaderMap) GetExt(name string) []Header {
	if m.ext == nil {
		return nil
	}
	return m.ext[lowerKey([]byte(name))]
}
