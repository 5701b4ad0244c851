// Copyright 2019-2020 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by source-available license
// that can be found in the LICENSE file in the root of the source
// tree.

package sipsp

// OffsT is the type used for offsets and lengths inside a Field.
type OffsT uint32

// Field is a borrowed view into a buffer: an offset and a length.
// It never copies; Get(buf) re-slices buf to recover the bytes.
type Field struct {
	Offs OffsT
	Len  OffsT
}

// Set sets f to point to buf[start:end].
func (f *Field) Set(start, end int) {
	f.Offs = OffsT(start)
	f.Len = OffsT(end - start)
	if end < start {
		panic("sipsp: invalid field range")
	}
}

// Reset clears f back to the empty field.
func (f *Field) Reset() {
	*f = Field{}
}

// Extend grows f so that it ends at newEnd, keeping Offs unchanged.
func (f *Field) Extend(newEnd int) {
	if newEnd < int(f.Offs) {
		panic("sipsp: invalid field end offset")
	}
	f.Len = OffsT(newEnd) - f.Offs
}

// Empty returns true if f has zero length.
func (f Field) Empty() bool {
	return f.Len == 0
}

// End returns the offset immediately past f.
func (f Field) End() int {
	return int(f.Offs) + int(f.Len)
}

// Get returns the byte slice f refers to inside buf.
func (f Field) Get(buf []byte) []byte {
	return buf[f.Offs : f.Offs+f.Len]
}
