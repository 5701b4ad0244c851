// Copyright 2019-2020 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package sipsp

import (
	"bytes"

	"github.com/intuitivelabs/bytescase"
)

// Method identifies a SIP request method, used by the CSeq header
// value.
type Method uint8

const (
	MUndef Method = iota
	MRegister
	MInvite
	MAck
	MBye
	MPrack
	MCancel
	MOptions
	MSubscribe
	MNotify
	MUpdate
	MInfo
	MRefer
	MPublish
	MMessage
	MOther // last, catch-all for extension methods
)

// method2Name translates a numeric Method to its ASCII token.
var method2Name = [MOther + 1][]byte{
	MUndef:     []byte(""),
	MInvite:    []byte("INVITE"),
	MAck:       []byte("ACK"),
	MBye:       []byte("BYE"),
	MCancel:    []byte("CANCEL"),
	MRegister:  []byte("REGISTER"),
	MPrack:     []byte("PRACK"),
	MOptions:   []byte("OPTIONS"),
	MUpdate:    []byte("UPDATE"),
	MSubscribe: []byte("SUBSCRIBE"),
	MNotify:    []byte("NOTIFY"),
	MInfo:      []byte("INFO"),
	MRefer:     []byte("REFER"),
	MPublish:   []byte("PUBLISH"),
	MMessage:   []byte("MESSAGE"),
	MOther:     []byte("OTHER"),
}

// Name returns the ASCII method token.
func (m Method) Name() []byte {
	if m > MOther {
		return method2Name[MUndef]
	}
	return method2Name[m]
}

func (m Method) String() string {
	return string(m.Name())
}

// GetMethodNo converts a method token to its numeric value. Method
// names are case sensitive per rfc3261's Method ABNF, so this is a
// plain byte comparison, unlike header-name lookup.
func GetMethodNo(buf []byte) Method {
	if len(buf) == 0 {
		return MOther
	}
	i := hashMthName(buf)
	for _, m := range mthNameLookup[i] {
		if bytes.Equal(buf, m.n) {
			return m.t
		}
	}
	return MOther
}

const (
	mthBitsLen   uint = 2
	mthBitsFChar uint = 3
)

type mth2Type struct {
	n []byte
	t Method
}

var mthNameLookup [1 << (mthBitsLen + mthBitsFChar)][]mth2Type

func hashMthName(n []byte) int {
	const (
		mC = (1 << mthBitsFChar) - 1
		mL = (1 << mthBitsLen) - 1
	)
	return (int(bytescase.ByteToLower(n[0])) & mC) |
		((len(n) & mL) << mthBitsFChar)
}

func init() {
	for i := MUndef + 1; i < MOther; i++ {
		h := hashMthName(method2Name[i])
		mthNameLookup[h] = append(mthNameLookup[h], mth2Type{method2Name[i], i})
	}
}
