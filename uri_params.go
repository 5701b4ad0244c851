// Copyright 2022 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// Well-known SIP-URI parameter names (rfc3261 19.1.1). These are the
// parameters the teacher's URIParamResolve() used to
// classify into numeric flags; here they back named accessors on
// SipURI instead, reusing the generic Params ordered-map rather than
// a parallel bespoke struct.
const (
	uriParamTransport = "transport"
	uriParamUser      = "user"
	uriParamMethod    = "method"
	uriParamTTL       = "ttl"
	uriParamMaddr     = "maddr"
	uriParamLR        = "lr"
)

// Transport returns the "transport" URI parameter value, if present.
func (u *SipURI) Transport(buf []byte) ([]byte, bool) {
	v, has, ok := u.Params.Get(uriParamTransport)
	return v, ok && has
}

// UserParam returns the "user" URI parameter value (e.g. "phone"), if
// present. Named UserParam to avoid colliding with the User field.
func (u *SipURI) UserParam(buf []byte) ([]byte, bool) {
	v, has, ok := u.Params.Get(uriParamUser)
	return v, ok && has
}

// Method returns the "method" URI parameter value, if present.
func (u *SipURI) Method(buf []byte) ([]byte, bool) {
	v, has, ok := u.Params.Get(uriParamMethod)
	return v, ok && has
}

// TTL returns the "ttl" URI parameter value, if present.
func (u *SipURI) TTL(buf []byte) ([]byte, bool) {
	v, has, ok := u.Params.Get(uriParamTTL)
	return v, ok && has
}

// Maddr returns the "maddr" URI parameter value, if present.
func (u *SipURI) Maddr(buf []byte) ([]byte, bool) {
	v, has, ok := u.Params.Get(uriParamMaddr)
	return v, ok && has
}

// LR reports whether the loose-routing "lr" URI parameter is present.
func (u *SipURI) LR() bool {
	return u.Params.Has(uriParamLR)
}
