// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// VType discriminates the concrete type carried by HeaderValue.Value.
type VType uint8

const (
	VTypeNone VType = iota
	VTypeNameAddr
	VTypeUInt
	VTypeCSeq
	VTypeToken // Call-ID, token-list headers, free-text headers
	VTypeVia
	VTypeMediaType
	VTypeDisposition
	VTypeAuth
	VTypeRetryAfter
	VTypeWarning
	VTypeURIList
	VTypeMIMEVersion
	VTypeTimestamp
	VTypeExtension
	VTypeCallID // In-Reply-To's tagged {ID, Host?} entry
)

// Header is one parsed header-value instance: its RFC type (or
// HdrOther for an extension), the literal wire name it was found
// under (needed for HdrOther, and useful for logging even for
// registered headers), and the parsed value.
type Header struct {
	Type  HdrT
	Name  Field // wire header name, as it appeared (compact or long)
	Value HeaderValue
}

// HeaderValue is the parsed content of a single header-value instance
// (one comma-split segment). Raw borrows the exact span of buf the
// value was parsed from, surrounding SWS and any line-folding CRLFs
// included; Value carries the type-specific parse result
// (see VType for which concrete type to expect).
type HeaderValue struct {
	VType VType
	Raw   Field
	Value interface{}
}

// NameAddr type-asserts Value as *NameAddr, for From/To/Contact/Route/
// Record-Route/Reply-To/Refer-To/Referred-By.
func (v *HeaderValue) NameAddr() (*NameAddr, bool) {
	na, ok := v.Value.(*NameAddr)
	return na, ok
}

// UInt type-asserts Value as UIntVal, for Content-Length/Max-Forwards/
// Expires/Min-Expires.
func (v *HeaderValue) UInt() (UIntVal, bool) {
	u, ok := v.Value.(UIntVal)
	return u, ok
}

// Token type-asserts Value as Field, for Call-ID, the token-list
// headers and the free-text headers.
func (v *HeaderValue) Token() (Field, bool) {
	f, ok := v.Value.(Field)
	return f, ok
}

// CSeq type-asserts Value as CSeqVal.
func (v *HeaderValue) CSeq() (CSeqVal, bool) {
	c, ok := v.Value.(CSeqVal)
	return c, ok
}

// Via type-asserts Value as ViaVal.
func (v *HeaderValue) Via() (ViaVal, bool) {
	vv, ok := v.Value.(ViaVal)
	return vv, ok
}

// MediaType type-asserts Value as MediaTypeVal, for Content-Type/Accept.
func (v *HeaderValue) MediaType() (MediaTypeVal, bool) {
	m, ok := v.Value.(MediaTypeVal)
	return m, ok
}

// Disposition type-asserts Value as DispositionVal.
func (v *HeaderValue) Disposition() (DispositionVal, bool) {
	d, ok := v.Value.(DispositionVal)
	return d, ok
}

// Auth type-asserts Value as AuthVal, for the Authorization family.
func (v *HeaderValue) Auth() (AuthVal, bool) {
	a, ok := v.Value.(AuthVal)
	return a, ok
}

// RetryAfter type-asserts Value as RetryAfterVal.
func (v *HeaderValue) RetryAfter() (RetryAfterVal, bool) {
	r, ok := v.Value.(RetryAfterVal)
	return r, ok
}

// Warning type-asserts Value as WarningVal.
func (v *HeaderValue) Warning() (WarningVal, bool) {
	w, ok := v.Value.(WarningVal)
	return w, ok
}

// URIRef type-asserts Value as URIRefVal, for Error-Info/Alert-Info/
// Call-Info.
func (v *HeaderValue) URIRef() (URIRefVal, bool) {
	u, ok := v.Value.(URIRefVal)
	return u, ok
}

// MIMEVersion type-asserts Value as MIMEVersionVal.
func (v *HeaderValue) MIMEVersion() (MIMEVersionVal, bool) {
	m, ok := v.Value.(MIMEVersionVal)
	return m, ok
}

// Timestamp type-asserts Value as TimestampVal.
func (v *HeaderValue) Timestamp() (TimestampVal, bool) {
	t, ok := v.Value.(TimestampVal)
	return t, ok
}

// Extension type-asserts Value as ExtensionVal, for HdrOther.
func (v *HeaderValue) Extension() (ExtensionVal, bool) {
	e, ok := v.Value.(ExtensionVal)
	return e, ok
}

// CallID type-asserts Value as CallIDVal, for In-Reply-To's tagged
// {ID, Host?} entries.
func (v *HeaderValue) CallID() (CallIDVal, bool) {
	c, ok := v.Value.(CallIDVal)
	return c, ok
}
