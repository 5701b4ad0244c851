// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package sipsp

// ViaVal is a parsed Via header value (rfc3261 §20.42):
// via-parm = sent-protocol LWS sent-by *( SEMI via-params )
// sent-protocol = protocol-name SLASH protocol-version SLASH transport
// sent-by = host [ COLON port ]
type ViaVal struct {
	Proto     Field // "SIP"
	Version   Field // "2.0"
	Transport Field // "UDP", "TCP", "TLS", "WS", "WSS", "SCTP", ...
	Host      Field
	Port      Field
	PortNo    uint16
	Params    Params
}

// ParseVia parses one comma-split Via header value.
func ParseVia(buf []byte) (ViaVal, ErrorHdr) {
	var v ViaVal
	start, end := trimSWS(buf, 0, len(buf))
	if start == end {
		return v, ErrHdrEmpty
	}
	i := start

	protoStart := i
	i = skipTokenDelim(buf, i, '/')
	if i >= end || buf[i] != '/' {
		return v, ErrHdrBadChar
	}
	v.Proto.Set(protoStart, i)
	i++

	verStart := i
	i = skipTokenDelim(buf, i, '/')
	if i >= end || buf[i] != '/' {
		return v, ErrHdrBadChar
	}
	v.Version.Set(verStart, i)
	i++

	transStart := i
	i = skipToken(buf, i)
	if i == transStart {
		return v, ErrHdrBadChar
	}
	v.Transport.Set(transStart, i)

	j, _, err := skipLWS(buf, i)
	if err != ErrHdrOk && err != ErrHdrEOH {
		return v, err
	}
	if j == i {
		return v, ErrHdrBadChar
	}
	i = j

	hStart := i
	if i < end && buf[i] == '[' {
		i++
		for i < end && buf[i] != ']' {
			i++
		}
		if i >= end {
			return v, ErrHdrBadChar
		}
		i++
		v.Host.Set(hStart, i)
	} else {
		for i < end && buf[i] != ':' && buf[i] != ';' && !IsWSP(buf[i]) &&
			buf[i] != '\r' && buf[i] != '\n' {
			i++
		}
		v.Host.Set(hStart, i)
	}
	if v.Host.Empty() {
		return v, ErrHdrBadChar
	}

	if i < end && buf[i] == ':' {
		i++
		portStart := i
		for i < end && IsDigit(buf[i]) {
			i++
		}
		if i == portStart {
			return v, ErrHdrBadChar
		}
		v.Port.Set(portStart, i)
		n, perr := parseUint(buf[portStart:i])
		if perr != ErrHdrOk {
			return v, perr
		}
		if n > 65535 {
			return v, ErrHdrBadChar
		}
		v.PortNo = uint16(n)
	}

	i = skipWS(buf, i)
	if i < end && buf[i] == ';' {
		params, pend, perr := ParseParams(buf, i)
		if perr != ErrHdrOk {
			return v, perr
		}
		if pend != end {
			return v, ErrHdrBadChar
		}
		v.Params = params
	} else if i != end {
		return v, ErrHdrBadChar
	}

	return v, ErrHdrOk
}

// Branch returns the via-branch parameter, if present.
func (v *ViaVal) Branch() ([]byte, bool) {
	val, has, ok := v.Params.Get("branch")
	return val, ok && has
}

// Received returns the via-received parameter, if present.
func (v *ViaVal) Received() ([]byte, bool) {
	val, has, ok := v.Params.Get("received")
	return val, ok && has
}

// RPort returns the rport parameter's numeric value. The bool is true
// only when rport carries a value (a response's filled-in port); a
// bare "rport" with no value, as sent by a request, returns false just
// like an absent parameter.
func (v *ViaVal) RPort() (uint16, bool, ErrorHdr) {
	val, has, ok := v.Params.Get("rport")
	if !ok {
		return 0, false, ErrHdrOk
	}
	if !has {
		return 0, false, ErrHdrOk
	}
	n, err := parseUint(val)
	if err != ErrHdrOk {
		return 0, true, err
	}
	if n > 65535 {
		return 0, true, ErrHdrBadChar
	}
	return uint16(n), true, ErrHdrOk
}

// Maddr returns the via-maddr parameter, if present.
func (v *ViaVal) Maddr() ([]byte, bool) {
	val, has, ok := v.Params.Get("maddr")
	return val, ok && has
}
