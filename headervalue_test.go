package sipsp

import "testing"

func TestHeaderValueAccessors(t *testing.T) {
	var f Field
	f.Set(3, 7)

	hv := HeaderValue{VType: VTypeToken, Value: f}
	tok, ok := hv.Token()
	if !ok || tok != f {
		t.Errorf("Token() = %v,%v", tok, ok)
	}
	if _, ok := hv.CSeq(); ok {
		t.Errorf("CSeq() on a Token value should fail the type assertion")
	}

	cs := CSeqVal{Num: 42}
	hv2 := HeaderValue{VType: VTypeCSeq, Value: cs}
	got, ok := hv2.CSeq()
	if !ok || got.Num != 42 {
		t.Errorf("CSeq() = %+v,%v", got, ok)
	}

	uv := UIntVal{Val: 1700}
	hv3 := HeaderValue{VType: VTypeUInt, Value: uv}
	u, ok := hv3.UInt()
	if !ok || u.Val != 1700 {
		t.Errorf("UInt() = %+v,%v", u, ok)
	}

	na := &NameAddr{}
	hv4 := HeaderValue{VType: VTypeNameAddr, Value: na}
	n, ok := hv4.NameAddr()
	if !ok || n != na {
		t.Errorf("NameAddr() = %v,%v", n, ok)
	}

	ev := ExtensionVal{Quoted: true}
	hv5 := HeaderValue{VType: VTypeExtension, Value: ev}
	e, ok := hv5.Extension()
	if !ok || !e.Quoted {
		t.Errorf("Extension() = %+v,%v", e, ok)
	}

	cid := CallIDVal{HasHost: true}
	hv6 := HeaderValue{VType: VTypeCallID, Value: cid}
	c, ok := hv6.CallID()
	if !ok || !c.HasHost {
		t.Errorf("CallID() = %+v,%v", c, ok)
	}
}

func TestHeaderStruct(t *testing.T) {
	var name Field
	name.Set(0, 4)
	h := Header{
		Type: HdrCallID,
		Name: name,
		Value: HeaderValue{
			VType: VTypeToken,
			Value: name,
		},
	}
	if h.Type != HdrCallID {
		t.Errorf("Type = %v", h.Type)
	}
	buf := []byte("Call")
	if string(h.Name.Get(buf)) != "Call" {
		t.Errorf("Name = %q", h.Name.Get(buf))
	}
}
