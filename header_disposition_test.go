package sipsp

import "testing"

func TestParseDisposition(t *testing.T) {
	buf := []byte("session;handling=optional")
	v, err := ParseDisposition(buf)
	if err != ErrHdrOk {
		t.Fatalf("ParseDisposition err = %v", err)
	}
	if string(v.Type.Get(buf)) != "session" {
		t.Errorf("Type = %q", v.Type.Get(buf))
	}
	if h, ok := v.Handling(); !ok || string(h) != "optional" {
		t.Errorf("Handling() = %q,%v", h, ok)
	}
}
