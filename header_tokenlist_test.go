package sipsp

import "testing"

func TestParseTokenListValue(t *testing.T) {
	buf := []byte("INVITE")
	f, err := ParseTokenListValue(buf)
	if err != ErrHdrOk || string(f.Get(buf)) != "INVITE" {
		t.Fatalf("ParseTokenListValue = %q, err %v", f.Get(buf), err)
	}
}

func TestParseTokenListValueBadChar(t *testing.T) {
	if _, err := ParseTokenListValue([]byte("bad;char")); err != ErrHdrBadChar {
		t.Errorf("err = %v, want ErrHdrBadChar", err)
	}
}
