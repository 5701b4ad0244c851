package sipsp

import "testing"

func TestParseMediaType(t *testing.T) {
	buf := []byte("application/sdp")
	v, err := ParseMediaType(buf)
	if err != ErrHdrOk {
		t.Fatalf("ParseMediaType err = %v", err)
	}
	if string(v.Type.Get(buf)) != "application" || string(v.Subtype.Get(buf)) != "sdp" {
		t.Errorf("type/subtype = %q/%q", v.Type.Get(buf), v.Subtype.Get(buf))
	}
}

func TestParseMediaTypeWithParams(t *testing.T) {
	buf := []byte("text/html;charset=ISO-8859-4")
	v, err := ParseMediaType(buf)
	if err != ErrHdrOk {
		t.Fatalf("ParseMediaType err = %v", err)
	}
	if val, has, ok := v.Params.Get("charset"); !ok || !has || string(val) != "ISO-8859-4" {
		t.Errorf("Params.Get(charset) = %q,%v,%v", val, has, ok)
	}
}

func TestParseMediaTypeBad(t *testing.T) {
	if _, err := ParseMediaType([]byte("noslash")); err != ErrHdrBadChar {
		t.Errorf("err = %v, want ErrHdrBadChar", err)
	}
}
