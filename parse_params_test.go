package sipsp

import "testing"

func TestSkipQuoted(t *testing.T) {
	cases := []struct {
		in    string
		wantI int
		wantE ErrorHdr
	}{
		{`simple"`, 7, ErrHdrOk},
		{`with \" escape"`, 15, ErrHdrOk},
		{`unterminated`, 12, ErrHdrUnterminatedQuoted},
		{"bad\rchar\"", 3, ErrHdrBadChar},
	}
	for _, c := range cases {
		i, err := SkipQuoted([]byte(c.in), 0)
		if err != c.wantE {
			t.Errorf("SkipQuoted(%q) err = %v, want %v", c.in, err, c.wantE)
			continue
		}
		if err == ErrHdrOk && i != c.wantI {
			t.Errorf("SkipQuoted(%q) = %d, want %d", c.in, i, c.wantI)
		}
	}
}

func TestParseParams(t *testing.T) {
	buf := []byte(`;transport=tcp;lr;branch="z9hG4bK776asdhds"`)
	p, end, err := ParseParams(buf, 0)
	if err != ErrHdrOk {
		t.Fatalf("ParseParams err = %v", err)
	}
	if end != len(buf) {
		t.Fatalf("ParseParams end = %d, want %d", end, len(buf))
	}
	if p.Len() != 3 {
		t.Fatalf("ParseParams Len = %d, want 3", p.Len())
	}
	if v, has, ok := p.Get("transport"); !ok || !has || string(v) != "tcp" {
		t.Errorf("Get(transport) = %q,%v,%v", v, has, ok)
	}
	if _, has, ok := p.Get("lr"); !ok || has {
		t.Errorf("Get(lr) = has %v ok %v, want has=false ok=true", has, ok)
	}
	if v, has, ok := p.Get("BRANCH"); !ok || !has || string(v) != "z9hG4bK776asdhds" {
		t.Errorf("Get(BRANCH) = %q,%v,%v", v, has, ok)
	}
	if !p.Has("lr") {
		t.Errorf("Has(lr) = false, want true")
	}
}

func TestParseParamsLastWins(t *testing.T) {
	buf := []byte(";foo=bar;foo=baz")
	p, _, err := ParseParams(buf, 0)
	if err != ErrHdrOk {
		t.Fatalf("ParseParams err = %v", err)
	}
	v, has, ok := p.Get("foo")
	if !ok || !has || string(v) != "baz" {
		t.Errorf("Get(foo) = %q,%v,%v, want baz,true,true", v, has, ok)
	}
}

func TestParseParamsNone(t *testing.T) {
	buf := []byte("no params here")
	p, end, err := ParseParams(buf, 0)
	if err != ErrHdrOk || end != 0 || p.Len() != 0 {
		t.Errorf("ParseParams(no params) = end %d err %v len %d", end, err, p.Len())
	}
}
