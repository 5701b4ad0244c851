package sipsp

import "testing"

func TestParseNameAddrAngle(t *testing.T) {
	buf := []byte(`"Alice Smith" <sip:alice@atlanta.com>;tag=1928301774`)
	na, err := ParseNameAddr(buf)
	if err != ErrHdrOk {
		t.Fatalf("ParseNameAddr err = %v", err)
	}
	if string(na.Name.Get(buf)) != "Alice Smith" {
		t.Errorf("Name = %q", na.Name.Get(buf))
	}
	if string(na.URI.User.Get(buf)) != "alice" {
		t.Errorf("URI.User = %q", na.URI.User.Get(buf))
	}
	if tag, ok := na.Tag(); !ok || string(tag) != "1928301774" {
		t.Errorf("Tag = %q,%v", tag, ok)
	}
}

func TestParseNameAddrBare(t *testing.T) {
	buf := []byte("sip:bob@biloxi.com;tag=a6c85cf")
	na, err := ParseNameAddr(buf)
	if err != ErrHdrOk {
		t.Fatalf("ParseNameAddr err = %v", err)
	}
	if na.Name.Len != 0 {
		t.Errorf("Name should be empty, got %q", na.Name.Get(buf))
	}
	if string(na.URI.Host.Get(buf)) != "biloxi.com" {
		t.Errorf("Host = %q", na.URI.Host.Get(buf))
	}
	if tag, ok := na.Tag(); !ok || string(tag) != "a6c85cf" {
		t.Errorf("Tag = %q,%v", tag, ok)
	}
}

func TestParseNameAddrUnquotedName(t *testing.T) {
	buf := []byte("Bob <sip:bob@biloxi.com>")
	na, err := ParseNameAddr(buf)
	if err != ErrHdrOk {
		t.Fatalf("ParseNameAddr err = %v", err)
	}
	if string(na.Name.Get(buf)) != "Bob" {
		t.Errorf("Name = %q", na.Name.Get(buf))
	}
}

func TestParseNameAddrStar(t *testing.T) {
	na, err := ParseNameAddr([]byte("*"))
	if err != ErrHdrOk || !na.Star {
		t.Fatalf("ParseNameAddr(*) = %+v, err %v", na, err)
	}
}

func TestParseNameAddrContactParams(t *testing.T) {
	buf := []byte("<sip:bob@192.0.2.4>;q=0.7;expires=3600")
	na, err := ParseNameAddr(buf)
	if err != ErrHdrOk {
		t.Fatalf("ParseNameAddr err = %v", err)
	}
	q, ok, qerr := na.Q()
	if qerr != ErrHdrOk || !ok || q != 700 {
		t.Errorf("Q() = %d,%v,%v, want 700,true,nil", q, ok, qerr)
	}
	exp, ok, experr := na.Expires()
	if experr != ErrHdrOk || !ok || exp != 3600 {
		t.Errorf("Expires() = %d,%v,%v, want 3600,true,nil", exp, ok, experr)
	}
}

func TestParseNameAddrMissingCloseAngle(t *testing.T) {
	_, err := ParseNameAddr([]byte("<sip:bob@biloxi.com"))
	if err != ErrHdrBadChar {
		t.Errorf("err = %v, want ErrHdrBadChar", err)
	}
}
