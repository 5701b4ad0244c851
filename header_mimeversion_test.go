package sipsp

import "testing"

func TestParseMIMEVersion(t *testing.T) {
	v, err := ParseMIMEVersion([]byte("1.0"))
	if err != ErrHdrOk || v.Major != 1 || v.Minor != 0 {
		t.Fatalf("ParseMIMEVersion = %+v, err %v", v, err)
	}
}

func TestParseMIMEVersionBad(t *testing.T) {
	if _, err := ParseMIMEVersion([]byte("1")); err != ErrHdrBadChar {
		t.Errorf("err = %v, want ErrHdrBadChar", err)
	}
}
