package sipsp

import "testing"

func TestParseCSeq(t *testing.T) {
	buf := []byte("4711 INVITE")
	v, err := ParseCSeq(buf)
	if err != ErrHdrOk {
		t.Fatalf("ParseCSeq err = %v", err)
	}
	if v.Num != 4711 {
		t.Errorf("Num = %d, want 4711", v.Num)
	}
	if v.Method != MInvite {
		t.Errorf("Method = %v, want MInvite", v.Method)
	}
}

func TestParseCSeqExtensionMethod(t *testing.T) {
	v, err := ParseCSeq([]byte("1 FOOBAR"))
	if err != ErrHdrOk || v.Method != MOther {
		t.Fatalf("ParseCSeq = %+v, err %v", v, err)
	}
}

func TestParseCSeqBad(t *testing.T) {
	if _, err := ParseCSeq([]byte("abc INVITE")); err != ErrHdrValNotNumber {
		t.Errorf("err = %v, want ErrHdrValNotNumber", err)
	}
	if _, err := ParseCSeq([]byte("123")); err != ErrHdrBadChar {
		t.Errorf("err = %v, want ErrHdrBadChar", err)
	}
}
