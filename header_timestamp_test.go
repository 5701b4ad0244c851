package sipsp

import "testing"

func TestParseTimestamp(t *testing.T) {
	v, err := ParseTimestamp([]byte("54.3 2.1"))
	if err != ErrHdrOk {
		t.Fatalf("ParseTimestamp err = %v", err)
	}
	buf := []byte("54.3 2.1")
	if string(v.Value.Get(buf)) != "54.3" {
		t.Errorf("Value = %q", v.Value.Get(buf))
	}
	if string(v.Delay.Get(buf)) != "2.1" {
		t.Errorf("Delay = %q", v.Delay.Get(buf))
	}
}

func TestParseTimestampNoDelay(t *testing.T) {
	buf := []byte("54.3")
	v, err := ParseTimestamp(buf)
	if err != ErrHdrOk || string(v.Value.Get(buf)) != "54.3" || !v.Delay.Empty() {
		t.Fatalf("ParseTimestamp = %+v, err %v", v, err)
	}
}
