package sipsp

import "testing"

func TestParseRetryAfter(t *testing.T) {
	buf := []byte("18000;duration=3600")
	v, err := ParseRetryAfter(buf)
	if err != ErrHdrOk {
		t.Fatalf("ParseRetryAfter err = %v", err)
	}
	if v.Seconds != 18000 {
		t.Errorf("Seconds = %d, want 18000", v.Seconds)
	}
	d, ok, derr := v.Duration()
	if derr != ErrHdrOk || !ok || d != 3600 {
		t.Errorf("Duration() = %d,%v,%v", d, ok, derr)
	}
}

func TestParseRetryAfterWithComment(t *testing.T) {
	buf := []byte("120 (I'm in a meeting)")
	v, err := ParseRetryAfter(buf)
	if err != ErrHdrOk {
		t.Fatalf("ParseRetryAfter err = %v", err)
	}
	if string(v.Comment.Get(buf)) != "I'm in a meeting" {
		t.Errorf("Comment = %q", v.Comment.Get(buf))
	}
}
