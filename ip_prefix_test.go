package sipsp

import "testing"

func TestIsIPv4Literal(t *testing.T) {
	ok := []string{"1.2.3.4", "0.0.0.0", "255.255.255.255", "192.168.1.1"}
	bad := []string{
		"1.2.3.256", "1.2.3", "1.2.3.4.5", "1.2.3.", ".1.2.3",
		"a.b.c.d", "1.2.3.4a", "1..3.4", "example.com", "",
	}
	for _, s := range ok {
		if !IsIPv4Literal([]byte(s)) {
			t.Errorf("IsIPv4Literal(%q) = false, want true", s)
		}
	}
	for _, s := range bad {
		if IsIPv4Literal([]byte(s)) {
			t.Errorf("IsIPv4Literal(%q) = true, want false", s)
		}
	}
}
