package sipsp

import "testing"

func TestLookupHeaderName(t *testing.T) {
	cases := []struct {
		in   string
		want HdrT
	}{
		{"From", HdrFrom}, {"f", HdrFrom}, {"FROM", HdrFrom},
		{"To", HdrTo}, {"t", HdrTo},
		{"Call-ID", HdrCallID}, {"i", HdrCallID},
		{"CSeq", HdrCSeq},
		{"Via", HdrVia}, {"v", HdrVia},
		{"Contact", HdrContact}, {"m", HdrContact},
		{"Content-Length", HdrContentLength}, {"l", HdrContentLength},
		{"Content-Type", HdrContentType}, {"c", HdrContentType},
		{"Supported", HdrSupported}, {"k", HdrSupported},
		{"X-Custom-Header", HdrOther},
		{"", HdrOther},
		{"z", HdrOther},
	}
	for _, c := range cases {
		if got := LookupHeaderName([]byte(c.in)); got != c.want {
			t.Errorf("LookupHeaderName(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCanonicalName(t *testing.T) {
	if HdrFrom.CanonicalName() != "From" {
		t.Errorf("HdrFrom.CanonicalName() = %q", HdrFrom.CanonicalName())
	}
	if HdrOther.CanonicalName() != "" {
		t.Errorf("HdrOther.CanonicalName() = %q, want empty", HdrOther.CanonicalName())
	}
}

func TestCommaFoldable(t *testing.T) {
	if HdrAuthorization.commaFoldable() {
		t.Errorf("Authorization should not be comma-foldable")
	}
	if !HdrContact.commaFoldable() {
		t.Errorf("Contact should be comma-foldable")
	}
	if !HdrVia.commaFoldable() {
		t.Errorf("Via should be comma-foldable")
	}
}
