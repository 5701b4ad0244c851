package sipsp

import "testing"

const sampleHeaders = "Via: SIP/2.0/UDP bigbox3.site3.atlanta.com;branch=z9hG4bK77ef4c2312983.1\r\n" +
	"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
	"To: Bob <sip:bob@biloxi.com>\r\n" +
	"From: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
	"Call-ID: a84b4c76e66710@pc33.atlanta.com\r\n" +
	"CSeq: 314159 INVITE\r\n" +
	"Max-Forwards: 70\r\n" +
	"Contact: <sip:alice@pc33.atlanta.com>\r\n" +
	"Content-Type: application/sdp\r\n" +
	"Content-Length: 142\r\n" +
	"X-Custom: hello\r\n" +
	"\r\nv=0\r\n"

func TestParseHeadersIntegration(t *testing.T) {
	buf := []byte(sampleHeaders)
	hm, next, err := ParseHeaders(buf)
	if err != nil {
		t.Fatalf("ParseHeaders err = %v", err)
	}
	if string(buf[next:]) != "v=0\r\n" {
		t.Errorf("next points at %q, want body start", buf[next:])
	}

	vias := hm.Get(HdrVia)
	if len(vias) != 2 {
		t.Fatalf("got %d Via headers, want 2", len(vias))
	}
	via0, ok := vias[0].Value.Via()
	if !ok {
		t.Fatalf("Via[0] not a ViaVal")
	}
	if string(via0.Host.Get(buf)) != "bigbox3.site3.atlanta.com" {
		t.Errorf("Via[0].Host = %q", via0.Host.Get(buf))
	}

	to, ok := hm.GetFirst(HdrTo)
	if !ok {
		t.Fatal("no To header")
	}
	toNA, ok := to.Value.NameAddr()
	if !ok || string(toNA.Name.Get(buf)) != "Bob" {
		t.Errorf("To display-name = %q", toNA.Name.Get(buf))
	}

	from, _ := hm.GetFirst(HdrFrom)
	fromNA, _ := from.Value.NameAddr()
	if tag, ok := fromNA.Tag(); !ok || string(tag) != "1928301774" {
		t.Errorf("From tag = %q,%v", tag, ok)
	}

	cseq, _ := hm.GetFirst(HdrCSeq)
	cv, _ := cseq.Value.CSeq()
	if cv.Num != 314159 || cv.Method != MInvite {
		t.Errorf("CSeq = %+v", cv)
	}

	mf, _ := hm.GetFirst(HdrMaxForwards)
	mv, _ := mf.Value.UInt()
	if mv.Val != 70 {
		t.Errorf("Max-Forwards = %d, want 70", mv.Val)
	}

	ct, _ := hm.GetFirst(HdrContentType)
	ctv, _ := ct.Value.MediaType()
	if string(ctv.Type.Get(buf)) != "application" || string(ctv.Subtype.Get(buf)) != "sdp" {
		t.Errorf("Content-Type = %q/%q", ctv.Type.Get(buf), ctv.Subtype.Get(buf))
	}

	ext := hm.GetExt("X-Custom")
	if len(ext) != 1 {
		t.Fatalf("got %d X-Custom headers, want 1", len(ext))
	}
	xv, _ := ext[0].Value.Extension()
	if string(xv.Value.Get(buf)) != "hello" {
		t.Errorf("X-Custom value = %q", xv.Value.Get(buf))
	}

	if hm.Len() != 11 {
		t.Errorf("hm.Len() = %d, want 11", hm.Len())
	}
}

func TestParseHeadersFoldedValue(t *testing.T) {
	buf := []byte("Subject: Project X\r\n Discussion\r\n\r\n")
	hm, _, err := ParseHeaders(buf)
	if err != nil {
		t.Fatalf("ParseHeaders err = %v", err)
	}
	s, ok := hm.GetFirst(HdrSubject)
	if !ok {
		t.Fatal("no Subject header")
	}
	f, ok := s.Value.Token()
	if !ok {
		t.Fatal("Subject value not a Field")
	}
	want := "Project X\r\n Discussion"
	if string(f.Get(buf)) != want {
		t.Errorf("Subject = %q, want %q", f.Get(buf), want)
	}
}

func TestParseHeadersFoldedAuthorization(t *testing.T) {
	buf := []byte("Authorization: Digest username=\"Alice\", realm=\"atlanta.com\"\r\n" +
		"\t,nonce=\"84a4cc6f3082121f32b42a2187831a9e\",\r\n" +
		" response=\"7587245234b3434cc3412213167a8\"\r\n\r\n")
	hm, _, err := ParseHeaders(buf)
	if err != nil {
		t.Fatalf("ParseHeaders err = %v", err)
	}
	auth, ok := hm.GetFirst(HdrAuthorization)
	if !ok {
		t.Fatal("no Authorization header")
	}
	av, ok := auth.Value.Auth()
	if !ok {
		t.Fatal("Authorization value not an AuthVal")
	}
	if u, uok := av.Username(); !uok || string(u) != "Alice" {
		t.Errorf("Username() = %q,%v", u, uok)
	}
	if n, nok := av.Nonce(); !nok || string(n) != "84a4cc6f3082121f32b42a2187831a9e" {
		t.Errorf("Nonce() = %q,%v", n, nok)
	}
}

func TestParseHeadersInReplyTo(t *testing.T) {
	buf := []byte("In-Reply-To: 70710@saturn.bell-tel.com, 17320@saturn.bell-tel.com\r\n\r\n")
	hm, _, err := ParseHeaders(buf)
	if err != nil {
		t.Fatalf("ParseHeaders err = %v", err)
	}
	entries := hm.Get(HdrInReplyTo)
	if len(entries) != 2 {
		t.Fatalf("got %d In-Reply-To entries, want 2", len(entries))
	}
	c0, ok := entries[0].Value.CallID()
	if !ok || string(c0.ID.Get(buf)) != "70710" || !c0.HasHost || string(c0.Host.Get(buf)) != "saturn.bell-tel.com" {
		t.Errorf("entries[0] = %+v, ok %v", c0, ok)
	}
}

func TestParseHeadersCompactReferredBy(t *testing.T) {
	buf := []byte("b: Bob <sip:bob@biloxi.com>\r\n\r\n")
	hm, _, err := ParseHeaders(buf)
	if err != nil {
		t.Fatalf("ParseHeaders err = %v", err)
	}
	if _, ok := hm.GetFirst(HdrReferredBy); !ok {
		t.Fatal("compact \"b:\" was not routed to HdrReferredBy")
	}
}

func TestParseHeadersNoTrailingBlankLine(t *testing.T) {
	buf := []byte("Call-ID: abc123@host\r\n")
	hm, next, err := ParseHeaders(buf)
	if err != nil {
		t.Fatalf("ParseHeaders err = %v", err)
	}
	if next != len(buf) {
		t.Errorf("next = %d, want %d", next, len(buf))
	}
	if hm.Len() != 1 {
		t.Errorf("hm.Len() = %d, want 1", hm.Len())
	}
}
