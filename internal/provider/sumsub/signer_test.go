package sumsub

import (
	"testing"
	"time"
)

func fixedClock(sec int64) func() time.Time {
	return func() time.Time { return time.Unix(sec, 0).UTC() }
}

func TestSignKnownAnswer(t *testing.T) {
	t.Parallel()

	s := NewSigner("app-token", "test-secret")
	s.now = fixedClock(1700000000)

	body := []byte(`{"externalUserId":"u-1"}`)
	h := s.Sign("POST", "/resources/applicants?levelName=basic-kyc-level", body)

	if h.Token != "app-token" {
		t.Fatalf("token = %q, want %q", h.Token, "app-token")
	}
	if h.Ts != "1700000000" {
		t.Fatalf("ts = %q, want %q", h.Ts, "1700000000")
	}
	const want = "6a444d570500b9e76baa3c193333024a4f08558e76c1c11adf3d4737adaf3cdd"
	if h.Sig != want {
		t.Fatalf("sig = %q, want %q", h.Sig, want)
	}
}

func TestSignEmptyBody(t *testing.T) {
	t.Parallel()

	s := NewSigner("app-token", "test-secret")
	s.now = fixedClock(1700000000)

	h := s.Sign("GET", "/resources/applicants/abc123/status", nil)

	const want = "8a9804cfa068c434cb630164707c59cd3bbf9c273f7657a85deac2200d3f10f3"
	if h.Sig != want {
		t.Fatalf("sig = %q, want %q", h.Sig, want)
	}
}

func TestSignUppercasesMethod(t *testing.T) {
	t.Parallel()

	s := NewSigner("app-token", "test-secret")
	s.now = fixedClock(1700000000)

	upper := s.Sign("POST", "/resources/applicants?levelName=basic-kyc-level", []byte(`{"externalUserId":"u-1"}`))
	lower := s.Sign("post", "/resources/applicants?levelName=basic-kyc-level", []byte(`{"externalUserId":"u-1"}`))

	if upper.Sig != lower.Sig {
		t.Fatalf("method casing changed the signature: %q vs %q", upper.Sig, lower.Sig)
	}
}

func TestSignTimestampCoupling(t *testing.T) {
	t.Parallel()

	s := NewSigner("app-token", "test-secret")
	s.now = fixedClock(1700000001)

	h := s.Sign("POST", "/resources/applicants?levelName=basic-kyc-level", []byte(`{"externalUserId":"u-1"}`))

	// a one second shift must change the digest and the header together
	if h.Ts != "1700000001" {
		t.Fatalf("ts = %q, want %q", h.Ts, "1700000001")
	}
	const want = "75517bb0100d5a0426eedca96aa473bfd4e458c58c97dc7453bd3c1c70c13f2a"
	if h.Sig != want {
		t.Fatalf("sig = %q, want %q", h.Sig, want)
	}
}

func TestSignBodyCoupling(t *testing.T) {
	t.Parallel()

	s := NewSigner("app-token", "test-secret")
	s.now = fixedClock(1700000000)

	a := s.Sign("POST", "/p", []byte(`{"a":1}`))
	b := s.Sign("POST", "/p", []byte(`{"a":2}`))

	if a.Sig == b.Sig {
		t.Fatal("different bodies produced the same signature")
	}
}
