package util

import "testing"

func TestHashContentStable(t *testing.T) {
	a := HashContent([]byte("resume body"))
	b := HashContent([]byte("resume body"))
	if a != b {
		t.Fatalf("hash not stable: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestHashContentDiffers(t *testing.T) {
	if HashContent([]byte("a")) == HashContent([]byte("b")) {
		t.Fatal("different payloads produced the same hash")
	}
}
