package util

import "testing"

func TestFingerprintStable(t *testing.T) {
	a := Fingerprint("ai-disclosure", "Missing AI disclosure")
	b := Fingerprint("ai-disclosure", "Missing AI disclosure")
	if a != b {
		t.Fatalf("fingerprint not stable: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("fingerprint length = %d, want 16", len(a))
	}
}

func TestFingerprintPartBoundaries(t *testing.T) {
	// "ab"+"c" must not collide with "a"+"bc".
	if Fingerprint("ab", "c") == Fingerprint("a", "bc") {
		t.Fatal("part boundary collision")
	}
	if Fingerprint("x") == Fingerprint("y") {
		t.Fatal("distinct inputs collided")
	}
}
