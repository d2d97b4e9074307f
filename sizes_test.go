package mls

import "testing"

func TestPrSz(t *testing.T) {
	if got := PrSz(5, 1); got != 32768 {
		t.Errorf("PrSz(5,1) = %d, want 32768", got)
	}
	if got := PrSz(5, 0); got != 16384 {
		t.Errorf("PrSz(5,0) = %d, want 16384", got)
	}
}

func TestPrSzOverflow(t *testing.T) {
	if got := PrSz(60, 60); got != 0 {
		t.Errorf("PrSz(60,60) = %d, want 0 (overflow)", got)
	}
}

func TestWaSz(t *testing.T) {
	// h=5, s=1: entries = h+6 = 11, B = 32, (1+32)*11 = 363
	if got := WaSz(5, 1); got != 363 {
		t.Errorf("WaSz(5,1) = %d, want 363", got)
	}
}

func TestSgSz(t *testing.T) {
	// h=5, s=1: 2 + 1 + 32 + 2^(2*5+4) = 35 + 16384 = 16419
	if got := SgSz(5, 1); got != 16419 {
		t.Errorf("SgSz(5,1) = %d, want 16419", got)
	}
}

func TestWaEntriesOpenQuestion(t *testing.T) {
	// s=0 disagreement resolved by taking the larger candidate, h+6.
	if got := waEntries(5, 0); got != 11 {
		t.Errorf("waEntries(5,0) = %d, want 11 (h+6)", got)
	}
	if got := waEntries(5, 3); got != 14 {
		t.Errorf("waEntries(5,3) = %d, want 14 (h+4+2s-1)", got)
	}
}

func TestEgSzShortBuffer(t *testing.T) {
	if got := EgSz(5, nil); got != 0 {
		t.Errorf("EgSz(5, nil) = %d, want 0", got)
	}
	if got := EgSz(5, []byte{0}); got != 0 {
		t.Errorf("EgSz(5, too-short) = %d, want 0", got)
	}
}
