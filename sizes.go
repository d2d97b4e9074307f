package mls

import "math/bits"

// Sz is the unsigned integer type in which every size oracle in this
// package is expressed. A size oracle returns Sz(0) to signal that the
// true size would overflow Sz.
type Sz uint64

const szBits = 64

func shlOv(exp int) (Sz, bool) {
	if exp < 0 || exp >= szBits {
		return 0, false
	}
	return Sz(1) << uint(exp), true
}

func addOv(a, b Sz) (Sz, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

func mulOv(a, b Sz) (Sz, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 {
		return 0, false
	}
	return Sz(lo), true
}

// waEntries returns the worst-case depth of the stack-Merkle combining
// stack for s signings of a 2^h-byte hash.
//
// The two variants in the library this package is ported from disagree for
// s<=1: one gives h+6, the other h+4+2s-1 (h+3 for s=0, h+5 for s=1). For
// s>=2 they agree on h+4+2s-1. This implementation always takes the larger
// of the two candidates, so a caller-provided work area is never too small
// to hold the genuine worst-case stack depth (Public needs h+6 entries for
// s=1, one per level of its 2^(h+5) leaf hashes plus the one being pushed).
func waEntries(h, s uint8) int {
	if s <= 1 {
		return int(h) + 6
	}
	return int(h) + 4 + 2*int(s) - 1
}

// PrSz returns the size, in bytes, of the private key buffer for the
// given parameters, or 0 if that size would overflow Sz.
func PrSz(h, s uint8) Sz {
	exp := 2*int(h) + 4 + int(s)
	sz, ok := shlOv(exp)
	if !ok {
		return 0
	}
	return sz
}

// WaSz returns the size, in bytes, of the work area required by Public
// and Sign for the given parameters, or 0 if that size would overflow Sz.
func WaSz(h, s uint8) Sz {
	b, ok := shlOv(int(h))
	if !ok {
		return 0
	}
	perEntry, ok := addOv(1, b)
	if !ok {
		return 0
	}
	entries := waEntries(h, s)
	if entries < 0 {
		return 0
	}
	sz, ok := mulOv(Sz(entries), perEntry)
	if !ok {
		return 0
	}
	return sz
}

// lamportRevealSize returns 2^(2h+4), the byte length of the Lamport
// reveal portion of a signature: 8*2^h bit positions, each revealing 2^h
// bytes on one side and a 2^h-byte hash on the other.
func lamportRevealSize(h uint8) (Sz, bool) {
	return shlOv(2*int(h) + 4)
}

// SgSz returns the maximum size, in bytes, of a signature for the given
// parameters, or 0 if that size would overflow Sz.
func SgSz(h, s uint8) Sz {
	lamport, ok := lamportRevealSize(h)
	if !ok {
		return 0
	}
	b, ok := shlOv(int(h))
	if !ok {
		return 0
	}
	sB, ok := mulOv(Sz(s), b)
	if !ok {
		return 0
	}
	sz, ok := addOv(2, Sz(s))
	if !ok {
		return 0
	}
	sz, ok = addOv(sz, sB)
	if !ok {
		return 0
	}
	sz, ok = addOv(sz, lamport)
	if !ok {
		return 0
	}
	return sz
}

// stackLens reads the left and right stack entry counts (jL, jR) out of a
// signature buffer, reporting whether sig is long enough to contain the
// left stack, the Lamport reveal, and the right-stack length byte.
func stackLens(h uint8, sig []byte) (jL, jR int, ok bool) {
	b, shiftOk := shlOv(int(h))
	if !shiftOk || len(sig) < 1 {
		return 0, 0, false
	}
	jL = int(sig[0])
	leftEnd := 1 + jL*(1+int(b))
	if len(sig) < leftEnd {
		return 0, 0, false
	}
	lamport, lamportOk := lamportRevealSize(h)
	if !lamportOk {
		return 0, 0, false
	}
	rCountAt := leftEnd + int(lamport)
	if len(sig) < rCountAt+1 {
		return 0, 0, false
	}
	jR = int(sig[rCountAt])
	return jL, jR, true
}

// EgSz returns the exact size, in bytes, of the signature encoded at the
// start of sig, or 0 if sig is too short to contain a well-formed
// signature.
func EgSz(h uint8, sig []byte) Sz {
	jL, jR, ok := stackLens(h, sig)
	if !ok {
		return 0
	}
	b, _ := shlOv(int(h))
	lamport, _ := lamportRevealSize(h)
	total := 1 + jL*(1+int(b)) + int(lamport) + 1 + jR*(1+int(b))
	if len(sig) < total {
		return 0
	}
	return Sz(total)
}

// EwSz returns the size, in bytes, of the work area Recover needs for the
// signature encoded at the start of sig, or 0 if sig is too short.
func EwSz(h uint8, sig []byte) Sz {
	jL, jR, ok := stackLens(h, sig)
	if !ok {
		return 0
	}
	total := jL + jR
	if total > 255 {
		return 0
	}
	return WaSz(h, uint8(total))
}

// RcSz is an alias of EwSz: the size, in bytes, of the recover area
// (Recover's work area) for the signature encoded at the start of sig.
func RcSz(h uint8, sig []byte) Sz {
	return EwSz(h, sig)
}
