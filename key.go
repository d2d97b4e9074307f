package mls

import "bytes"

// PrivateKey is an owning, ergonomic wrapper around the caller-buffer
// core: it holds the private key bytes, the hash capability and S
// together and allocates its own work area and signature buffers. It is
// a thin convenience layer; Public, Sign and Recover remain the
// authoritative, allocation-free entry points.
type PrivateKey struct {
	Cap Capability
	S   uint8
	Key []byte // exactly PrSz(Cap.H(), S) bytes, caller-initialised
}

// PublicKey is the root digest produced from a PrivateKey, kept
// alongside the capability needed to verify signatures against it.
type PublicKey struct {
	Cap  Capability
	Root []byte
}

// Signature is a Sign result sized to its own content rather than the
// worst case SgSz, paired with the capability needed to recover it.
type Signature struct {
	Cap Capability
	Sig []byte
}

// NewPrivateKey validates that key is the right size for (cap, s) and
// wraps it; it returns an error rather than allocating or randomising
// key, consistent with the core's "caller initialises the private
// buffer" contract.
func NewPrivateKey(cap Capability, s uint8, key []byte) (*PrivateKey, Error) {
	if cap == nil {
		return nil, errorf("mls: nil capability")
	}
	prSz := PrSz(cap.H(), s)
	if prSz == 0 {
		return nil, errorf("mls: PrSz(%d,%d) overflows", cap.H(), s)
	}
	if Sz(len(key)) != prSz {
		return nil, errorf("mls: private key is %d bytes, want %d", len(key), prSz)
	}
	return &PrivateKey{Cap: cap, S: s, Key: key}, nil
}

// Public computes and returns this key's public root, allocating its own
// work area.
func (pk *PrivateKey) Public() (*PublicKey, Error) {
	waSz := WaSz(pk.Cap.H(), pk.S)
	if waSz == 0 {
		return nil, errorf("mls: WaSz(%d,%d) overflows", pk.Cap.H(), pk.S)
	}
	wa := make([]byte, waSz)
	root := Public(&Params{Cap: pk.Cap, S: pk.S}, pk.Key, wa)
	if root == nil {
		return nil, errorf("mls: Public failed")
	}
	out := make([]byte, len(root))
	copy(out, root)
	return &PublicKey{Cap: pk.Cap, Root: out}, nil
}

// Sign signs hash using leaf offset o, allocating its own work area and
// a worst-case-sized signature buffer that is trimmed to the bytes
// actually written.
//
// Callers are responsible for never reusing the same offset twice; the
// core, and this wrapper, do not track which offsets have been spent.
func (pk *PrivateKey) Sign(hash []byte, o uint32) (*Signature, Error) {
	h := pk.Cap.H()
	waSz := WaSz(h, pk.S)
	if waSz == 0 {
		return nil, errorf("mls: WaSz(%d,%d) overflows", h, pk.S)
	}
	sgSz := SgSz(h, pk.S)
	if sgSz == 0 {
		return nil, errorf("mls: SgSz(%d,%d) overflows", h, pk.S)
	}
	wa := make([]byte, waSz)
	sig := make([]byte, sgSz)
	written := Sign(&Params{Cap: pk.Cap, S: pk.S}, pk.Key, wa, hash, sig, o)
	if written == nil {
		return nil, errorf("mls: Sign failed for offset %d", o)
	}
	return &Signature{Cap: pk.Cap, Sig: written}, nil
}

// Recover recomputes the root that sig authenticates over hash,
// allocating its own work area.
func (pub *PublicKey) Recover(sig *Signature, hash []byte) ([]byte, Error) {
	h := pub.Cap.H()
	rcSz := RcSz(h, sig.Sig)
	if rcSz == 0 {
		return nil, errorf("mls: signature too short to be well-formed")
	}
	wa := make([]byte, rcSz)
	root := Recover(sig.Cap, wa, hash, sig.Sig)
	if root == nil {
		return nil, errorf("mls: Recover failed")
	}
	return root, nil
}

// Verify reports whether sig authenticates hash against this public key.
func (pub *PublicKey) Verify(sig *Signature, hash []byte) (bool, Error) {
	root, err := pub.Recover(sig, hash)
	if err != nil {
		return false, err
	}
	return bytes.Equal(root, pub.Root), nil
}
