package mls_test

import (
	"testing"

	mls "github.com/gdavidbutler/MerkleLamportSignature"
	"github.com/gdavidbutler/MerkleLamportSignature/capability"
)

func TestOwningKeyRoundTrip(t *testing.T) {
	cap := capability.SHA256
	s := uint8(2)
	key := make([]byte, mls.PrSz(cap.H(), s))
	for i := range key {
		key[i] = byte(i * 7 % 251)
	}

	priv, err := mls.NewPrivateKey(cap, s, key)
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}

	pub, err := priv.Public()
	if err != nil {
		t.Fatalf("Public: %v", err)
	}

	hash := messageHash(1<<cap.H(), "owning wrapper")
	sig, err := priv.Sign(hash, 2)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	ok, err := pub.Verify(sig, hash)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatalf("Verify returned false for a valid signature")
	}
}

func TestOwningKeyWrongSizeRejected(t *testing.T) {
	cap := capability.SHA256
	if _, err := mls.NewPrivateKey(cap, 1, make([]byte, 10)); err == nil {
		t.Fatalf("NewPrivateKey accepted a too-short key")
	}
}

func TestOwningKeyVerifyRejectsTamperedHash(t *testing.T) {
	cap := capability.SHA256
	s := uint8(1)
	key := make([]byte, mls.PrSz(cap.H(), s))
	for i := range key {
		key[i] = byte(i * 13 % 251)
	}
	priv, _ := mls.NewPrivateKey(cap, s, key)
	pub, _ := priv.Public()

	hash := messageHash(1<<cap.H(), "original")
	sig, err := priv.Sign(hash, 0)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	other := messageHash(1<<cap.H(), "tampered")
	ok, err := pub.Verify(sig, other)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatalf("Verify accepted a signature against the wrong hash")
	}
}
