package capability

import "testing"

func TestSHA256Width(t *testing.T) {
	if SHA256.H() != 5 {
		t.Fatalf("SHA256.H() = %d, want 5", SHA256.H())
	}
	out := make([]byte, 1<<SHA256.H())
	hc := SHA256.Allocate()
	hc.Init()
	hc.Update([]byte("hello"))
	hc.Finalize(out)
	// sha256("hello")
	want := []byte{
		0x2c, 0xf2, 0x4d, 0xba, 0x5f, 0xb0, 0xa3, 0x0e,
		0x26, 0xe8, 0x3b, 0x2a, 0xc5, 0xb9, 0xe2, 0x9e,
		0x1b, 0x16, 0x1e, 0x5c, 0x1f, 0xa7, 0x42, 0x5e,
		0x73, 0x04, 0x33, 0x62, 0x93, 0x8b, 0x98, 0x24,
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("sha256(hello) mismatch at byte %d: got %x want %x", i, out, want)
		}
	}
}

func TestSHA256Reinit(t *testing.T) {
	hc := SHA256.Allocate()
	out1 := make([]byte, 32)
	hc.Init()
	hc.Update([]byte("a"))
	hc.Finalize(out1)

	out2 := make([]byte, 32)
	hc.Init()
	hc.Update([]byte("b"))
	hc.Finalize(out2)

	same := true
	for i := range out1 {
		if out1[i] != out2[i] {
			same = false
		}
	}
	if same {
		t.Fatalf("Init did not reset context between uses")
	}
}

func TestShake128Width(t *testing.T) {
	cap := Shake128(4) // 16-byte digest
	if cap.H() != 4 {
		t.Fatalf("H() = %d, want 4", cap.H())
	}
	out := make([]byte, 16)
	hc := cap.Allocate()
	hc.Init()
	hc.Update([]byte("hello"))
	hc.Finalize(out)
	allZero := true
	for _, v := range out {
		if v != 0 {
			allZero = false
		}
	}
	if allZero {
		t.Fatalf("Shake128 digest was all zero")
	}
}

func TestBlake2bWidth(t *testing.T) {
	cap := Blake2b(5) // 32-byte digest
	out := make([]byte, 32)
	hc := cap.Allocate()
	hc.Init()
	hc.Update([]byte("hello"))
	hc.Finalize(out)
	allZero := true
	for _, v := range out {
		if v != 0 {
			allZero = false
		}
	}
	if allZero {
		t.Fatalf("Blake2b digest was all zero")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindSHA256:   "SHA256",
		KindShake128: "Shake128",
		KindBlake2b:  "Blake2b",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
