package capability

import "github.com/gtank/blake2/blake2b"

// Blake2b returns a capability of digest width 1<<h bytes (up to
// blake2b.MaxOutput) backed by unkeyed, unsalted BLAKE2b.
func Blake2b(h uint8) Capability {
	return blake2bCapability{h: h}
}

type blake2bCapability struct{ h uint8 }

func (b blake2bCapability) H() uint8 { return b.h }

func (b blake2bCapability) Allocate() HashContext {
	return &blake2bContext{width: 1 << b.h}
}

type blake2bContext struct {
	width  int
	digest *blake2b.Digest
}

// Init constructs a fresh Digest rather than resetting the old one:
// this library's Digest.Reset panics because it does not retain the key
// needed to re-derive its initial state.
func (c *blake2bContext) Init() {
	d, err := blake2b.NewDigest(nil, nil, nil, c.width)
	if err != nil {
		panic(err) // only possible for an out-of-range width, a programmer error
	}
	c.digest = d
}

func (c *blake2bContext) Update(p []byte) {
	c.digest.Write(p)
}

func (c *blake2bContext) Finalize(out []byte) {
	copy(out, c.digest.Sum(nil))
}
