package capability

import "golang.org/x/crypto/sha3"

// Shake128 returns a capability of digest width 1<<h bytes backed by
// SHAKE128, an arbitrary-output-length sponge function. Unlike the fixed-
// width hashes, this one constructor serves every h; each Capability value
// it returns has a single width, so construct one per width needed.
func Shake128(h uint8) Capability {
	return shakeCapability{h: h}
}

type shakeCapability struct{ h uint8 }

func (s shakeCapability) H() uint8 { return s.h }

func (s shakeCapability) Allocate() HashContext {
	return &shakeContext{width: 1 << s.h}
}

type shakeContext struct {
	width  int
	sponge sha3.ShakeHash
}

func (c *shakeContext) Init() {
	c.sponge = sha3.NewShake128()
}

func (c *shakeContext) Update(p []byte) {
	c.sponge.Write(p)
}

func (c *shakeContext) Finalize(out []byte) {
	c.sponge.Read(out[:c.width])
}
