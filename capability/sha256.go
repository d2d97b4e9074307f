package capability

import (
	"crypto/sha256"
	"hash"
)

// SHA256 is the fixed 32-byte (h=5) capability backed by crypto/sha256.
var SHA256 Capability = sha256Capability{}

type sha256Capability struct{}

func (sha256Capability) H() uint8 { return 5 }

func (sha256Capability) Allocate() HashContext {
	return &sha256Context{}
}

type sha256Context struct {
	w hash.Hash
}

func (c *sha256Context) Init() {
	c.w = sha256.New()
}

func (c *sha256Context) Update(p []byte) {
	c.w.Write(p)
}

func (c *sha256Context) Finalize(out []byte) {
	copy(out, c.w.Sum(nil))
}
