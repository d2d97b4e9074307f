package mls

// HashContext is one hashing session: Init resets it, Update feeds it
// bytes, and Finalize writes the digest into out and leaves the context
// ready for another Init. out is always exactly the width the owning
// Capability advertises.
type HashContext interface {
	Init()
	Update(p []byte)
	Finalize(out []byte)
}

// Capability allocates HashContext values of a fixed digest width (2^h
// bytes) and is the only place a concrete hash function enters this
// package. The four core operations never construct a hash themselves.
//
// Allocate may be called many times against the same Capability; callers
// that want to release resources held by a HashContext type-assert it
// against io.Closer.
type Capability interface {
	Allocate() HashContext
	H() uint8 // digest width is 1<<H() bytes
}
