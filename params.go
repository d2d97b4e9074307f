package mls

import "io"

// Params bundles the pieces Public and Sign need beyond the private key
// and work area themselves: the hash Capability (which also fixes h, the
// log2 digest width) and S, the log2 of the number of available
// signings.
type Params struct {
	Cap Capability
	S   uint8
}

// allocHash allocates a HashContext from cap. ok is false if cap.Allocate
// returns nil, mirroring mlsPublic/mlsSign/mlsRecover's
// "!(c = v->h->a())" capability-failure check; callers must treat that
// as equivalent to any other invalid-input failure and return nil/0.
func allocHash(cap Capability) (hc HashContext, release func(), ok bool) {
	hc = cap.Allocate()
	if hc == nil {
		return nil, nil, false
	}
	closer, isCloser := hc.(io.Closer)
	if !isCloser {
		return hc, func() {}, true
	}
	return hc, func() { closer.Close() }, true
}
