// Package mls implements the core of a Merkle signature scheme whose
// leaves are one-time Lamport signatures, as described by G. David
// Butler's MerkleLamportSignature C library
// (https://github.com/gdavidbutler/MerkleLamportSignature).
//
// The scheme is parameterised by two small integers: h, the log2 of the
// hash digest size in bytes, and s, the log2 of the number of available
// signings (Merkle leaves). Private key material, work areas and
// signature buffers are all caller-owned; this package performs no
// internal allocation in the four core operations (Public, Sign, Recover
// and the size oracles) and never logs or retries. Concrete hash
// functions are injected through the Capability interface; see the
// capability subpackage for ready-made implementations. The leafstore
// subpackage adds a persistent used-leaf bitmap for callers who need to
// enforce one-time use of each signing slot across process restarts.
package mls
