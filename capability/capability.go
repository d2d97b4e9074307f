// Package capability provides ready-made mls.Capability implementations
// over a handful of standard and third-party hash functions.
package capability

import mls "github.com/gdavidbutler/MerkleLamportSignature"

// re-exported for callers that only import this package
type (
	// HashContext is an alias of mls.HashContext.
	HashContext = mls.HashContext
	// Capability is an alias of mls.Capability.
	Capability = mls.Capability
)
