package capability

import "fmt"

//go:generate enumer -type=Kind -json

// Kind identifies which concrete hash backs a Capability value returned
// by this package's constructors, for callers that persist a capability
// choice (e.g. alongside a stored private key) and need to recreate it.
type Kind int

const (
	KindSHA256 Kind = iota
	KindShake128
	KindBlake2b
)

// String is hand-written in the style enumer would generate, rather than
// run through go generate, since this package has only the one enum.
func (k Kind) String() string {
	switch k {
	case KindSHA256:
		return "SHA256"
	case KindShake128:
		return "Shake128"
	case KindBlake2b:
		return "Blake2b"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
