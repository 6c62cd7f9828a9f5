package types

// HostAPI is the host-capability handle: stateless helpers the host
// engine provides to contract code. Like Storage, it is borrowed per
// call.
type HostAPI interface {
	// ValidateAddress checks that a human-readable address is
	// well-formed on this chain.
	ValidateAddress(human string) error

	// CanonicalizeAddress converts a human-readable address to its
	// canonical binary form.
	CanonicalizeAddress(human string) ([]byte, error)

	// HumanizeAddress converts a canonical binary address back to
	// its human-readable form.
	HumanizeAddress(canonical []byte) (string, error)
}
