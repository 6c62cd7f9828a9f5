// Package types defines all core data types for CAPI
// (the Contract Application Programming Interface).
//
// These are plain Go structs with cramberry struct tags for
// deterministic binary serialization. Generic types are parameterized
// over the chain-specific extension types: Q for the query surface,
// C for the outbound message surface, with [Empty] as the baseline
// for both.
package types

// Empty is the baseline extension type. A contract authored against
// Empty uses no chain-specific queries or messages and can be adapted
// to any concrete extension-type pair.
type Empty struct{}

// Coin is an amount of a single fungible token denomination.
type Coin struct {
	Denom  string `cramberry:"1"`
	Amount uint64 `cramberry:"2"`
}

// NewCoin creates a Coin.
func NewCoin(amount uint64, denom string) Coin {
	return Coin{Denom: denom, Amount: amount}
}
