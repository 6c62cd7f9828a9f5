// Package capi defines the Contract Application Programming Interface —
// the boundary between a host test-execution engine and arbitrary
// smart-contract handler code.
//
// The core [Contract] interface is the only object a host engine touches.
// Contracts are authored as plain typed handler functions and bound into
// a Contract via the wrapper package; handlers written against the
// baseline extension type (types.Empty) can be adapted to any concrete
// extension-type pair at registration time via wrapper casting.
package capi

import "github.com/blockberries/capi/types"

// Contract is the uniform polymorphic contract interface.
//
// Q is the chain-specific extension of the query surface, C the
// chain-specific extension of the outbound message surface. A contract
// that needs neither uses types.Empty for both.
//
// Entry points taking a raw msg payload decode it themselves; a malformed
// payload surfaces as an ordinary *CallError, never a crash. Sudo, Reply,
// and Migrate are optional: a contract that does not supply them reports
// a fixed "not implemented" diagnostic.
//
// Every call is synchronous and single-threaded. DepsMut grants
// exclusive write access to contract storage for the duration of one
// call; Deps grants shared read access. Neither may be retained after
// the call returns.
type Contract[Q, C any] interface {
	// Instantiate sets up a fresh contract instance from a raw
	// encoded init payload.
	Instantiate(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, msg []byte) (types.Response[C], error)

	// Execute runs a state-mutating contract call on behalf of
	// info.Sender.
	Execute(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, msg []byte) (types.Response[C], error)

	// Query reads contract state and returns an opaque serialized
	// payload. It must not mutate state.
	Query(deps types.Deps[Q], env types.Env, msg []byte) ([]byte, error)

	// Sudo runs a privileged, system-invoked call. No sender identity
	// is threaded; the host engine itself is the caller.
	Sudo(deps types.DepsMut[Q], env types.Env, msg []byte) (types.Response[C], error)

	// Reply delivers the outcome of a previously emitted submessage.
	// The input is already structured; there is no payload to decode.
	Reply(deps types.DepsMut[Q], env types.Env, reply types.Reply) (types.Response[C], error)

	// Migrate switches a contract instance to new logic. Privileged;
	// no sender identity is threaded.
	Migrate(deps types.DepsMut[Q], env types.Env, msg []byte) (types.Response[C], error)
}
