// Package wrapper binds typed contract handler functions into the
// uniform capi.Contract shape.
//
// Each handler is registered under an explicit entry-point [Kind] and
// paired with its declared message type once, at construction time, by
// a generic bind constructor — there is no structural matching of
// callables. The bound form decodes the raw payload, invokes the
// handler, and normalizes every failure into *capi.CallError.
package wrapper

import (
	"fmt"

	"github.com/blockberries/capi"
	"github.com/blockberries/capi/codec"
	"github.com/blockberries/capi/types"
)

// Kind tags the six recognized entry-point kinds.
type Kind uint8

const (
	KindInstantiate Kind = iota
	KindExecute
	KindQuery
	KindSudo
	KindReply
	KindMigrate
)

// String returns the entry-point name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindInstantiate:
		return "instantiate"
	case KindExecute:
		return "execute"
	case KindQuery:
		return "query"
	case KindSudo:
		return "sudo"
	case KindReply:
		return "reply"
	case KindMigrate:
		return "migrate"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ContractFn is the calling shape of the instantiate and execute entry
// points: mutable context, execution metadata, sender identity, and the
// decoded message of the handler's declared type T.
type ContractFn[T, Q, C any] func(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, msg T) (types.Response[C], error)

// PermissionedFn is the calling shape of the sudo and migrate entry
// points: privileged, no sender identity.
type PermissionedFn[T, Q, C any] func(deps types.DepsMut[Q], env types.Env, msg T) (types.Response[C], error)

// ReplyFn is the calling shape of the reply entry point. Its input is
// an already-structured submessage outcome, not a raw payload.
type ReplyFn[Q, C any] func(deps types.DepsMut[Q], env types.Env, reply types.Reply) (types.Response[C], error)

// QueryFn is the calling shape of the query entry point: read-only
// context, no sender identity, opaque serialized result.
type QueryFn[T, Q any] func(deps types.Deps[Q], env types.Env, msg T) ([]byte, error)

// Bound handler forms: declared message type resolved away, raw payload
// in. These are what the facade stores and invokes.
type (
	contractBinding[Q, C any]     func(types.DepsMut[Q], types.Env, types.MessageInfo, []byte) (types.Response[C], error)
	permissionedBinding[Q, C any] func(types.DepsMut[Q], types.Env, []byte) (types.Response[C], error)
	replyBinding[Q, C any]        func(types.DepsMut[Q], types.Env, types.Reply) (types.Response[C], error)
	queryBinding[Q any]           func(types.Deps[Q], types.Env, []byte) ([]byte, error)
)

func bindContractFn[T, Q, C any](kind Kind, fn ContractFn[T, Q, C]) contractBinding[Q, C] {
	return func(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, raw []byte) (types.Response[C], error) {
		var msg T
		if err := codec.Unmarshal(raw, &msg); err != nil {
			return types.Response[C]{}, capi.NewCallError(kind.String(), err)
		}
		resp, err := fn(deps, env, info, msg)
		if err != nil {
			return types.Response[C]{}, capi.NewCallError(kind.String(), err)
		}
		return resp, nil
	}
}

func bindPermissionedFn[T, Q, C any](kind Kind, fn PermissionedFn[T, Q, C]) permissionedBinding[Q, C] {
	return func(deps types.DepsMut[Q], env types.Env, raw []byte) (types.Response[C], error) {
		var msg T
		if err := codec.Unmarshal(raw, &msg); err != nil {
			return types.Response[C]{}, capi.NewCallError(kind.String(), err)
		}
		resp, err := fn(deps, env, msg)
		if err != nil {
			return types.Response[C]{}, capi.NewCallError(kind.String(), err)
		}
		return resp, nil
	}
}

func bindReplyFn[Q, C any](fn ReplyFn[Q, C]) replyBinding[Q, C] {
	return func(deps types.DepsMut[Q], env types.Env, reply types.Reply) (types.Response[C], error) {
		resp, err := fn(deps, env, reply)
		if err != nil {
			return types.Response[C]{}, capi.NewCallError(KindReply.String(), err)
		}
		return resp, nil
	}
}

func bindQueryFn[T, Q any](fn QueryFn[T, Q]) queryBinding[Q] {
	return func(deps types.Deps[Q], env types.Env, raw []byte) ([]byte, error) {
		var msg T
		if err := codec.Unmarshal(raw, &msg); err != nil {
			return nil, capi.NewCallError(KindQuery.String(), err)
		}
		data, err := fn(deps, env, msg)
		if err != nil {
			return nil, capi.NewCallError(KindQuery.String(), err)
		}
		return data, nil
	}
}

// Default bindings installed when a contract does not supply the
// optional entry points. They skip payload decoding so the diagnostic
// is reported regardless of payload shape.

func defaultSudo[Q, C any](_ types.DepsMut[Q], _ types.Env, _ []byte) (types.Response[C], error) {
	return types.Response[C]{}, &capi.NotImplementedError{Entry: "Sudo"}
}

func defaultReply[Q, C any](_ types.DepsMut[Q], _ types.Env, _ types.Reply) (types.Response[C], error) {
	return types.Response[C]{}, &capi.NotImplementedError{Entry: "Reply"}
}

func defaultMigrate[Q, C any](_ types.DepsMut[Q], _ types.Env, _ []byte) (types.Response[C], error) {
	return types.Response[C]{}, &capi.NotImplementedError{Entry: "Migrate"}
}
