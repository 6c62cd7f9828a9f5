package wrapper

import (
	"github.com/blockberries/capi"
	"github.com/blockberries/capi/customize"
	"github.com/blockberries/capi/types"
)

// Type-parameter casting: adapt handlers authored against the baseline
// extension types to the concrete pair a host engine requires. Three
// independent transforms exist per entry-point kind:
//
//   - query-casting narrows the incoming context from NewQ to the
//     baseline before delegating (legal only when the handler was
//     authored against the baseline query type);
//   - message-casting widens the produced response from the baseline
//     to NewC after delegating (legal only when the handler was
//     authored against the baseline message type);
//   - full-casting composes both.
//
// Casting happens ahead of time, at contract-registration, never per
// call.

// CastContractFnQuery query-casts an instantiate/execute handler.
func CastContractFnQuery[T, NewQ, C any](fn ContractFn[T, types.Empty, C]) ContractFn[T, NewQ, C] {
	return func(deps types.DepsMut[NewQ], env types.Env, info types.MessageInfo, msg T) (types.Response[C], error) {
		return fn(customize.NarrowDepsMut(deps), env, info, msg)
	}
}

// CastContractFnMsg message-casts an instantiate/execute handler.
func CastContractFnMsg[T, Q, NewC any](fn ContractFn[T, Q, types.Empty]) ContractFn[T, Q, NewC] {
	return func(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, msg T) (types.Response[NewC], error) {
		resp, err := fn(deps, env, info, msg)
		if err != nil {
			return types.Response[NewC]{}, err
		}
		return customize.WidenResponse[NewC](resp)
	}
}

// CastContractFn full-casts an instantiate/execute handler authored
// against the baseline pair.
func CastContractFn[T, NewQ, NewC any](fn ContractFn[T, types.Empty, types.Empty]) ContractFn[T, NewQ, NewC] {
	return CastContractFnMsg[T, NewQ, NewC](CastContractFnQuery[T, NewQ, types.Empty](fn))
}

// CastPermissionedFnQuery query-casts a sudo/migrate handler.
func CastPermissionedFnQuery[T, NewQ, C any](fn PermissionedFn[T, types.Empty, C]) PermissionedFn[T, NewQ, C] {
	return func(deps types.DepsMut[NewQ], env types.Env, msg T) (types.Response[C], error) {
		return fn(customize.NarrowDepsMut(deps), env, msg)
	}
}

// CastPermissionedFnMsg message-casts a sudo/migrate handler.
func CastPermissionedFnMsg[T, Q, NewC any](fn PermissionedFn[T, Q, types.Empty]) PermissionedFn[T, Q, NewC] {
	return func(deps types.DepsMut[Q], env types.Env, msg T) (types.Response[NewC], error) {
		resp, err := fn(deps, env, msg)
		if err != nil {
			return types.Response[NewC]{}, err
		}
		return customize.WidenResponse[NewC](resp)
	}
}

// CastPermissionedFn full-casts a sudo/migrate handler.
func CastPermissionedFn[T, NewQ, NewC any](fn PermissionedFn[T, types.Empty, types.Empty]) PermissionedFn[T, NewQ, NewC] {
	return CastPermissionedFnMsg[T, NewQ, NewC](CastPermissionedFnQuery[T, NewQ, types.Empty](fn))
}

// CastReplyFnQuery query-casts a reply handler.
func CastReplyFnQuery[NewQ, C any](fn ReplyFn[types.Empty, C]) ReplyFn[NewQ, C] {
	return func(deps types.DepsMut[NewQ], env types.Env, reply types.Reply) (types.Response[C], error) {
		return fn(customize.NarrowDepsMut(deps), env, reply)
	}
}

// CastReplyFnMsg message-casts a reply handler.
func CastReplyFnMsg[Q, NewC any](fn ReplyFn[Q, types.Empty]) ReplyFn[Q, NewC] {
	return func(deps types.DepsMut[Q], env types.Env, reply types.Reply) (types.Response[NewC], error) {
		resp, err := fn(deps, env, reply)
		if err != nil {
			return types.Response[NewC]{}, err
		}
		return customize.WidenResponse[NewC](resp)
	}
}

// CastReplyFn full-casts a reply handler.
func CastReplyFn[NewQ, NewC any](fn ReplyFn[types.Empty, types.Empty]) ReplyFn[NewQ, NewC] {
	return CastReplyFnMsg[NewQ, NewC](CastReplyFnQuery[NewQ, types.Empty](fn))
}

// CastQueryFn query-casts a query handler. Query handlers produce an
// opaque payload, not a response, so there is no message direction.
func CastQueryFn[T, NewQ any](fn QueryFn[T, types.Empty]) QueryFn[T, NewQ] {
	return func(deps types.Deps[NewQ], env types.Env, msg T) ([]byte, error) {
		return fn(customize.NarrowDeps(deps), env, msg)
	}
}

// CastContract full-casts a whole bound contract at once: every entry
// point narrows its incoming context and widens its produced response.
// This is the registration-time convenience for contracts authored
// fully against the baseline pair.
func CastContract[NewQ, NewC any](contract capi.Contract[types.Empty, types.Empty]) capi.Contract[NewQ, NewC] {
	return &castContract[NewQ, NewC]{inner: contract}
}

type castContract[Q, C any] struct {
	inner capi.Contract[types.Empty, types.Empty]
}

func (c *castContract[Q, C]) Instantiate(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, msg []byte) (types.Response[C], error) {
	resp, err := c.inner.Instantiate(customize.NarrowDepsMut(deps), env, info, msg)
	if err != nil {
		return types.Response[C]{}, err
	}
	return customize.WidenResponse[C](resp)
}

func (c *castContract[Q, C]) Execute(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, msg []byte) (types.Response[C], error) {
	resp, err := c.inner.Execute(customize.NarrowDepsMut(deps), env, info, msg)
	if err != nil {
		return types.Response[C]{}, err
	}
	return customize.WidenResponse[C](resp)
}

func (c *castContract[Q, C]) Query(deps types.Deps[Q], env types.Env, msg []byte) ([]byte, error) {
	return c.inner.Query(customize.NarrowDeps(deps), env, msg)
}

func (c *castContract[Q, C]) Sudo(deps types.DepsMut[Q], env types.Env, msg []byte) (types.Response[C], error) {
	resp, err := c.inner.Sudo(customize.NarrowDepsMut(deps), env, msg)
	if err != nil {
		return types.Response[C]{}, err
	}
	return customize.WidenResponse[C](resp)
}

func (c *castContract[Q, C]) Reply(deps types.DepsMut[Q], env types.Env, reply types.Reply) (types.Response[C], error) {
	resp, err := c.inner.Reply(customize.NarrowDepsMut(deps), env, reply)
	if err != nil {
		return types.Response[C]{}, err
	}
	return customize.WidenResponse[C](resp)
}

func (c *castContract[Q, C]) Migrate(deps types.DepsMut[Q], env types.Env, msg []byte) (types.Response[C], error) {
	resp, err := c.inner.Migrate(customize.NarrowDepsMut(deps), env, msg)
	if err != nil {
		return types.Response[C]{}, err
	}
	return customize.WidenResponse[C](resp)
}
