// Package customize converts request contexts and responses between
// the baseline extension type (types.Empty) and arbitrary chain
// extension types.
//
// The two directions are deliberately asymmetric. Request contexts
// only narrow: any Deps[Q] can be viewed as Deps[Empty], because the
// baseline query surface is a subset of every extension surface.
// Responses and submessages only widen: anything built under
// Msg[Empty] is expressible under any Msg[C], because the baseline
// never carries the custom variant.
package customize

import (
	"errors"

	"github.com/blockberries/capi/types"
)

// ErrUnknownMsgVariant is returned when widening encounters a message
// with no recognized variant set. Silently passing it through would
// drop data, so the mapping refuses.
var ErrUnknownMsgVariant = errors.New("unknown message variant")

// NarrowDeps views a read-only context over any extension query type
// as baseline-typed. The same storage, host API, and underlying raw
// querier are carried through; only the typed query surface shrinks.
func NarrowDeps[Q any](deps types.Deps[Q]) types.Deps[types.Empty] {
	return types.Deps[types.Empty]{
		Storage: deps.Storage,
		API:     deps.API,
		Querier: types.NewQuerierWrapper[types.Empty](deps.Querier.Raw()),
	}
}

// NarrowDepsMut views a mutable context over any extension query type
// as baseline-typed.
func NarrowDepsMut[Q any](deps types.DepsMut[Q]) types.DepsMut[types.Empty] {
	return types.DepsMut[types.Empty]{
		Storage: deps.Storage,
		API:     deps.API,
		Querier: types.NewQuerierWrapper[types.Empty](deps.Querier.Raw()),
	}
}

// WidenSubMsg converts a baseline submessage envelope to one carrying
// any extension message type C. The correlation ID, reply policy, and
// gas ceiling are carried through unchanged; every structural message
// variant is copied as-is.
//
// A populated Custom variant on a baseline message is an invariant
// violation — nothing can legitimately construct one — and panics. An
// envelope with no variant set at all fails with
// [ErrUnknownMsgVariant].
func WidenSubMsg[C any](msg types.SubMsg[types.Empty]) (types.SubMsg[C], error) {
	widened, err := widenMsg[C](msg.Msg)
	if err != nil {
		return types.SubMsg[C]{}, err
	}
	return types.SubMsg[C]{
		ID:       msg.ID,
		Msg:      widened,
		GasLimit: msg.GasLimit,
		ReplyOn:  msg.ReplyOn,
	}, nil
}

func widenMsg[C any](msg types.Msg[types.Empty]) (types.Msg[C], error) {
	switch {
	case msg.Wasm != nil:
		return types.Msg[C]{Wasm: msg.Wasm}, nil
	case msg.Bank != nil:
		return types.Msg[C]{Bank: msg.Bank}, nil
	case msg.Staking != nil:
		return types.Msg[C]{Staking: msg.Staking}, nil
	case msg.Distribution != nil:
		return types.Msg[C]{Distribution: msg.Distribution}, nil
	case msg.IBC != nil:
		return types.Msg[C]{IBC: msg.IBC}, nil
	case msg.Raw != nil:
		return types.Msg[C]{Raw: msg.Raw}, nil
	case msg.Custom != nil:
		// A baseline message never carries a custom payload; only a
		// programming error can put one here.
		panic("github.com/blockberries/capi: custom variant in baseline message")
	default:
		return types.Msg[C]{}, ErrUnknownMsgVariant
	}
}

// WidenResponse converts a baseline response to one carrying any
// extension message type C: every submessage envelope is widened
// independently; events, attributes, and the opaque result payload
// are carried through exactly.
func WidenResponse[C any](resp types.Response[types.Empty]) (types.Response[C], error) {
	out := types.Response[C]{
		Events:     resp.Events,
		Attributes: resp.Attributes,
		Data:       resp.Data,
	}
	if len(resp.Messages) > 0 {
		out.Messages = make([]types.SubMsg[C], len(resp.Messages))
		for i, msg := range resp.Messages {
			widened, err := WidenSubMsg[C](msg)
			if err != nil {
				return types.Response[C]{}, err
			}
			out.Messages[i] = widened
		}
	}
	return out, nil
}
