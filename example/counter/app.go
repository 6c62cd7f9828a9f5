// Package counter implements a minimal contract that keeps a single
// counter in storage. It demonstrates the three required entry points,
// authored against the baseline extension pair so the contract can be
// cast to any concrete pair at registration time.
package counter

import (
	"encoding/binary"
	"fmt"

	"github.com/blockberries/capi/codec"
	"github.com/blockberries/capi/types"
	"github.com/blockberries/capi/wrapper"
)

var countKey = []byte("count")

// InstantiateMsg sets the initial counter value.
type InstantiateMsg struct {
	Count uint64 `cramberry:"1"`
}

// ExecuteMsg is the execute union: exactly one field set.
type ExecuteMsg struct {
	Increment *IncrementMsg `cramberry:"1"`
	Reset     *ResetMsg     `cramberry:"2"`
}

// IncrementMsg adds By to the counter.
type IncrementMsg struct {
	By uint64 `cramberry:"1"`
}

// ResetMsg sets the counter to Count.
type ResetMsg struct {
	Count uint64 `cramberry:"1"`
}

// QueryMsg is the query union: exactly one field set.
type QueryMsg struct {
	Count *CountQuery `cramberry:"1"`
}

// CountQuery asks for the current counter value.
type CountQuery struct{}

// CountResponse answers CountQuery.
type CountResponse struct {
	Count uint64 `cramberry:"1"`
}

// NewContract binds the handlers into a baseline-typed contract.
func NewContract() *wrapper.ContractWrapper[types.Empty, types.Empty] {
	return wrapper.NewContract(Execute, Instantiate, Query)
}

// Instantiate stores the initial counter value.
func Instantiate(deps types.DepsMut[types.Empty], _ types.Env, _ types.MessageInfo, msg InstantiateMsg) (types.Response[types.Empty], error) {
	setCount(deps.Storage, msg.Count)
	return types.NewResponse[types.Empty]().
		AddAttribute("action", "instantiate"), nil
}

// Execute handles increment and reset.
func Execute(deps types.DepsMut[types.Empty], _ types.Env, _ types.MessageInfo, msg ExecuteMsg) (types.Response[types.Empty], error) {
	switch {
	case msg.Increment != nil:
		setCount(deps.Storage, readCount(deps.Storage)+msg.Increment.By)
		return types.NewResponse[types.Empty]().
			AddAttribute("action", "increment"), nil
	case msg.Reset != nil:
		setCount(deps.Storage, msg.Reset.Count)
		return types.NewResponse[types.Empty]().
			AddAttribute("action", "reset"), nil
	default:
		return types.Response[types.Empty]{}, fmt.Errorf("unknown execute message")
	}
}

// Query handles the count query.
func Query(deps types.Deps[types.Empty], _ types.Env, msg QueryMsg) ([]byte, error) {
	if msg.Count == nil {
		return nil, fmt.Errorf("unknown query message")
	}
	return codec.Marshal(CountResponse{Count: readCount(deps.Storage)})
}

func readCount(storage types.ReadStorage) uint64 {
	raw := storage.Get(countKey)
	if len(raw) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(raw)
}

func setCount(storage types.Storage, count uint64) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, count)
	storage.Set(countKey, buf)
}
