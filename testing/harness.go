package capitest

import (
	"testing"
	"time"

	"github.com/blockberries/capi"
	"github.com/blockberries/capi/codec"
	"github.com/blockberries/capi/types"
)

// MockEnv returns a fixed, deterministic execution environment.
func MockEnv() types.Env {
	return types.Env{
		Block: types.BlockInfo{
			Height:  12_345,
			Time:    types.TimeToTimestamp(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)),
			ChainID: "capi-testing",
		},
		Contract: types.ContractInfo{Address: "contract0"},
	}
}

// MockInfo builds execution metadata for the given sender.
func MockInfo(sender string, funds ...types.Coin) types.MessageInfo {
	return types.MessageInfo{Sender: sender, Funds: funds}
}

// Harness drives a contract through its entry points with in-memory
// collaborators. Messages are encoded with the module codec; any
// entry-point error fails the test. For error-path assertions call the
// contract directly via [Harness.Contract] and [Harness.DepsMut].
type Harness[Q, C any] struct {
	t        *testing.T
	contract capi.Contract[Q, C]
	storage  *MemStorage
	querier  types.RawQuerier
	env      types.Env
}

// NewHarness creates a harness with fresh storage and no querier
// responses configured.
func NewHarness[Q, C any](t *testing.T, contract capi.Contract[Q, C]) *Harness[Q, C] {
	t.Helper()
	return &Harness[Q, C]{
		t:        t,
		contract: contract,
		storage:  NewMemStorage(),
		querier:  NewStaticQuerier(),
		env:      MockEnv(),
	}
}

// WithQuerier replaces the raw querier behind the contract's query
// surface.
func (h *Harness[Q, C]) WithQuerier(raw types.RawQuerier) *Harness[Q, C] {
	h.querier = raw
	return h
}

// Contract returns the wrapped contract for direct access.
func (h *Harness[Q, C]) Contract() capi.Contract[Q, C] { return h.contract }

// Storage returns the backing storage for direct inspection.
func (h *Harness[Q, C]) Storage() *MemStorage { return h.storage }

// Env returns the current execution environment.
func (h *Harness[Q, C]) Env() types.Env { return h.env }

// AdvanceBlock moves the simulated chain forward one block.
func (h *Harness[Q, C]) AdvanceBlock() {
	h.env.Block.Height++
	h.env.Block.Time.Seconds += 5
}

// DepsMut builds a mutable request context over the harness
// collaborators.
func (h *Harness[Q, C]) DepsMut() types.DepsMut[Q] {
	return types.DepsMut[Q]{
		Storage: h.storage,
		API:     TestAPI{},
		Querier: types.NewQuerierWrapper[Q](h.querier),
	}
}

// Deps builds a read-only request context.
func (h *Harness[Q, C]) Deps() types.Deps[Q] {
	return h.DepsMut().AsReadOnly()
}

// Instantiate encodes msg and calls the instantiate entry point.
func (h *Harness[Q, C]) Instantiate(sender string, msg any, funds ...types.Coin) types.Response[C] {
	h.t.Helper()
	resp, err := h.contract.Instantiate(h.DepsMut(), h.env, MockInfo(sender, funds...), codec.MustMarshal(msg))
	if err != nil {
		h.t.Fatalf("Instantiate failed: %v", err)
	}
	return resp
}

// Execute encodes msg and calls the execute entry point.
func (h *Harness[Q, C]) Execute(sender string, msg any, funds ...types.Coin) types.Response[C] {
	h.t.Helper()
	resp, err := h.contract.Execute(h.DepsMut(), h.env, MockInfo(sender, funds...), codec.MustMarshal(msg))
	if err != nil {
		h.t.Fatalf("Execute failed: %v", err)
	}
	return resp
}

// Query encodes msg, calls the query entry point, and decodes the
// opaque payload into result.
func (h *Harness[Q, C]) Query(msg any, result any) {
	h.t.Helper()
	data, err := h.contract.Query(h.Deps(), h.env, codec.MustMarshal(msg))
	if err != nil {
		h.t.Fatalf("Query failed: %v", err)
	}
	if err := codec.Unmarshal(data, result); err != nil {
		h.t.Fatalf("Query result decode failed: %v", err)
	}
}

// Sudo encodes msg and calls the sudo entry point.
func (h *Harness[Q, C]) Sudo(msg any) types.Response[C] {
	h.t.Helper()
	resp, err := h.contract.Sudo(h.DepsMut(), h.env, codec.MustMarshal(msg))
	if err != nil {
		h.t.Fatalf("Sudo failed: %v", err)
	}
	return resp
}

// Reply delivers a submessage outcome to the reply entry point.
func (h *Harness[Q, C]) Reply(reply types.Reply) types.Response[C] {
	h.t.Helper()
	resp, err := h.contract.Reply(h.DepsMut(), h.env, reply)
	if err != nil {
		h.t.Fatalf("Reply failed: %v", err)
	}
	return resp
}

// Migrate encodes msg and calls the migrate entry point.
func (h *Harness[Q, C]) Migrate(msg any) types.Response[C] {
	h.t.Helper()
	resp, err := h.contract.Migrate(h.DepsMut(), h.env, codec.MustMarshal(msg))
	if err != nil {
		h.t.Fatalf("Migrate failed: %v", err)
	}
	return resp
}
