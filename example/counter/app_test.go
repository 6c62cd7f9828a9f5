package counter_test

import (
	"errors"
	"testing"

	"github.com/blockberries/capi"
	"github.com/blockberries/capi/codec"
	"github.com/blockberries/capi/example/counter"
	capitest "github.com/blockberries/capi/testing"
	"github.com/blockberries/capi/types"
	"github.com/blockberries/capi/wrapper"
)

func TestCounter_Lifecycle(t *testing.T) {
	h := capitest.NewHarness[types.Empty, types.Empty](t, counter.NewContract())

	h.Instantiate("creator", counter.InstantiateMsg{Count: 10})

	resp := h.Execute("alice", counter.ExecuteMsg{Increment: &counter.IncrementMsg{By: 5}})
	if len(resp.Attributes) != 1 || resp.Attributes[0].Value != "increment" {
		t.Errorf("attributes = %+v", resp.Attributes)
	}
	if len(resp.Messages) != 0 {
		t.Errorf("submessages = %+v", resp.Messages)
	}

	var count counter.CountResponse
	h.Query(counter.QueryMsg{Count: &counter.CountQuery{}}, &count)
	if count.Count != 15 {
		t.Errorf("count = %d, want 15", count.Count)
	}

	h.Execute("alice", counter.ExecuteMsg{Reset: &counter.ResetMsg{Count: 0}})
	h.Query(counter.QueryMsg{Count: &counter.CountQuery{}}, &count)
	if count.Count != 0 {
		t.Errorf("count after reset = %d, want 0", count.Count)
	}
}

func TestCounter_UnknownVariants(t *testing.T) {
	contract := counter.NewContract()
	h := capitest.NewHarness[types.Empty, types.Empty](t, contract)

	_, err := contract.Execute(h.DepsMut(), h.Env(), capitest.MockInfo("alice"),
		codec.MustMarshal(counter.ExecuteMsg{}))
	var callErr *capi.CallError
	if !errors.As(err, &callErr) || callErr.Entry != "execute" {
		t.Errorf("empty execute union: %v", err)
	}

	_, err = contract.Query(h.Deps(), h.Env(), codec.MustMarshal(counter.QueryMsg{}))
	if !errors.As(err, &callErr) || callErr.Entry != "query" {
		t.Errorf("empty query union: %v", err)
	}
}

func TestCounter_Compliance(t *testing.T) {
	capitest.RunComplianceSuite(t,
		func() capi.Contract[types.Empty, types.Empty] { return counter.NewContract() },
		capitest.ComplianceOptions{
			ValidInstantiate: codec.MustMarshal(counter.InstantiateMsg{Count: 1}),
			ValidExecute:     codec.MustMarshal(counter.ExecuteMsg{Increment: &counter.IncrementMsg{By: 1}}),
			ValidQuery:       codec.MustMarshal(counter.QueryMsg{Count: &counter.CountQuery{}}),
		})
}

// Two unrelated extension pairs for the casting check.
type oracleQuery struct {
	Price *string `cramberry:"1"`
}

type oracleMsg struct {
	Publish *string `cramberry:"1"`
}

type govQuery struct {
	Proposal *uint64 `cramberry:"1"`
}

type govMsg struct {
	Vote *uint64 `cramberry:"1"`
}

func TestCounter_CastToAnyExtensionPair(t *testing.T) {
	runUnder := func(t *testing.T, run func(*testing.T) (attrs []types.EventAttribute, msgs int, count uint64)) {
		attrs, msgs, count := run(t)
		if len(attrs) != 1 || attrs[0].Key != "action" || attrs[0].Value != "increment" {
			t.Errorf("attributes = %+v", attrs)
		}
		if msgs != 0 {
			t.Errorf("submessages = %d, want 0", msgs)
		}
		if count != 5 {
			t.Errorf("count = %d, want 5", count)
		}
	}

	t.Run("oracle", func(t *testing.T) {
		runUnder(t, func(t *testing.T) ([]types.EventAttribute, int, uint64) {
			cast := wrapper.CastContract[oracleQuery, oracleMsg](counter.NewContract())
			h := capitest.NewHarness[oracleQuery, oracleMsg](t, cast)
			h.Instantiate("creator", counter.InstantiateMsg{})
			resp := h.Execute("alice", counter.ExecuteMsg{Increment: &counter.IncrementMsg{By: 5}})
			var count counter.CountResponse
			h.Query(counter.QueryMsg{Count: &counter.CountQuery{}}, &count)
			return resp.Attributes, len(resp.Messages), count.Count
		})
	})
	t.Run("gov", func(t *testing.T) {
		runUnder(t, func(t *testing.T) ([]types.EventAttribute, int, uint64) {
			cast := wrapper.CastContract[govQuery, govMsg](counter.NewContract())
			h := capitest.NewHarness[govQuery, govMsg](t, cast)
			h.Instantiate("creator", counter.InstantiateMsg{})
			resp := h.Execute("alice", counter.ExecuteMsg{Increment: &counter.IncrementMsg{By: 5}})
			var count counter.CountResponse
			h.Query(counter.QueryMsg{Count: &counter.CountQuery{}}, &count)
			return resp.Attributes, len(resp.Messages), count.Count
		})
	})
}
