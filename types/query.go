package types

import (
	"fmt"

	"github.com/blockberries/capi/codec"
)

// RawQuerier is the untyped query-dispatch collaborator supplied by
// the host engine: it resolves an encoded QueryRequest against chain
// and contract state. This layer only wraps it, never reimplements it.
type RawQuerier interface {
	RawQuery(req []byte) ([]byte, error)
}

// QueryRequest is the read-query union: exactly one variant field is
// non-nil. Q is the chain-specific custom query type.
type QueryRequest[Q any] struct {
	Bank   *BankQuery `cramberry:"1"`
	Wasm   *WasmQuery `cramberry:"2"`
	Raw    *RawQuery  `cramberry:"3"`
	Custom *Q         `cramberry:"4"`
}

// BankQuery reads chain account balances. Exactly one field set.
type BankQuery struct {
	Balance *BalanceQuery `cramberry:"1"`
}

// BalanceQuery asks for one account's balance in one denomination.
type BalanceQuery struct {
	Address string `cramberry:"1"`
	Denom   string `cramberry:"2"`
}

// WasmQuery reads another contract's state. Exactly one field set.
type WasmQuery struct {
	Smart *SmartQuery    `cramberry:"1"`
	State *RawStateQuery `cramberry:"2"`
}

// SmartQuery invokes another contract's query entry point with a raw
// encoded payload.
type SmartQuery struct {
	ContractAddr string `cramberry:"1"`
	Msg          []byte `cramberry:"2"`
}

// RawStateQuery reads one key of another contract's storage directly.
type RawStateQuery struct {
	ContractAddr string `cramberry:"1"`
	Key          []byte `cramberry:"2"`
}

// RawQuery is a protocol-level passthrough query routed by path.
type RawQuery struct {
	Path string `cramberry:"1"`
	Data []byte `cramberry:"2"`
}

// QuerierWrapper presents a RawQuerier as a typed query surface over
// the extension query type Q. It is a non-owning reference: narrowing
// a wrapper to the baseline type re-wraps the same underlying
// RawQuerier.
type QuerierWrapper[Q any] struct {
	raw RawQuerier
}

// NewQuerierWrapper wraps a raw querier.
func NewQuerierWrapper[Q any](raw RawQuerier) QuerierWrapper[Q] {
	return QuerierWrapper[Q]{raw: raw}
}

// Raw returns the underlying untyped querier.
func (q QuerierWrapper[Q]) Raw() RawQuerier {
	return q.raw
}

// Query encodes req, dispatches it, and decodes the reply into result.
func (q QuerierWrapper[Q]) Query(req QueryRequest[Q], result any) error {
	if q.raw == nil {
		return fmt.Errorf("query dispatch: no querier installed")
	}
	data, err := codec.Marshal(req)
	if err != nil {
		return fmt.Errorf("query dispatch: %w", err)
	}
	resp, err := q.raw.RawQuery(data)
	if err != nil {
		return err
	}
	return codec.Unmarshal(resp, result)
}

// QueryBalance is a convenience helper for the bank balance query.
func (q QuerierWrapper[Q]) QueryBalance(address, denom string) (Coin, error) {
	var coin Coin
	err := q.Query(QueryRequest[Q]{
		Bank: &BankQuery{Balance: &BalanceQuery{Address: address, Denom: denom}},
	}, &coin)
	return coin, err
}
