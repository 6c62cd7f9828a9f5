// Package escrow implements a contract that holds deposited funds
// until an arbiter releases them to a beneficiary. It exercises the
// full optional surface: bank submessages with reply correlation,
// sudo (forced refund), and migrate.
package escrow

import (
	"fmt"

	"github.com/blockberries/capi/codec"
	"github.com/blockberries/capi/types"
	"github.com/blockberries/capi/wrapper"
)

// ReplyReleased is the correlation ID of the release payout
// submessage.
const ReplyReleased = 1

var stateKey = []byte("state")

// State is the stored contract state.
type State struct {
	Arbiter     string       `cramberry:"1"`
	Beneficiary string       `cramberry:"2"`
	Depositor   string       `cramberry:"3"`
	Balance     []types.Coin `cramberry:"4"`
	Released    bool         `cramberry:"5"`
	Version     uint64       `cramberry:"6"`
}

// InstantiateMsg names the parties. Funds attached at instantiation
// become the opening balance and the sender becomes the depositor.
type InstantiateMsg struct {
	Arbiter     string `cramberry:"1"`
	Beneficiary string `cramberry:"2"`
}

// ExecuteMsg is the execute union: exactly one field set.
type ExecuteMsg struct {
	Deposit *DepositMsg `cramberry:"1"`
	Release *ReleaseMsg `cramberry:"2"`
}

// DepositMsg adds the attached funds to the escrow balance.
type DepositMsg struct{}

// ReleaseMsg pays the balance out to the beneficiary. Arbiter only.
type ReleaseMsg struct{}

// SudoMsg is the sudo union: exactly one field set.
type SudoMsg struct {
	Refund *RefundMsg `cramberry:"1"`
}

// RefundMsg forcibly returns the balance to the depositor.
type RefundMsg struct{}

// MigrateMsg bumps the stored contract version.
type MigrateMsg struct {
	Version uint64 `cramberry:"1"`
}

// QueryMsg is the query union: exactly one field set.
type QueryMsg struct {
	Status *StatusQuery `cramberry:"1"`
}

// StatusQuery asks for the current escrow state.
type StatusQuery struct{}

// StatusResponse answers StatusQuery.
type StatusResponse struct {
	Arbiter     string       `cramberry:"1"`
	Beneficiary string       `cramberry:"2"`
	Balance     []types.Coin `cramberry:"3"`
	Released    bool         `cramberry:"4"`
	Version     uint64       `cramberry:"5"`
}

// NewContract binds all six entry points into a baseline-typed
// contract.
func NewContract() *wrapper.ContractWrapper[types.Empty, types.Empty] {
	c := wrapper.NewContract(Execute, Instantiate, Query)
	c = wrapper.WithSudo(c, Sudo)
	c = wrapper.WithReply(c, Reply)
	c = wrapper.WithMigrate(c, Migrate)
	return c
}

// Instantiate validates the parties and stores the opening state.
func Instantiate(deps types.DepsMut[types.Empty], _ types.Env, info types.MessageInfo, msg InstantiateMsg) (types.Response[types.Empty], error) {
	if err := deps.API.ValidateAddress(msg.Arbiter); err != nil {
		return types.Response[types.Empty]{}, fmt.Errorf("arbiter: %w", err)
	}
	if err := deps.API.ValidateAddress(msg.Beneficiary); err != nil {
		return types.Response[types.Empty]{}, fmt.Errorf("beneficiary: %w", err)
	}
	state := State{
		Arbiter:     msg.Arbiter,
		Beneficiary: msg.Beneficiary,
		Depositor:   info.Sender,
		Balance:     info.Funds,
	}
	if err := saveState(deps.Storage, state); err != nil {
		return types.Response[types.Empty]{}, err
	}
	return types.NewResponse[types.Empty]().
		AddAttribute("action", "instantiate").
		AddAttribute("arbiter", msg.Arbiter), nil
}

// Execute handles deposits and releases.
func Execute(deps types.DepsMut[types.Empty], _ types.Env, info types.MessageInfo, msg ExecuteMsg) (types.Response[types.Empty], error) {
	state, err := loadState(deps.Storage)
	if err != nil {
		return types.Response[types.Empty]{}, err
	}
	switch {
	case msg.Deposit != nil:
		if state.Released {
			return types.Response[types.Empty]{}, fmt.Errorf("escrow already released")
		}
		state.Balance = addCoins(state.Balance, info.Funds)
		if err := saveState(deps.Storage, state); err != nil {
			return types.Response[types.Empty]{}, err
		}
		return types.NewResponse[types.Empty]().
			AddAttribute("action", "deposit"), nil

	case msg.Release != nil:
		if info.Sender != state.Arbiter {
			return types.Response[types.Empty]{}, fmt.Errorf("only the arbiter can release")
		}
		if state.Released {
			return types.Response[types.Empty]{}, fmt.Errorf("escrow already released")
		}
		if len(state.Balance) == 0 {
			return types.Response[types.Empty]{}, fmt.Errorf("nothing to release")
		}
		payout := types.ReplyOnSuccess(ReplyReleased,
			types.NewBankSend[types.Empty](state.Beneficiary, state.Balance...))
		return types.NewResponse[types.Empty]().
			AddSubMsg(payout).
			AddAttribute("action", "release").
			AddAttribute("beneficiary", state.Beneficiary), nil

	default:
		return types.Response[types.Empty]{}, fmt.Errorf("unknown execute message")
	}
}

// Sudo handles the forced refund, returning the balance to the
// depositor without arbiter involvement.
func Sudo(deps types.DepsMut[types.Empty], _ types.Env, msg SudoMsg) (types.Response[types.Empty], error) {
	if msg.Refund == nil {
		return types.Response[types.Empty]{}, fmt.Errorf("unknown sudo message")
	}
	state, err := loadState(deps.Storage)
	if err != nil {
		return types.Response[types.Empty]{}, err
	}
	if len(state.Balance) == 0 {
		return types.Response[types.Empty]{}, fmt.Errorf("nothing to refund")
	}
	refund := types.NewBankSend[types.Empty](state.Depositor, state.Balance...)
	state.Balance = nil
	state.Released = true
	if err := saveState(deps.Storage, state); err != nil {
		return types.Response[types.Empty]{}, err
	}
	return types.NewResponse[types.Empty]().
		AddMessage(refund).
		AddAttribute("action", "refund"), nil
}

// Reply finalizes a release once the payout submessage succeeded.
func Reply(deps types.DepsMut[types.Empty], _ types.Env, reply types.Reply) (types.Response[types.Empty], error) {
	if reply.ID != ReplyReleased {
		return types.Response[types.Empty]{}, fmt.Errorf("unexpected reply id %d", reply.ID)
	}
	if !reply.Result.IsOk() {
		return types.Response[types.Empty]{}, fmt.Errorf("payout failed: %s", reply.Result.Err)
	}
	state, err := loadState(deps.Storage)
	if err != nil {
		return types.Response[types.Empty]{}, err
	}
	state.Balance = nil
	state.Released = true
	if err := saveState(deps.Storage, state); err != nil {
		return types.Response[types.Empty]{}, err
	}
	return types.NewResponse[types.Empty]().
		AddEvent(types.NewEvent("released").
			AddAttribute("beneficiary", state.Beneficiary)), nil
}

// Migrate bumps the stored version.
func Migrate(deps types.DepsMut[types.Empty], _ types.Env, msg MigrateMsg) (types.Response[types.Empty], error) {
	state, err := loadState(deps.Storage)
	if err != nil {
		return types.Response[types.Empty]{}, err
	}
	if msg.Version <= state.Version {
		return types.Response[types.Empty]{}, fmt.Errorf("version %d is not newer than %d", msg.Version, state.Version)
	}
	state.Version = msg.Version
	if err := saveState(deps.Storage, state); err != nil {
		return types.Response[types.Empty]{}, err
	}
	return types.NewResponse[types.Empty]().
		AddAttribute("action", "migrate"), nil
}

// Query handles the status query.
func Query(deps types.Deps[types.Empty], _ types.Env, msg QueryMsg) ([]byte, error) {
	if msg.Status == nil {
		return nil, fmt.Errorf("unknown query message")
	}
	state, err := loadState(deps.Storage)
	if err != nil {
		return nil, err
	}
	return codec.Marshal(StatusResponse{
		Arbiter:     state.Arbiter,
		Beneficiary: state.Beneficiary,
		Balance:     state.Balance,
		Released:    state.Released,
		Version:     state.Version,
	})
}

func loadState(storage types.ReadStorage) (State, error) {
	raw := storage.Get(stateKey)
	if raw == nil {
		return State{}, fmt.Errorf("escrow not instantiated")
	}
	var state State
	if err := codec.Unmarshal(raw, &state); err != nil {
		return State{}, err
	}
	return state, nil
}

func saveState(storage types.Storage, state State) error {
	raw, err := codec.Marshal(state)
	if err != nil {
		return err
	}
	storage.Set(stateKey, raw)
	return nil
}

func addCoins(balance []types.Coin, funds []types.Coin) []types.Coin {
	out := append([]types.Coin(nil), balance...)
next:
	for _, add := range funds {
		for i, have := range out {
			if have.Denom == add.Denom {
				out[i].Amount += add.Amount
				continue next
			}
		}
		out = append(out, add)
	}
	return out
}
