package types

// Msg is the outbound message union: exactly one variant field is
// non-nil. C is the chain-specific custom variant type; for Msg[Empty]
// the Custom variant is never populated, which is what makes widening
// a baseline message to any concrete extension type total.
type Msg[C any] struct {
	Wasm         *WasmMsg         `cramberry:"1"`
	Bank         *BankMsg         `cramberry:"2"`
	Staking      *StakingMsg      `cramberry:"3"`
	Distribution *DistributionMsg `cramberry:"4"`
	IBC          *IBCMsg          `cramberry:"5"`
	Raw          *RawMsg          `cramberry:"6"`
	Custom       *C               `cramberry:"7"`
}

// WasmMsg dispatches a call to another contract. Exactly one field set.
type WasmMsg struct {
	Execute     *ExecuteMsg     `cramberry:"1"`
	Instantiate *InstantiateMsg `cramberry:"2"`
	Migrate     *MigrateMsg     `cramberry:"3"`
}

// ExecuteMsg calls another contract at a known address.
type ExecuteMsg struct {
	ContractAddr string `cramberry:"1"`
	// Msg is the raw encoded payload passed to the callee's execute
	// entry point.
	Msg   []byte `cramberry:"2"`
	Funds []Coin `cramberry:"3"`
}

// InstantiateMsg creates a new contract instance from a previously
// registered code ID.
type InstantiateMsg struct {
	CodeID uint64 `cramberry:"1"`
	Msg    []byte `cramberry:"2"`
	Funds  []Coin `cramberry:"3"`
	Label  string `cramberry:"4"`
}

// MigrateMsg migrates an existing contract to new code.
type MigrateMsg struct {
	ContractAddr string `cramberry:"1"`
	NewCodeID    uint64 `cramberry:"2"`
	Msg          []byte `cramberry:"3"`
}

// BankMsg moves funds between accounts. Exactly one field set.
type BankMsg struct {
	Send *SendMsg `cramberry:"1"`
	Burn *BurnMsg `cramberry:"2"`
}

// SendMsg transfers funds from the contract to another account.
type SendMsg struct {
	ToAddress string `cramberry:"1"`
	Amount    []Coin `cramberry:"2"`
}

// BurnMsg removes funds from the contract's balance permanently.
type BurnMsg struct {
	Amount []Coin `cramberry:"1"`
}

// StakingMsg performs a staking operation. Exactly one field set.
type StakingMsg struct {
	Delegate   *DelegateMsg   `cramberry:"1"`
	Undelegate *UndelegateMsg `cramberry:"2"`
	Redelegate *RedelegateMsg `cramberry:"3"`
}

// DelegateMsg bonds funds to a validator.
type DelegateMsg struct {
	Validator string `cramberry:"1"`
	Amount    Coin   `cramberry:"2"`
}

// UndelegateMsg unbonds funds from a validator.
type UndelegateMsg struct {
	Validator string `cramberry:"1"`
	Amount    Coin   `cramberry:"2"`
}

// RedelegateMsg moves a bond between validators.
type RedelegateMsg struct {
	SrcValidator string `cramberry:"1"`
	DstValidator string `cramberry:"2"`
	Amount       Coin   `cramberry:"3"`
}

// DistributionMsg performs a reward-distribution operation.
// Exactly one field set.
type DistributionMsg struct {
	SetWithdrawAddress      *SetWithdrawAddressMsg      `cramberry:"1"`
	WithdrawDelegatorReward *WithdrawDelegatorRewardMsg `cramberry:"2"`
}

// SetWithdrawAddressMsg changes the reward withdraw address.
type SetWithdrawAddressMsg struct {
	Address string `cramberry:"1"`
}

// WithdrawDelegatorRewardMsg claims accumulated rewards from a validator.
type WithdrawDelegatorRewardMsg struct {
	Validator string `cramberry:"1"`
}

// IBCMsg performs a cross-chain operation. Exactly one field set.
type IBCMsg struct {
	Transfer     *TransferMsg     `cramberry:"1"`
	SendPacket   *SendPacketMsg   `cramberry:"2"`
	CloseChannel *CloseChannelMsg `cramberry:"3"`
}

// TransferMsg sends funds over an established IBC transfer channel.
type TransferMsg struct {
	ChannelID string    `cramberry:"1"`
	ToAddress string    `cramberry:"2"`
	Amount    Coin      `cramberry:"3"`
	Timeout   Timestamp `cramberry:"4"`
}

// SendPacketMsg sends a raw packet over an IBC channel owned by the
// contract.
type SendPacketMsg struct {
	ChannelID string    `cramberry:"1"`
	Data      []byte    `cramberry:"2"`
	Timeout   Timestamp `cramberry:"3"`
}

// CloseChannelMsg closes an IBC channel owned by the contract.
type CloseChannelMsg struct {
	ChannelID string `cramberry:"1"`
}

// RawMsg is a protocol-level passthrough: an opaque encoded message
// the host engine routes by type URL without inspecting.
type RawMsg struct {
	TypeURL string `cramberry:"1"`
	Value   []byte `cramberry:"2"`
}

// NewBankSend builds a bank send message.
func NewBankSend[C any](toAddress string, amount ...Coin) Msg[C] {
	return Msg[C]{Bank: &BankMsg{Send: &SendMsg{ToAddress: toAddress, Amount: amount}}}
}

// NewWasmExecute builds a contract-call message with a raw encoded
// payload.
func NewWasmExecute[C any](contractAddr string, msg []byte, funds ...Coin) Msg[C] {
	return Msg[C]{Wasm: &WasmMsg{Execute: &ExecuteMsg{
		ContractAddr: contractAddr,
		Msg:          msg,
		Funds:        funds,
	}}}
}

// NewCustom builds a chain-specific custom message.
func NewCustom[C any](custom C) Msg[C] {
	return Msg[C]{Custom: &custom}
}
