package types

// Env is the per-call execution metadata supplied by the host engine.
type Env struct {
	Block    BlockInfo    `cramberry:"1"`
	Contract ContractInfo `cramberry:"2"`
}

// BlockInfo describes the (simulated) block a call executes in.
type BlockInfo struct {
	Height  uint64    `cramberry:"1"`
	Time    Timestamp `cramberry:"2"`
	ChainID string    `cramberry:"3"`
}

// ContractInfo identifies the contract instance being called.
type ContractInfo struct {
	Address string `cramberry:"1"`
}

// MessageInfo carries the sender identity and attached funds for the
// entry points that thread them (instantiate, execute).
type MessageInfo struct {
	Sender string `cramberry:"1"`
	Funds  []Coin `cramberry:"2"`
}
