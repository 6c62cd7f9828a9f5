package types

import "fmt"

// ReplyOn is the reply policy of a submessage: under which outcomes of
// its execution the emitting contract's Reply entry point is invoked.
type ReplyOn uint8

const (
	// ReplyNever: fire and forget, no reply.
	ReplyNever ReplyOn = iota
	// ReplyAlways: reply on both success and failure.
	ReplyAlways
	// ReplySuccess: reply only if the submessage succeeded.
	ReplySuccess
	// ReplyError: reply only if the submessage failed.
	ReplyError
)

// String returns a human-readable representation.
func (r ReplyOn) String() string {
	switch r {
	case ReplyNever:
		return "never"
	case ReplyAlways:
		return "always"
	case ReplySuccess:
		return "success"
	case ReplyError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(r))
	}
}

// SubMsg is an outbound message envelope: the message itself plus a
// correlation identifier, a reply policy, and an optional gas ceiling.
// The host engine executes the message and, depending on ReplyOn,
// routes the outcome back to the contract's Reply entry point under ID.
type SubMsg[C any] struct {
	ID       uint64  `cramberry:"1"`
	Msg      Msg[C]  `cramberry:"2"`
	GasLimit *uint64 `cramberry:"3"`
	ReplyOn  ReplyOn `cramberry:"4"`
}

// NewSubMsg wraps a message in an envelope with no reply requested.
func NewSubMsg[C any](msg Msg[C]) SubMsg[C] {
	return SubMsg[C]{Msg: msg, ReplyOn: ReplyNever}
}

// ReplyOnSuccess wraps a message requesting a reply under id if it
// succeeds.
func ReplyOnSuccess[C any](id uint64, msg Msg[C]) SubMsg[C] {
	return SubMsg[C]{ID: id, Msg: msg, ReplyOn: ReplySuccess}
}

// ReplyOnError wraps a message requesting a reply under id if it fails.
func ReplyOnError[C any](id uint64, msg Msg[C]) SubMsg[C] {
	return SubMsg[C]{ID: id, Msg: msg, ReplyOn: ReplyError}
}

// ReplyAlwaysOn wraps a message requesting a reply under id for any
// outcome.
func ReplyAlwaysOn[C any](id uint64, msg Msg[C]) SubMsg[C] {
	return SubMsg[C]{ID: id, Msg: msg, ReplyOn: ReplyAlways}
}

// WithGasLimit returns a copy of the envelope with a gas ceiling set.
func (s SubMsg[C]) WithGasLimit(limit uint64) SubMsg[C] {
	s.GasLimit = &limit
	return s
}
