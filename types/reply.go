package types

// Reply delivers the outcome of a submessage execution back to the
// contract that emitted it. ID is the correlation identifier from the
// originating SubMsg.
type Reply struct {
	ID     uint64       `cramberry:"1"`
	Result SubMsgResult `cramberry:"2"`
}

// SubMsgResult is the outcome of one submessage execution: exactly one
// of Ok or Err is set.
type SubMsgResult struct {
	Ok *SubMsgResponse `cramberry:"1"`
	// Err is the rendered error message of a failed execution.
	Err string `cramberry:"2"`
}

// SubMsgResponse carries the observable effects of a successful
// submessage execution.
type SubMsgResponse struct {
	Events []Event `cramberry:"1"`
	Data   []byte  `cramberry:"2"`
}

// IsOk reports whether the submessage succeeded.
func (r SubMsgResult) IsOk() bool {
	return r.Ok != nil
}

// SuccessReply builds the outcome of a successful submessage.
func SuccessReply(id uint64, events []Event, data []byte) Reply {
	return Reply{
		ID:     id,
		Result: SubMsgResult{Ok: &SubMsgResponse{Events: events, Data: data}},
	}
}

// FailedReply builds the outcome of a failed submessage.
func FailedReply(id uint64, errMsg string) Reply {
	return Reply{
		ID:     id,
		Result: SubMsgResult{Err: errMsg},
	}
}
