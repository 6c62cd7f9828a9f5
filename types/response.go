package types

// Response is the result of a state-mutating entry-point call: an
// ordered sequence of submessage envelopes to execute, emitted events,
// key-value attributes for the default event, and an optional opaque
// result payload.
type Response[C any] struct {
	Messages   []SubMsg[C]      `cramberry:"1"`
	Events     []Event          `cramberry:"2"`
	Attributes []EventAttribute `cramberry:"3"`
	Data       []byte           `cramberry:"4"`
}

// NewResponse creates an empty Response.
func NewResponse[C any]() Response[C] {
	return Response[C]{}
}

// AddAttribute returns a copy with one attribute appended.
func (r Response[C]) AddAttribute(key, value string) Response[C] {
	r.Attributes = append(r.Attributes[:len(r.Attributes):len(r.Attributes)],
		EventAttribute{Key: key, Value: value})
	return r
}

// AddEvent returns a copy with one event appended.
func (r Response[C]) AddEvent(event Event) Response[C] {
	r.Events = append(r.Events[:len(r.Events):len(r.Events)], event)
	return r
}

// AddMessage returns a copy with a fire-and-forget message appended.
func (r Response[C]) AddMessage(msg Msg[C]) Response[C] {
	return r.AddSubMsg(NewSubMsg(msg))
}

// AddSubMsg returns a copy with a submessage envelope appended.
func (r Response[C]) AddSubMsg(msg SubMsg[C]) Response[C] {
	r.Messages = append(r.Messages[:len(r.Messages):len(r.Messages)], msg)
	return r
}

// SetData returns a copy with the opaque result payload set.
func (r Response[C]) SetData(data []byte) Response[C] {
	r.Data = data
	return r
}
