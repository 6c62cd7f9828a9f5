package types

// EventAttribute is a single key-value tag within an event.
type EventAttribute struct {
	Key   string `cramberry:"1"`
	Value string `cramberry:"2"`
}

// Event is a contract-emitted event. Events are reported to the host
// engine in insertion order.
type Event struct {
	Kind       string           `cramberry:"1"`
	Attributes []EventAttribute `cramberry:"2"`
}

// NewEvent creates an event of the given kind with no attributes.
func NewEvent(kind string) Event {
	return Event{Kind: kind}
}

// AddAttribute returns a copy of the event with one attribute appended.
func (e Event) AddAttribute(key, value string) Event {
	attrs := make([]EventAttribute, len(e.Attributes), len(e.Attributes)+1)
	copy(attrs, e.Attributes)
	e.Attributes = append(attrs, EventAttribute{Key: key, Value: value})
	return e
}
