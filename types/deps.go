package types

// Deps is the request context for read-only entry points: a shared
// read view of storage, the host-capability handle, and the typed
// query surface.
type Deps[Q any] struct {
	Storage ReadStorage
	API     HostAPI
	Querier QuerierWrapper[Q]
}

// DepsMut is the request context for state-mutating entry points. The
// Storage handle is exclusively owned for the duration of one call.
type DepsMut[Q any] struct {
	Storage Storage
	API     HostAPI
	Querier QuerierWrapper[Q]
}

// AsReadOnly reborrows the mutable context as a read-only one.
func (d DepsMut[Q]) AsReadOnly() Deps[Q] {
	return Deps[Q]{
		Storage: d.Storage,
		API:     d.API,
		Querier: d.Querier,
	}
}
