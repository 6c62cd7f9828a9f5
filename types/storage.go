package types

// ReadStorage is a shared read-only view of contract key-value state.
type ReadStorage interface {
	// Get returns the value stored under key, or nil if absent.
	Get(key []byte) []byte
}

// Storage is exclusive read-write access to contract key-value state.
// A Storage handle is borrowed for the duration of one entry-point
// call and must not be retained.
type Storage interface {
	ReadStorage

	// Set stores value under key, replacing any previous value.
	Set(key, value []byte)

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key []byte)
}
