package capigrpc

// Transport-specific wrapper types for the querier RPC. Used only at
// gRPC serialization boundaries; the query payload itself stays opaque
// here, exactly as it is for types.RawQuerier.

// RawQueryRequest wraps an encoded QueryRequest.
type RawQueryRequest struct {
	Data []byte `cramberry:"1"`
}

// RawQueryResponse wraps the encoded query result.
type RawQueryResponse struct {
	Data []byte `cramberry:"1"`
}
