// Package capigrpc provides the gRPC transport for the query-dispatch
// collaborator: a host engine exposes its raw querier, and a contract
// harness in another process consumes it as a types.RawQuerier.
//
// Storage and host-API handles are per-call borrows and never cross
// the process boundary; the querier is the one collaborator with a
// byte-in/byte-out contract, which is why it is the one that gets a
// transport. No protobuf code generation is required — wire types are
// serialized directly via cramberry struct tags.
package capigrpc

import (
	"github.com/blockberries/capi/codec"
	"google.golang.org/grpc/encoding"
)

const codecName = "cramberry"

// CramberryCodec implements grpc/encoding.Codec using the module's
// payload codec for deterministic binary serialization.
type CramberryCodec struct{}

func (CramberryCodec) Marshal(v any) ([]byte, error) {
	return codec.Marshal(v)
}

func (CramberryCodec) Unmarshal(data []byte, v any) error {
	return codec.Unmarshal(data, v)
}

func (CramberryCodec) Name() string { return codecName }

func init() {
	encoding.RegisterCodec(CramberryCodec{})
}
