package capigrpc

import (
	"context"
	"net"

	"github.com/blockberries/capi/types"

	"google.golang.org/grpc"
)

// Compile-time interface check.
var _ QuerierServiceServer = (*QuerierServer)(nil)

// QuerierServer exposes a host engine's raw querier over gRPC.
type QuerierServer struct {
	querier types.RawQuerier
}

// NewQuerierServer creates a server wrapping the given querier.
func NewQuerierServer(querier types.RawQuerier) *QuerierServer {
	return &QuerierServer{querier: querier}
}

// Register adds the querier service to a gRPC server.
func (s *QuerierServer) Register(gs *grpc.Server) {
	RegisterQuerierServiceServer(gs, s)
}

// Serve starts a gRPC server on the given listener.
func (s *QuerierServer) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	return gs.Serve(lis)
}

// RawQuery dispatches the encoded query to the wrapped querier.
func (s *QuerierServer) RawQuery(_ context.Context, req *RawQueryRequest) (*RawQueryResponse, error) {
	resp, err := s.querier.RawQuery(req.Data)
	if err != nil {
		return nil, err
	}
	return &RawQueryResponse{Data: resp}, nil
}
