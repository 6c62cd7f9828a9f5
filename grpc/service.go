package capigrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

const serviceName = "github.com/blockberries/capi.v1.QuerierService"

// QuerierServiceServer is the server-side interface for the querier
// gRPC service.
type QuerierServiceServer interface {
	RawQuery(context.Context, *RawQueryRequest) (*RawQueryResponse, error)
}

// RegisterQuerierServiceServer registers the service on a gRPC server.
func RegisterQuerierServiceServer(s *grpc.Server, srv QuerierServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

func handlerRawQuery(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(RawQueryRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(QuerierServiceServer).RawQuery(ctx, req)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor for the querier.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*QuerierServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RawQuery", Handler: handlerRawQuery},
	},
	Metadata: "github.com/blockberries/capi/v1/querier.cram",
}
