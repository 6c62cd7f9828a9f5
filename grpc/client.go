package capigrpc

import (
	"context"
	"fmt"
	"time"

	"github.com/blockberries/capi/types"

	"google.golang.org/grpc"
)

// Compile-time interface check.
var _ types.RawQuerier = (*RemoteQuerier)(nil)

// defaultCallTimeout bounds each RawQuery round trip. The RawQuerier
// interface is ctx-less (contract handlers never block on their own),
// so the deadline lives here.
const defaultCallTimeout = 5 * time.Second

// RemoteQuerier implements types.RawQuerier against a host engine's
// querier service over gRPC using cramberry serialization.
type RemoteQuerier struct {
	cc      *grpc.ClientConn
	timeout time.Duration
}

// Dial connects to a remote querier service.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*RemoteQuerier, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("capi querier client: dial %s: %w", addr, err)
	}
	return &RemoteQuerier{cc: cc, timeout: defaultCallTimeout}, nil
}

// WithCallTimeout returns a copy using the given per-call timeout.
func (q *RemoteQuerier) WithCallTimeout(d time.Duration) *RemoteQuerier {
	return &RemoteQuerier{cc: q.cc, timeout: d}
}

func (q *RemoteQuerier) Close() error {
	return q.cc.Close()
}

// RawQuery dispatches an encoded query to the remote host engine.
func (q *RemoteQuerier) RawQuery(req []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	resp := new(RawQueryResponse)
	if err := q.cc.Invoke(ctx, fullMethod("RawQuery"), &RawQueryRequest{Data: req}, resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
