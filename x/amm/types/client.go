package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error)
	Position(ctx context.Context, in *QueryPositionRequest, opts ...grpc.CallOption) (*QueryPositionResponse, error)
	UnclaimedFees(ctx context.Context, in *QueryUnclaimedFeesRequest, opts ...grpc.CallOption) (*QueryUnclaimedFeesResponse, error)
	Volume(ctx context.Context, in *QueryVolumeRequest, opts ...grpc.CallOption) (*QueryVolumeResponse, error)
	SimulateSwap(ctx context.Context, in *QuerySimulateSwapRequest, opts ...grpc.CallOption) (*QuerySimulateSwapResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/cosmodex.amm.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error) {
	out := new(QueryPoolResponse)
	err := c.cc.Invoke(ctx, "/cosmodex.amm.v1.Query/Pool", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Position(ctx context.Context, in *QueryPositionRequest, opts ...grpc.CallOption) (*QueryPositionResponse, error) {
	out := new(QueryPositionResponse)
	err := c.cc.Invoke(ctx, "/cosmodex.amm.v1.Query/Position", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) UnclaimedFees(ctx context.Context, in *QueryUnclaimedFeesRequest, opts ...grpc.CallOption) (*QueryUnclaimedFeesResponse, error) {
	out := new(QueryUnclaimedFeesResponse)
	err := c.cc.Invoke(ctx, "/cosmodex.amm.v1.Query/UnclaimedFees", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Volume(ctx context.Context, in *QueryVolumeRequest, opts ...grpc.CallOption) (*QueryVolumeResponse, error) {
	out := new(QueryVolumeResponse)
	err := c.cc.Invoke(ctx, "/cosmodex.amm.v1.Query/Volume", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) SimulateSwap(ctx context.Context, in *QuerySimulateSwapRequest, opts ...grpc.CallOption) (*QuerySimulateSwapResponse, error) {
	out := new(QuerySimulateSwapResponse)
	err := c.cc.Invoke(ctx, "/cosmodex.amm.v1.Query/SimulateSwap", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
