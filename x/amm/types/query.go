package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Position(context.Context, *QueryPositionRequest) (*QueryPositionResponse, error)
	UnclaimedFees(context.Context, *QueryUnclaimedFeesRequest) (*QueryUnclaimedFeesResponse, error)
	Volume(context.Context, *QueryVolumeRequest) (*QueryVolumeResponse, error)
	SimulateSwap(context.Context, *QuerySimulateSwapRequest) (*QuerySimulateSwapResponse, error)
}

// QueryParamsRequest is the request type for the Query/Params RPC
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest is the request type for the Query/Pool RPC
type QueryPoolRequest struct{}

// QueryPoolResponse is the response type for the Query/Pool RPC
type QueryPoolResponse struct {
	Pool        PoolState `json:"pool"`
	TotalShares math.Int  `json:"total_shares"`
	Tvl         math.Int  `json:"tvl"`
	SpotPriceAB math.Int  `json:"spot_price_a_b"`
}

// QueryPositionRequest is the request type for the Query/Position RPC
type QueryPositionRequest struct {
	Address string `json:"address"`
}

// QueryPositionResponse is the response type for the Query/Position RPC
type QueryPositionResponse struct {
	Position LiquidityPosition `json:"position"`
}

// QueryUnclaimedFeesRequest is the request type for the Query/UnclaimedFees RPC
type QueryUnclaimedFeesRequest struct {
	Address string `json:"address"`
}

// QueryUnclaimedFeesResponse is the response type for the Query/UnclaimedFees RPC
type QueryUnclaimedFeesResponse struct {
	Unclaimed math.Int   `json:"unclaimed"`
	Tracker   FeeTracker `json:"tracker"`
}

// QueryVolumeRequest is the request type for the Query/Volume RPC
type QueryVolumeRequest struct{}

// QueryVolumeResponse is the response type for the Query/Volume RPC
type QueryVolumeResponse struct {
	Volume VolumeTracker `json:"volume"`
}

// QuerySimulateSwapRequest is the request type for the Query/SimulateSwap RPC
type QuerySimulateSwapRequest struct {
	AssetIn  string   `json:"asset_in"`
	AmountIn math.Int `json:"amount_in"`
}

// QuerySimulateSwapResponse is the response type for the Query/SimulateSwap RPC
type QuerySimulateSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
	FeeAmount math.Int `json:"fee_amount"`
}

// proto.Message implementations for the hand-written query types

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return fmt.Sprintf("%v", *m) }
func (m *QueryParamsRequest) ProtoMessage()  {}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return fmt.Sprintf("%v", *m) }
func (m *QueryParamsResponse) ProtoMessage()  {}

func (m *QueryPoolRequest) Reset()         { *m = QueryPoolRequest{} }
func (m *QueryPoolRequest) String() string { return fmt.Sprintf("%v", *m) }
func (m *QueryPoolRequest) ProtoMessage()  {}

func (m *QueryPoolResponse) Reset()         { *m = QueryPoolResponse{} }
func (m *QueryPoolResponse) String() string { return fmt.Sprintf("%v", *m) }
func (m *QueryPoolResponse) ProtoMessage()  {}

func (m *QueryPositionRequest) Reset()         { *m = QueryPositionRequest{} }
func (m *QueryPositionRequest) String() string { return fmt.Sprintf("%v", *m) }
func (m *QueryPositionRequest) ProtoMessage()  {}

func (m *QueryPositionResponse) Reset()         { *m = QueryPositionResponse{} }
func (m *QueryPositionResponse) String() string { return fmt.Sprintf("%v", *m) }
func (m *QueryPositionResponse) ProtoMessage()  {}

func (m *QueryUnclaimedFeesRequest) Reset()         { *m = QueryUnclaimedFeesRequest{} }
func (m *QueryUnclaimedFeesRequest) String() string { return fmt.Sprintf("%v", *m) }
func (m *QueryUnclaimedFeesRequest) ProtoMessage()  {}

func (m *QueryUnclaimedFeesResponse) Reset()         { *m = QueryUnclaimedFeesResponse{} }
func (m *QueryUnclaimedFeesResponse) String() string { return fmt.Sprintf("%v", *m) }
func (m *QueryUnclaimedFeesResponse) ProtoMessage()  {}

func (m *QueryVolumeRequest) Reset()         { *m = QueryVolumeRequest{} }
func (m *QueryVolumeRequest) String() string { return fmt.Sprintf("%v", *m) }
func (m *QueryVolumeRequest) ProtoMessage()  {}

func (m *QueryVolumeResponse) Reset()         { *m = QueryVolumeResponse{} }
func (m *QueryVolumeResponse) String() string { return fmt.Sprintf("%v", *m) }
func (m *QueryVolumeResponse) ProtoMessage()  {}

func (m *QuerySimulateSwapRequest) Reset()         { *m = QuerySimulateSwapRequest{} }
func (m *QuerySimulateSwapRequest) String() string { return fmt.Sprintf("%v", *m) }
func (m *QuerySimulateSwapRequest) ProtoMessage()  {}

func (m *QuerySimulateSwapResponse) Reset()         { *m = QuerySimulateSwapResponse{} }
func (m *QuerySimulateSwapResponse) String() string { return fmt.Sprintf("%v", *m) }
func (m *QuerySimulateSwapResponse) ProtoMessage()  {}
