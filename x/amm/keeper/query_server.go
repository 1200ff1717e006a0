package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer
// interface for the provided Keeper
func NewQueryServerImpl(keeper Keeper) ammtypes.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ ammtypes.QueryServer = queryServer{}

// Params queries the module parameters
func (k queryServer) Params(goCtx context.Context, req *ammtypes.QueryParamsRequest) (*ammtypes.QueryParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &ammtypes.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

// Pool queries the pool identity, reserves, supply and derived figures
func (k queryServer) Pool(goCtx context.Context, req *ammtypes.QueryPoolRequest) (*ammtypes.QueryPoolResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	pool, err := k.GetPool(ctx)
	if err != nil {
		return nil, err
	}

	tvl, err := k.TVL(ctx)
	if err != nil {
		return nil, err
	}

	resp := &ammtypes.QueryPoolResponse{
		Pool:        pool,
		TotalShares: k.TotalSupply(ctx),
		Tvl:         tvl,
	}

	if spot, err := k.SpotPrice(ctx); err == nil {
		resp.SpotPriceAB = spot
	}

	return resp, nil
}

// Position queries a holder's liquidity position
func (k queryServer) Position(goCtx context.Context, req *ammtypes.QueryPositionRequest) (*ammtypes.QueryPositionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	owner, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, sdkerrors.Wrapf(ammtypes.ErrInvalidAddress, "invalid address: %s", err)
	}

	pos, err := k.GetPosition(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &ammtypes.QueryPositionResponse{Position: pos}, nil
}

// UnclaimedFees queries a holder's accrued-but-unclaimed fee value
func (k queryServer) UnclaimedFees(goCtx context.Context, req *ammtypes.QueryUnclaimedFeesRequest) (*ammtypes.QueryUnclaimedFeesResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	owner, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, sdkerrors.Wrapf(ammtypes.ErrInvalidAddress, "invalid address: %s", err)
	}

	unclaimed, err := k.Keeper.UnclaimedFees(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &ammtypes.QueryUnclaimedFeesResponse{
		Unclaimed: unclaimed,
		Tracker:   k.GetFeeTracker(ctx),
	}, nil
}

// Volume queries the cumulative trade volume counters
func (k queryServer) Volume(goCtx context.Context, req *ammtypes.QueryVolumeRequest) (*ammtypes.QueryVolumeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &ammtypes.QueryVolumeResponse{Volume: k.GetVolumeTracker(ctx)}, nil
}

// SimulateSwap prices a swap without executing it
func (k queryServer) SimulateSwap(goCtx context.Context, req *ammtypes.QuerySimulateSwapRequest) (*ammtypes.QuerySimulateSwapResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	amountOut, fee, err := k.Keeper.SimulateSwap(ctx, req.AssetIn, req.AmountIn)
	if err != nil {
		return nil, err
	}

	return &ammtypes.QuerySimulateSwapResponse{
		AmountOut: amountOut,
		FeeAmount: fee,
	}, nil
}
