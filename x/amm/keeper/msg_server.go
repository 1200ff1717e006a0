package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper
func NewMsgServerImpl(keeper Keeper) ammtypes.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ ammtypes.MsgServer = msgServer{}

// AddLiquidity handles MsgAddLiquidity
func (k msgServer) AddLiquidity(goCtx context.Context, msg *ammtypes.MsgAddLiquidity) (*ammtypes.MsgAddLiquidityResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, sdkerrors.Wrapf(ammtypes.ErrInvalidAddress, "invalid provider address: %s", err)
	}

	shares, err := k.Keeper.AddLiquidity(ctx, provider, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, err
	}

	return &ammtypes.MsgAddLiquidityResponse{Shares: shares}, nil
}

// RemoveLiquidity handles MsgRemoveLiquidity
func (k msgServer) RemoveLiquidity(goCtx context.Context, msg *ammtypes.MsgRemoveLiquidity) (*ammtypes.MsgRemoveLiquidityResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, sdkerrors.Wrapf(ammtypes.ErrInvalidAddress, "invalid provider address: %s", err)
	}

	amountA, amountB, err := k.Keeper.RemoveLiquidity(ctx, provider, msg.Shares)
	if err != nil {
		return nil, err
	}

	return &ammtypes.MsgRemoveLiquidityResponse{AmountA: amountA, AmountB: amountB}, nil
}

// Swap handles MsgSwap
func (k msgServer) Swap(goCtx context.Context, msg *ammtypes.MsgSwap) (*ammtypes.MsgSwapResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, sdkerrors.Wrapf(ammtypes.ErrInvalidAddress, "invalid trader address: %s", err)
	}

	amountOut, err := k.Keeper.Swap(ctx, trader, msg.AssetIn, msg.AmountIn)
	if err != nil {
		return nil, err
	}

	return &ammtypes.MsgSwapResponse{AmountOut: amountOut}, nil
}

// ClaimFees handles MsgClaimFees
func (k msgServer) ClaimFees(goCtx context.Context, msg *ammtypes.MsgClaimFees) (*ammtypes.MsgClaimFeesResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	claimer, err := sdk.AccAddressFromBech32(msg.Claimer)
	if err != nil {
		return nil, sdkerrors.Wrapf(ammtypes.ErrInvalidAddress, "invalid claimer address: %s", err)
	}

	claimed, err := k.Keeper.ClaimFees(ctx, claimer)
	if err != nil {
		return nil, err
	}

	return &ammtypes.MsgClaimFeesResponse{FeesClaimed: claimed}, nil
}
