package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// resolveSwapSides maps an input asset identifier onto the pool's two
// sides. The native alias is accepted for whichever side is native.
func resolveSwapSides(pool ammtypes.PoolState, assetIn string) (in, out ammtypes.AssetRef, inIsA bool, err error) {
	switch {
	case assetIn == pool.AssetA.ID, pool.AssetA.Native && ammtypes.IsNativeAsset(assetIn):
		return pool.AssetA, pool.AssetB, true, nil
	case assetIn == pool.AssetB.ID, pool.AssetB.Native && ammtypes.IsNativeAsset(assetIn):
		return pool.AssetB, pool.AssetA, false, nil
	default:
		return ammtypes.AssetRef{}, ammtypes.AssetRef{}, false,
			sdkerrors.Wrapf(ammtypes.ErrInvalidAsset, "%s is not a pool asset", assetIn)
	}
}

// Swap trades amountIn of the input asset for the other pool asset at
// the constant-product price, net of the swap fee. Reserves and
// accounting are persisted before the output leaves custody.
func (k Keeper) Swap(ctx sdk.Context, trader sdk.AccAddress, assetIn string, amountIn math.Int) (math.Int, error) {
	if !k.IsInitialized(ctx) {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrNotInitialized, "pool identity not set")
	}

	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrInvalidAmount, "amount in must be positive")
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return math.Int{}, err
	}

	refIn, refOut, inIsA, err := resolveSwapSides(pool, assetIn)
	if err != nil {
		return math.Int{}, err
	}

	reserveIn, reserveOut := pool.ReserveA, pool.ReserveB
	if !inIsA {
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	}

	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrInsufficientReserves, "pool has no liquidity")
	}

	amountOut, fee, err := k.computeSwapOutput(ctx, reserveIn, reserveOut, amountIn)
	if err != nil {
		return math.Int{}, err
	}

	if err := k.transferIn(ctx, refIn, trader, amountIn); err != nil {
		return math.Int{}, err
	}

	if err := k.accrueSwapFee(ctx, fee); err != nil {
		return math.Int{}, err
	}
	if err := k.recordVolume(ctx, amountIn); err != nil {
		return math.Int{}, err
	}

	// The gross input stays in the pool; the fee accrues to reserves and
	// is what LP shares appreciate by.
	newReserveIn, err := SafeAdd(reserveIn, amountIn)
	if err != nil {
		return math.Int{}, err
	}
	newReserveOut, err := SafeSub(reserveOut, amountOut)
	if err != nil {
		return math.Int{}, err
	}

	if err := checkConstantProduct(reserveIn, reserveOut, newReserveIn, newReserveOut); err != nil {
		return math.Int{}, err
	}

	if inIsA {
		k.setReserves(ctx, newReserveIn, newReserveOut)
	} else {
		k.setReserves(ctx, newReserveOut, newReserveIn)
	}

	// State is settled; only now does the output leave custody
	if err := k.transferOut(ctx, refOut, trader, amountOut); err != nil {
		return math.Int{}, err
	}

	k.Logger(ctx).Info("swap executed",
		"trader", trader.String(),
		"asset_in", refIn.ID,
		"amount_in", amountIn.String(),
		"amount_out", amountOut.String(),
		"fee", fee.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeSwap,
			sdk.NewAttribute(ammtypes.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAssetIn, refIn.ID),
			sdk.NewAttribute(ammtypes.AttributeKeyAssetOut, refOut.ID),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyFeeAmount, fee.String()),
		),
	)

	k.metrics.IncSwaps()
	return amountOut, nil
}

// computeSwapOutput prices amountIn against the reserves: the fee is
// deducted from the input, and the net amount moves along the constant
// product curve.
func (k Keeper) computeSwapOutput(ctx sdk.Context, reserveIn, reserveOut, amountIn math.Int) (amountOut, fee math.Int, err error) {
	params := k.GetParams(ctx)
	bps := math.NewInt(ammtypes.BpsDenominator)

	amountInWithFee, err := SafeMulDiv(amountIn, bps.SubRaw(params.FeeBps), bps)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	fee, err = SafeSub(amountIn, amountInWithFee)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	denominator, err := SafeAdd(reserveIn, amountInWithFee)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	amountOut, err = SafeMulDiv(reserveOut, amountInWithFee, denominator)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if !amountOut.IsPositive() {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(ammtypes.ErrInsufficientOutput, "swap output rounds to zero")
	}
	if amountOut.GT(reserveOut) {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(ammtypes.ErrInsufficientReserves, "output %s exceeds reserve %s", amountOut, reserveOut)
	}

	return amountOut, fee, nil
}

// checkConstantProduct verifies k never shrinks across a swap
func checkConstantProduct(reserveIn, reserveOut, newReserveIn, newReserveOut math.Int) error {
	oldK, err := SafeMul(reserveIn, reserveOut)
	if err != nil {
		return err
	}
	newK, err := SafeMul(newReserveIn, newReserveOut)
	if err != nil {
		return err
	}

	if newK.LT(oldK) {
		return sdkerrors.Wrapf(ammtypes.ErrInvalidPoolState, "constant product shrank from %s to %s", oldK, newK)
	}
	return nil
}

// SimulateSwap prices a swap against current reserves without moving
// funds or mutating state.
func (k Keeper) SimulateSwap(ctx sdk.Context, assetIn string, amountIn math.Int) (amountOut, fee math.Int, err error) {
	if !k.IsInitialized(ctx) {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(ammtypes.ErrNotInitialized, "pool identity not set")
	}

	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(ammtypes.ErrInvalidAmount, "amount in must be positive")
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	_, _, inIsA, err := resolveSwapSides(pool, assetIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	reserveIn, reserveOut := pool.ReserveA, pool.ReserveB
	if !inIsA {
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	}

	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(ammtypes.ErrInsufficientReserves, "pool has no liquidity")
	}

	return k.computeSwapOutput(ctx, reserveIn, reserveOut, amountIn)
}

// SpotPrice returns the marginal price of asset A in units of asset B,
// scaled by 10^18. Zero reserves yield an error.
func (k Keeper) SpotPrice(ctx sdk.Context) (math.Int, error) {
	reserveA, reserveB := k.GetReserves(ctx)
	if !reserveA.IsPositive() || !reserveB.IsPositive() {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrInsufficientReserves, "pool has no liquidity")
	}
	return SafeMulDiv(reserveB, feePrecision, reserveA)
}
