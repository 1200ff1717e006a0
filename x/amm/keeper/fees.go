package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// Fee accrual engine. Swap fees feed a global fees-per-share
// accumulator scaled by 10^18; claims settle against each holder's
// last-observed snapshot. The accumulator only ever grows.

// feePrecision is the fees-per-share fixed-point scale
var feePrecision = math.NewIntWithDecimal(1, 18)

// GetFeeTracker returns the global fee-accrual state
func (k Keeper) GetFeeTracker(ctx sdk.Context) ammtypes.FeeTracker {
	return ammtypes.FeeTracker{
		TotalFeesEarned: k.getInt(ctx, ammtypes.TotalFeesEarnedKey),
		FeesPerShare:    k.getInt(ctx, ammtypes.FeesPerShareKey),
		LastUpdate:      k.getInt64(ctx, ammtypes.FeeLastUpdateKey),
	}
}

// accrueSwapFee folds a collected swap fee into the accumulator. With no
// shares outstanding the fee is still counted but cannot be attributed,
// so the per-share accumulator is left untouched.
func (k Keeper) accrueSwapFee(ctx sdk.Context, fee math.Int) error {
	if !fee.IsPositive() {
		return nil
	}

	totalFees, err := SafeAdd(k.getInt(ctx, ammtypes.TotalFeesEarnedKey), fee)
	if err != nil {
		return err
	}
	k.setInt(ctx, ammtypes.TotalFeesEarnedKey, totalFees)

	supply := k.TotalSupply(ctx)
	if supply.IsPositive() {
		increment, err := SafeMulDiv(fee, feePrecision, supply)
		if err != nil {
			return err
		}
		fps, err := SafeAdd(k.getInt(ctx, ammtypes.FeesPerShareKey), increment)
		if err != nil {
			return err
		}
		k.setInt(ctx, ammtypes.FeesPerShareKey, fps)
	}

	k.setInt64(ctx, ammtypes.FeeLastUpdateKey, ctx.BlockHeight())
	k.metrics.AddFees(fee)
	return nil
}

// LastObservedFees returns the fees-per-share snapshot taken at owner's
// last claim
func (k Keeper) LastObservedFees(ctx sdk.Context, owner sdk.AccAddress) math.Int {
	return k.getInt(ctx, ammtypes.LastObservedFeesKey(owner))
}

// UnclaimedFees returns the fee value accrued to owner since their last
// claim: balance * (fps - last_observed) / 10^18. Zero balances and
// stale snapshots both settle to zero.
func (k Keeper) UnclaimedFees(ctx sdk.Context, owner sdk.AccAddress) (math.Int, error) {
	balance := k.BalanceOf(ctx, owner)
	if balance.IsZero() {
		return math.ZeroInt(), nil
	}

	fps := k.getInt(ctx, ammtypes.FeesPerShareKey)
	delta, err := SafeSub(fps, k.LastObservedFees(ctx, owner))
	if err != nil {
		return math.Int{}, err
	}
	if !delta.IsPositive() {
		return math.ZeroInt(), nil
	}

	return SafeMulDiv(balance, delta, feePrecision)
}

// ClaimFees pays out claimer's accrued fee share from the reserves and
// snapshots their accumulator position. A zero entitlement is a no-op
// returning zero. The snapshot is written before any funds move.
func (k Keeper) ClaimFees(ctx sdk.Context, claimer sdk.AccAddress) (math.Int, error) {
	if !k.IsInitialized(ctx) {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrNotInitialized, "pool identity not set")
	}

	unclaimed, err := k.UnclaimedFees(ctx, claimer)
	if err != nil {
		return math.Int{}, err
	}
	if !unclaimed.IsPositive() {
		return math.ZeroInt(), nil
	}

	supply := k.TotalSupply(ctx)
	balance := k.BalanceOf(ctx, claimer)

	shareBps, err := SafeMulDiv(balance, math.NewInt(ammtypes.BpsDenominator), supply)
	if err != nil {
		return math.Int{}, err
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return math.Int{}, err
	}

	payoutA, err := SafeMulDiv(pool.ReserveA, shareBps, math.NewInt(ammtypes.BpsDenominator))
	if err != nil {
		return math.Int{}, err
	}
	payoutB, err := SafeMulDiv(pool.ReserveB, shareBps, math.NewInt(ammtypes.BpsDenominator))
	if err != nil {
		return math.Int{}, err
	}

	// Settle the accumulator position before paying out
	k.setInt(ctx, ammtypes.LastObservedFeesKey(claimer), k.getInt(ctx, ammtypes.FeesPerShareKey))

	if err := k.transferOut(ctx, pool.AssetA, claimer, payoutA); err != nil {
		return math.Int{}, err
	}
	if err := k.transferOut(ctx, pool.AssetB, claimer, payoutB); err != nil {
		return math.Int{}, err
	}

	paid, err := SafeAdd(payoutA, payoutB)
	if err != nil {
		return math.Int{}, err
	}

	k.Logger(ctx).Info("fees claimed",
		"claimer", claimer.String(),
		"payout_a", payoutA.String(),
		"payout_b", payoutB.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeClaimFees,
			sdk.NewAttribute(ammtypes.AttributeKeyClaimer, claimer.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountA, payoutA.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountB, payoutB.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyFeesClaimed, paid.String()),
		),
	)

	k.metrics.IncClaims()
	return paid, nil
}
