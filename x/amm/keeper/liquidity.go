package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// AddLiquidity deposits amountA and amountB into the pool and mints LP
// shares to provider. Deposits into a non-empty pool must match the
// current reserve ratio within one unit or ten parts per million.
// Shares minted are the exact floor of sqrt(amountA * amountB), bumped
// up to the minimum-liquidity floor for tiny first deposits.
func (k Keeper) AddLiquidity(ctx sdk.Context, provider sdk.AccAddress, amountA, amountB math.Int) (math.Int, error) {
	if !k.IsInitialized(ctx) {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrNotInitialized, "pool identity not set")
	}

	if amountA.IsNil() || amountA.IsNegative() {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrInvalidAmount, "amount A cannot be negative")
	}
	if amountB.IsNil() || amountB.IsNegative() {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrInvalidAmount, "amount B cannot be negative")
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return math.Int{}, err
	}

	if pool.ReserveA.IsPositive() || pool.ReserveB.IsPositive() {
		if err := checkProportional(amountA, amountB, pool.ReserveA, pool.ReserveB); err != nil {
			return math.Int{}, err
		}
	}

	product, err := SafeMul(amountA, amountB)
	if err != nil {
		return math.Int{}, err
	}

	shares := IntegerSqrt(product)
	if shares.IsZero() {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrInsufficientLiquidity, "deposit too small to mint shares")
	}

	params := k.GetParams(ctx)
	if shares.LT(params.MinimumLiquidity) {
		shares = params.MinimumLiquidity
	}

	if err := k.transferIn(ctx, pool.AssetA, provider, amountA); err != nil {
		return math.Int{}, err
	}
	if err := k.transferIn(ctx, pool.AssetB, provider, amountB); err != nil {
		return math.Int{}, err
	}

	if err := k.mintShares(ctx, provider, shares); err != nil {
		return math.Int{}, err
	}

	newReserveA, err := SafeAdd(pool.ReserveA, amountA)
	if err != nil {
		return math.Int{}, err
	}
	newReserveB, err := SafeAdd(pool.ReserveB, amountB)
	if err != nil {
		return math.Int{}, err
	}
	k.setReserves(ctx, newReserveA, newReserveB)

	k.Logger(ctx).Info("liquidity added",
		"provider", provider.String(),
		"amount_a", amountA.String(),
		"amount_b", amountB.String(),
		"shares", shares.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeAddLiquidity,
			sdk.NewAttribute(ammtypes.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyShares, shares.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyTotalSupply, k.TotalSupply(ctx).String()),
		),
	)

	k.metrics.IncLiquidityAdds()
	return shares, nil
}

// checkProportional enforces amountA*reserveB == amountB*reserveA within
// one absolute unit or ten parts per million of the larger cross
// product.
func checkProportional(amountA, amountB, reserveA, reserveB math.Int) error {
	crossA, err := SafeMul(amountA, reserveB)
	if err != nil {
		return err
	}
	crossB, err := SafeMul(amountB, reserveA)
	if err != nil {
		return err
	}

	diff := crossA.Sub(crossB).Abs()
	if diff.LTE(math.OneInt()) {
		return nil
	}

	larger := crossA
	if crossB.GT(larger) {
		larger = crossB
	}
	if larger.IsZero() {
		return sdkerrors.Wrap(ammtypes.ErrNonProportional, "deposit ratio does not match reserves")
	}

	ppm, err := SafeMulDiv(diff, math.NewInt(1_000_000), larger)
	if err != nil {
		return err
	}
	if ppm.GT(math.NewInt(ammtypes.ProportionalityTolerancePPM)) {
		return sdkerrors.Wrapf(ammtypes.ErrNonProportional, "deposit deviates %s ppm from reserve ratio", ppm)
	}

	return nil
}

// RemoveLiquidity burns shares of provider's LP stake and pays out the
// pro-rata floor of each reserve. Shares are burned before any funds
// leave custody.
func (k Keeper) RemoveLiquidity(ctx sdk.Context, provider sdk.AccAddress, shares math.Int) (math.Int, math.Int, error) {
	if !k.IsInitialized(ctx) {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(ammtypes.ErrNotInitialized, "pool identity not set")
	}

	if shares.IsNil() || !shares.IsPositive() {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(ammtypes.ErrInvalidAmount, "shares must be positive")
	}

	supply := k.TotalSupply(ctx)
	if supply.IsZero() {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(ammtypes.ErrInsufficientLiquidity, "no shares outstanding")
	}

	balance := k.BalanceOf(ctx, provider)
	if shares.GT(balance) {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(ammtypes.ErrInsufficientShares, "redeem %s exceeds balance %s", shares, balance)
	}
	if shares.GT(supply) {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(ammtypes.ErrInsufficientShares, "redeem %s exceeds supply %s", shares, supply)
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if pool.ReserveA.IsZero() && pool.ReserveB.IsZero() {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(ammtypes.ErrInsufficientReserves, "pool reserves are empty")
	}

	amountA, err := SafeMulDiv(pool.ReserveA, shares, supply)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountB, err := SafeMulDiv(pool.ReserveB, shares, supply)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if amountA.GT(pool.ReserveA) || amountB.GT(pool.ReserveB) {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(ammtypes.ErrInsufficientReserves, "payout exceeds reserves")
	}

	// Burn before paying out
	if err := k.burnShares(ctx, provider, shares); err != nil {
		return math.Int{}, math.Int{}, err
	}

	if err := k.transferOut(ctx, pool.AssetA, provider, amountA); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.transferOut(ctx, pool.AssetB, provider, amountB); err != nil {
		return math.Int{}, math.Int{}, err
	}

	newReserveA, err := SafeSub(pool.ReserveA, amountA)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	newReserveB, err := SafeSub(pool.ReserveB, amountB)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	k.setReserves(ctx, newReserveA, newReserveB)

	k.Logger(ctx).Info("liquidity removed",
		"provider", provider.String(),
		"shares", shares.String(),
		"amount_a", amountA.String(),
		"amount_b", amountB.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeRemoveLiquidity,
			sdk.NewAttribute(ammtypes.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyShares, shares.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountB, amountB.String()),
		),
	)

	k.metrics.IncLiquidityRemoves()
	return amountA, amountB, nil
}
