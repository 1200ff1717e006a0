package keeper

import (
	"strings"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// InitializePool binds the pool to its two assets and LP share metadata.
// Single-shot: the identity is immutable once written. Reserves start at
// zero; the first AddLiquidity sets the price.
func (k Keeper) InitializePool(ctx sdk.Context, assetA, assetB, lpName, lpSymbol string) error {
	if k.IsInitialized(ctx) {
		return sdkerrors.Wrap(ammtypes.ErrAlreadyInitialized, "pool identity already set")
	}

	if strings.TrimSpace(assetA) == "" || strings.TrimSpace(assetB) == "" {
		return sdkerrors.Wrap(ammtypes.ErrInvalidAsset, "asset identifiers cannot be empty")
	}

	if assetA == assetB {
		return sdkerrors.Wrap(ammtypes.ErrInvalidAsset, "pool assets must be different")
	}

	refA := ammtypes.NewAssetRef(assetA)
	refB := ammtypes.NewAssetRef(assetB)

	// Two spellings of the native asset would alias both sides
	if refA.Native && refB.Native {
		return sdkerrors.Wrap(ammtypes.ErrInvalidAsset, "both assets resolve to the native asset")
	}

	nativeIdx := ammtypes.NativeIndexNone
	switch {
	case refA.Native:
		nativeIdx = ammtypes.NativeIndexAssetA
	case refB.Native:
		nativeIdx = ammtypes.NativeIndexAssetB
	}

	store := k.getStore(ctx)
	store.Set(ammtypes.PoolInitializedKey, []byte{1})
	k.setString(ctx, ammtypes.AssetAKey, refA.ID)
	k.setString(ctx, ammtypes.AssetBKey, refB.ID)
	k.setNativeIndex(ctx, nativeIdx)
	k.setString(ctx, ammtypes.LPNameKey, lpName)
	k.setString(ctx, ammtypes.LPSymbolKey, lpSymbol)
	store.Set(ammtypes.LPDecimalsKey, []byte{ammtypes.LPDecimals})
	k.setInt(ctx, ammtypes.ReserveAKey, math.ZeroInt())
	k.setInt(ctx, ammtypes.ReserveBKey, math.ZeroInt())

	k.Logger(ctx).Info("pool initialized",
		"asset_a", refA.ID,
		"asset_b", refB.ID,
		"lp_symbol", lpSymbol,
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeInitializePool,
			sdk.NewAttribute(ammtypes.AttributeKeyAssetA, refA.ID),
			sdk.NewAttribute(ammtypes.AttributeKeyAssetB, refB.ID),
		),
	)

	return nil
}

// IsInitialized reports whether the pool identity has been written
func (k Keeper) IsInitialized(ctx sdk.Context) bool {
	return k.getStore(ctx).Has(ammtypes.PoolInitializedKey)
}

// GetPool returns the pool identity and current reserves
func (k Keeper) GetPool(ctx sdk.Context) (ammtypes.PoolState, error) {
	if !k.IsInitialized(ctx) {
		return ammtypes.PoolState{}, sdkerrors.Wrap(ammtypes.ErrNotInitialized, "pool identity not set")
	}

	return ammtypes.PoolState{
		AssetA:   ammtypes.NewAssetRef(k.getString(ctx, ammtypes.AssetAKey)),
		AssetB:   ammtypes.NewAssetRef(k.getString(ctx, ammtypes.AssetBKey)),
		ReserveA: k.getInt(ctx, ammtypes.ReserveAKey),
		ReserveB: k.getInt(ctx, ammtypes.ReserveBKey),
	}, nil
}

// GetReserves returns the current reserve pair
func (k Keeper) GetReserves(ctx sdk.Context) (math.Int, math.Int) {
	return k.getInt(ctx, ammtypes.ReserveAKey), k.getInt(ctx, ammtypes.ReserveBKey)
}

func (k Keeper) setReserves(ctx sdk.Context, reserveA, reserveB math.Int) {
	k.setInt(ctx, ammtypes.ReserveAKey, reserveA)
	k.setInt(ctx, ammtypes.ReserveBKey, reserveB)
	k.metrics.SetReserves(reserveA, reserveB)
}

// NativeAssetIndex returns which pool side, if any, holds the native
// asset. Resolved once at initialization and read back as a single byte.
func (k Keeper) NativeAssetIndex(ctx sdk.Context) ammtypes.NativeIndex {
	bz := k.getStore(ctx).Get(ammtypes.NativeIndexKey)
	if len(bz) == 0 || bz[0] == 0xFF {
		return ammtypes.NativeIndexNone
	}
	return ammtypes.NativeIndex(bz[0])
}

func (k Keeper) setNativeIndex(ctx sdk.Context, idx ammtypes.NativeIndex) {
	b := byte(0xFF)
	if idx != ammtypes.NativeIndexNone {
		b = byte(idx)
	}
	k.getStore(ctx).Set(ammtypes.NativeIndexKey, []byte{b})
}

// IsNativePool reports whether either pool side is the native asset
func (k Keeper) IsNativePool(ctx sdk.Context) bool {
	return k.NativeAssetIndex(ctx) != ammtypes.NativeIndexNone
}

// TVL returns the sum of both reserves, a unit-naive total used for
// dashboards and relative comparisons only.
func (k Keeper) TVL(ctx sdk.Context) (math.Int, error) {
	reserveA, reserveB := k.GetReserves(ctx)
	return SafeAdd(reserveA, reserveB)
}

// GetPosition returns a holder's LP share balance with the pro-rata
// amounts of each reserve and their basis-point share of supply. An
// empty supply yields a zero position.
func (k Keeper) GetPosition(ctx sdk.Context, owner sdk.AccAddress) (ammtypes.LiquidityPosition, error) {
	shares := k.BalanceOf(ctx, owner)
	supply := k.TotalSupply(ctx)

	pos := ammtypes.LiquidityPosition{
		Shares:   shares,
		AmountA:  math.ZeroInt(),
		AmountB:  math.ZeroInt(),
		ShareBps: math.ZeroInt(),
	}

	if shares.IsZero() || supply.IsZero() {
		return pos, nil
	}

	reserveA, reserveB := k.GetReserves(ctx)

	amountA, err := SafeMulDiv(reserveA, shares, supply)
	if err != nil {
		return ammtypes.LiquidityPosition{}, err
	}
	amountB, err := SafeMulDiv(reserveB, shares, supply)
	if err != nil {
		return ammtypes.LiquidityPosition{}, err
	}
	shareBps, err := SafeMulDiv(shares, math.NewInt(ammtypes.BpsDenominator), supply)
	if err != nil {
		return ammtypes.LiquidityPosition{}, err
	}

	pos.AmountA = amountA
	pos.AmountB = amountB
	pos.ShareBps = shareBps
	return pos, nil
}

// LPName returns the LP share token name
func (k Keeper) LPName(ctx sdk.Context) string {
	return k.getString(ctx, ammtypes.LPNameKey)
}

// LPSymbol returns the LP share token symbol
func (k Keeper) LPSymbol(ctx sdk.Context) string {
	return k.getString(ctx, ammtypes.LPSymbolKey)
}

// LPDecimals returns the LP share token decimal precision
func (k Keeper) LPDecimals(ctx sdk.Context) uint8 {
	bz := k.getStore(ctx).Get(ammtypes.LPDecimalsKey)
	if len(bz) == 0 {
		return ammtypes.LPDecimals
	}
	return bz[0]
}
