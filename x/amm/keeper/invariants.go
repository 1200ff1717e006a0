package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// RegisterInvariants registers all amm module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(ammtypes.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(ammtypes.ModuleName, "non-negative-reserves", NonNegativeReservesInvariant(k))
	ir.RegisterRoute(ammtypes.ModuleName, "fee-accumulator", FeeAccumulatorInvariant(k))
}

// ShareSupplyInvariant checks that LP share balances sum to the total
// supply
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		supply := k.TotalSupply(ctx)

		sum := math.ZeroInt()
		negative := false
		k.IterateBalances(ctx, func(owner sdk.AccAddress, shares math.Int) bool {
			if shares.IsNegative() {
				negative = true
				return true
			}
			sum = sum.Add(shares)
			return false
		})

		if negative {
			return sdk.FormatInvariant(ammtypes.ModuleName, "share-supply",
				"negative LP share balance found"), true
		}

		if !sum.Equal(supply) {
			return sdk.FormatInvariant(ammtypes.ModuleName, "share-supply",
				"share balances sum to "+sum.String()+", total supply is "+supply.String()), true
		}

		return sdk.FormatInvariant(ammtypes.ModuleName, "share-supply",
			"share balances consistent with total supply"), false
	}
}

// NonNegativeReservesInvariant checks that reserves and the native
// balance never go negative
func NonNegativeReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		reserveA, reserveB := k.GetReserves(ctx)

		if reserveA.IsNegative() || reserveB.IsNegative() {
			return sdk.FormatInvariant(ammtypes.ModuleName, "non-negative-reserves",
				"negative reserve: a="+reserveA.String()+" b="+reserveB.String()), true
		}

		if native := k.NativeBalance(ctx); native.IsNegative() {
			return sdk.FormatInvariant(ammtypes.ModuleName, "non-negative-reserves",
				"negative native balance: "+native.String()), true
		}

		return sdk.FormatInvariant(ammtypes.ModuleName, "non-negative-reserves",
			"reserves and native balance non-negative"), false
	}
}

// FeeAccumulatorInvariant checks that the fee accumulator state never
// goes negative
func FeeAccumulatorInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		tracker := k.GetFeeTracker(ctx)

		if tracker.TotalFeesEarned.IsNegative() || tracker.FeesPerShare.IsNegative() {
			return sdk.FormatInvariant(ammtypes.ModuleName, "fee-accumulator",
				"negative fee accumulator: total="+tracker.TotalFeesEarned.String()+
					" per_share="+tracker.FeesPerShare.String()), true
		}

		return sdk.FormatInvariant(ammtypes.ModuleName, "fee-accumulator",
			"fee accumulator non-negative"), false
	}
}
