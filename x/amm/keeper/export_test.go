package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SetBalanceForTesting writes a raw LP share balance without touching
// total supply, so invariant tests can stage broken state.
func (k Keeper) SetBalanceForTesting(ctx sdk.Context, owner sdk.AccAddress, amount math.Int) {
	k.setBalance(ctx, owner, amount)
}
