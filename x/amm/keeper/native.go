package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// Native-asset dual path. When one pool side is the chain's native
// asset, custody for that side is tracked in an internal counter rather
// than through the fungible-asset capability. The counter mirrors what
// the host ledger has already moved into the module account.

// NativeBalance returns the internal native-asset counter
func (k Keeper) NativeBalance(ctx sdk.Context) math.Int {
	return k.getInt(ctx, ammtypes.NativeBalanceKey)
}

// creditNative records native funds received into pool custody
func (k Keeper) creditNative(ctx sdk.Context, amount math.Int) error {
	newBalance, err := SafeAdd(k.NativeBalance(ctx), amount)
	if err != nil {
		return err
	}
	k.setInt(ctx, ammtypes.NativeBalanceKey, newBalance)
	return nil
}

// debitNative records native funds released from pool custody. Fails on
// shortfall rather than going negative.
func (k Keeper) debitNative(ctx sdk.Context, amount math.Int) error {
	balance := k.NativeBalance(ctx)
	if balance.LT(amount) {
		return sdkerrors.Wrapf(ammtypes.ErrInsufficientBalance, "native debit %s exceeds balance %s", amount, balance)
	}

	newBalance, err := SafeSub(balance, amount)
	if err != nil {
		return err
	}
	k.setInt(ctx, ammtypes.NativeBalanceKey, newBalance)
	return nil
}

// transferIn pulls amount of asset from the depositor into pool custody,
// routing per side between the fungible-asset capability and the native
// counter.
func (k Keeper) transferIn(ctx sdk.Context, asset ammtypes.AssetRef, from sdk.AccAddress, amount math.Int) error {
	if asset.Native {
		return k.creditNative(ctx, amount)
	}
	return k.assetKeeper.Transfer(ctx, asset.ID, from, k.moduleAddr, amount)
}

// transferOut pushes amount of asset from pool custody to the recipient.
// Zero amounts are skipped.
func (k Keeper) transferOut(ctx sdk.Context, asset ammtypes.AssetRef, to sdk.AccAddress, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}

	if asset.Native {
		return k.debitNative(ctx, amount)
	}
	return k.assetKeeper.Transfer(ctx, asset.ID, k.moduleAddr, to, amount)
}
