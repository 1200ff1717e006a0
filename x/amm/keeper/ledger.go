package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// LP share ledger. Balances and allowances live under per-holder store
// keys; sum(balances) == total supply at all times. The public surface
// calls the internal mutators, never the other way around.

// TotalSupply returns the outstanding LP share supply
func (k Keeper) TotalSupply(ctx sdk.Context) math.Int {
	return k.getInt(ctx, ammtypes.TotalSupplyKey)
}

// BalanceOf returns the LP share balance held by owner
func (k Keeper) BalanceOf(ctx sdk.Context, owner sdk.AccAddress) math.Int {
	return k.getInt(ctx, ammtypes.BalanceKey(owner))
}

// Allowance returns the amount spender may transfer on behalf of owner
func (k Keeper) Allowance(ctx sdk.Context, owner, spender sdk.AccAddress) math.Int {
	return k.getInt(ctx, ammtypes.AllowanceKey(owner, spender))
}

func (k Keeper) setBalance(ctx sdk.Context, owner sdk.AccAddress, amount math.Int) {
	if amount.IsZero() {
		k.getStore(ctx).Delete(ammtypes.BalanceKey(owner))
		return
	}
	k.setInt(ctx, ammtypes.BalanceKey(owner), amount)
}

func (k Keeper) setAllowance(ctx sdk.Context, owner, spender sdk.AccAddress, amount math.Int) {
	if amount.IsZero() {
		k.getStore(ctx).Delete(ammtypes.AllowanceKey(owner, spender))
		return
	}
	k.setInt(ctx, ammtypes.AllowanceKey(owner, spender), amount)
}

// mintShares credits freshly minted shares to recipient. Internal: only
// liquidity provisioning and genesis import call it.
func (k Keeper) mintShares(ctx sdk.Context, recipient sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return sdkerrors.Wrap(ammtypes.ErrInvalidAmount, "mint amount cannot be negative")
	}

	newBalance, err := SafeAdd(k.BalanceOf(ctx, recipient), amount)
	if err != nil {
		return err
	}
	newSupply, err := SafeAdd(k.TotalSupply(ctx), amount)
	if err != nil {
		return err
	}

	k.setBalance(ctx, recipient, newBalance)
	k.setInt(ctx, ammtypes.TotalSupplyKey, newSupply)
	return nil
}

// burnShares debits shares from owner and shrinks supply. Internal:
// callers authenticate and verify the balance first.
func (k Keeper) burnShares(ctx sdk.Context, owner sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return sdkerrors.Wrap(ammtypes.ErrInvalidAmount, "burn amount cannot be negative")
	}

	balance := k.BalanceOf(ctx, owner)
	if balance.LT(amount) {
		return sdkerrors.Wrapf(ammtypes.ErrInsufficientBalance, "burn %s exceeds balance %s", amount, balance)
	}

	supply := k.TotalSupply(ctx)
	if supply.LT(amount) {
		return sdkerrors.Wrapf(ammtypes.ErrInvalidPoolState, "burn %s exceeds total supply %s", amount, supply)
	}

	newBalance, err := SafeSub(balance, amount)
	if err != nil {
		return err
	}
	newSupply, err := SafeSub(supply, amount)
	if err != nil {
		return err
	}

	k.setBalance(ctx, owner, newBalance)
	k.setInt(ctx, ammtypes.TotalSupplyKey, newSupply)
	return nil
}

// TransferShares moves LP shares between holders
func (k Keeper) TransferShares(ctx sdk.Context, from, to sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return sdkerrors.Wrap(ammtypes.ErrInvalidAmount, "transfer amount cannot be negative")
	}

	fromBalance := k.BalanceOf(ctx, from)
	if fromBalance.LT(amount) {
		return sdkerrors.Wrapf(ammtypes.ErrInsufficientBalance, "transfer %s exceeds balance %s", amount, fromBalance)
	}

	newFrom, err := SafeSub(fromBalance, amount)
	if err != nil {
		return err
	}
	newTo, err := SafeAdd(k.BalanceOf(ctx, to), amount)
	if err != nil {
		return err
	}

	k.setBalance(ctx, from, newFrom)
	k.setBalance(ctx, to, newTo)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeShareTransfer,
			sdk.NewAttribute(ammtypes.AttributeKeyOwner, from.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyShares, amount.String()),
		),
	)

	return nil
}

// ApproveShares sets the allowance spender may move from owner
func (k Keeper) ApproveShares(ctx sdk.Context, owner, spender sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return sdkerrors.Wrap(ammtypes.ErrInvalidAmount, "allowance cannot be negative")
	}

	k.setAllowance(ctx, owner, spender, amount)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeShareApproval,
			sdk.NewAttribute(ammtypes.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(ammtypes.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyShares, amount.String()),
		),
	)

	return nil
}

// TransferSharesFrom moves LP shares out of owner on spender's
// authority, depleting the allowance first.
func (k Keeper) TransferSharesFrom(ctx sdk.Context, spender, owner, to sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return sdkerrors.Wrap(ammtypes.ErrInvalidAmount, "transfer amount cannot be negative")
	}

	if err := k.spendAllowance(ctx, owner, spender, amount); err != nil {
		return err
	}

	return k.TransferShares(ctx, owner, to, amount)
}

// BurnOwnShares destroys amount of the caller's LP shares
func (k Keeper) BurnOwnShares(ctx sdk.Context, owner sdk.AccAddress, amount math.Int) error {
	if err := k.burnShares(ctx, owner, amount); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeShareBurn,
			sdk.NewAttribute(ammtypes.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyShares, amount.String()),
		),
	)

	return nil
}

// BurnSharesFrom destroys amount of owner's shares on spender's
// authority, depleting the allowance first.
func (k Keeper) BurnSharesFrom(ctx sdk.Context, spender, owner sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return sdkerrors.Wrap(ammtypes.ErrInvalidAmount, "burn amount cannot be negative")
	}

	if err := k.spendAllowance(ctx, owner, spender, amount); err != nil {
		return err
	}

	return k.BurnOwnShares(ctx, owner, amount)
}

func (k Keeper) spendAllowance(ctx sdk.Context, owner, spender sdk.AccAddress, amount math.Int) error {
	allowance := k.Allowance(ctx, owner, spender)
	if allowance.LT(amount) {
		return sdkerrors.Wrapf(ammtypes.ErrInsufficientAllowance, "spend %s exceeds allowance %s", amount, allowance)
	}

	remaining, err := SafeSub(allowance, amount)
	if err != nil {
		return err
	}
	k.setAllowance(ctx, owner, spender, remaining)
	return nil
}

// IterateBalances walks every LP share balance until cb returns true
func (k Keeper) IterateBalances(ctx sdk.Context, cb func(owner sdk.AccAddress, shares math.Int) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ammtypes.BalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		owner := sdk.AccAddress(iterator.Key()[len(ammtypes.BalanceKeyPrefix):])

		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}

		if cb(owner, shares) {
			break
		}
	}
}
