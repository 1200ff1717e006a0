package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

func TestShareTransfer(t *testing.T) {
	k, _, ctx := setupFundedPool(t, "utoka", "utokb", math.NewInt(10_000_000_000), math.NewInt(10_000_000_000))

	provider := testAddr("provider")
	recipient := testAddr("recipient")
	supply := k.TotalSupply(ctx)

	err := k.TransferShares(ctx, provider, recipient, math.NewInt(1_000_000))
	require.NoError(t, err)

	require.True(t, k.BalanceOf(ctx, recipient).Equal(math.NewInt(1_000_000)))
	require.True(t, k.BalanceOf(ctx, provider).Equal(supply.Sub(math.NewInt(1_000_000))))
	require.True(t, k.TotalSupply(ctx).Equal(supply), "transfers conserve supply")
}

func TestShareTransferValidation(t *testing.T) {
	k, _, ctx := setupFundedPool(t, "utoka", "utokb", math.NewInt(10_000_000_000), math.NewInt(10_000_000_000))

	provider := testAddr("provider")
	recipient := testAddr("recipient")

	err := k.TransferShares(ctx, provider, recipient, math.NewInt(-1))
	require.True(t, types.ErrInvalidAmount.Is(err))

	err = k.TransferShares(ctx, recipient, provider, math.NewInt(1))
	require.True(t, types.ErrInsufficientBalance.Is(err))
}

func TestShareAllowance(t *testing.T) {
	k, _, ctx := setupFundedPool(t, "utoka", "utokb", math.NewInt(10_000_000_000), math.NewInt(10_000_000_000))

	provider := testAddr("provider")
	spender := testAddr("spender")
	recipient := testAddr("recipient")

	require.NoError(t, k.ApproveShares(ctx, provider, spender, math.NewInt(500)))
	require.True(t, k.Allowance(ctx, provider, spender).Equal(math.NewInt(500)))

	require.NoError(t, k.TransferSharesFrom(ctx, spender, provider, recipient, math.NewInt(300)))
	require.True(t, k.BalanceOf(ctx, recipient).Equal(math.NewInt(300)))
	require.True(t, k.Allowance(ctx, provider, spender).Equal(math.NewInt(200)), "allowance depletes")

	err := k.TransferSharesFrom(ctx, spender, provider, recipient, math.NewInt(201))
	require.True(t, types.ErrInsufficientAllowance.Is(err))
}

func TestShareBurn(t *testing.T) {
	k, _, ctx := setupFundedPool(t, "utoka", "utokb", math.NewInt(10_000_000_000), math.NewInt(10_000_000_000))

	provider := testAddr("provider")
	supply := k.TotalSupply(ctx)

	require.NoError(t, k.BurnOwnShares(ctx, provider, math.NewInt(1_000)))
	require.True(t, k.TotalSupply(ctx).Equal(supply.Sub(math.NewInt(1_000))))
	require.True(t, k.BalanceOf(ctx, provider).Equal(supply.Sub(math.NewInt(1_000))))

	err := k.BurnOwnShares(ctx, testAddr("stranger"), math.NewInt(1))
	require.True(t, types.ErrInsufficientBalance.Is(err))
}

func TestShareBurnFrom(t *testing.T) {
	k, _, ctx := setupFundedPool(t, "utoka", "utokb", math.NewInt(10_000_000_000), math.NewInt(10_000_000_000))

	provider := testAddr("provider")
	spender := testAddr("spender")
	supply := k.TotalSupply(ctx)

	require.NoError(t, k.ApproveShares(ctx, provider, spender, math.NewInt(400)))
	require.NoError(t, k.BurnSharesFrom(ctx, spender, provider, math.NewInt(400)))

	require.True(t, k.TotalSupply(ctx).Equal(supply.Sub(math.NewInt(400))))
	require.True(t, k.Allowance(ctx, provider, spender).IsZero())

	err := k.BurnSharesFrom(ctx, spender, provider, math.NewInt(1))
	require.True(t, types.ErrInsufficientAllowance.Is(err))
}

func TestSupplyMatchesBalances(t *testing.T) {
	k, _, ctx := setupFundedPool(t, "utoka", "utokb", math.NewInt(10_000_000_000), math.NewInt(10_000_000_000))

	provider := testAddr("provider")
	recipient := testAddr("recipient")
	require.NoError(t, k.TransferShares(ctx, provider, recipient, math.NewInt(123_456)))

	sum := math.ZeroInt()
	k.IterateBalances(ctx, func(owner sdk.AccAddress, shares math.Int) bool {
		sum = sum.Add(shares)
		return false
	})

	require.True(t, sum.Equal(k.TotalSupply(ctx)))
}
