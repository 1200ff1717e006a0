package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/cosmosdex-labs/cosmodex-contracts/x/amm/keeper"
	keepertest "github.com/cosmosdex-labs/cosmodex-contracts/testutil/keeper"
)

// setupTwoProviderPool seeds a 10e9/10e9 pool where the first provider
// holds 90% of the shares and the second holds 10%
func setupTwoProviderPool(t testing.TB) (*keeper.Keeper, *keepertest.MockAssetKeeper, sdk.Context) {
	k, assets, ctx := setupFundedPool(t, "utoka", "utokb", math.NewInt(9_000_000_000), math.NewInt(9_000_000_000))

	second := testAddr("second")
	assets.FundAccount("utoka", second, math.NewInt(1_000_000_000))
	assets.FundAccount("utokb", second, math.NewInt(1_000_000_000))

	shares, err := k.AddLiquidity(ctx, second, math.NewInt(1_000_000_000), math.NewInt(1_000_000_000))
	require.NoError(t, err)
	require.True(t, shares.Equal(math.NewInt(1_000_000_000)))

	return k, assets, ctx
}

func TestFeeAccrualOnSwap(t *testing.T) {
	k, assets, ctx := setupTwoProviderPool(t)

	trader := testAddr("trader")
	assets.FundAccount("utoka", trader, math.NewInt(1_000_000_000))

	_, err := k.Swap(ctx, trader, "utoka", math.NewInt(1_000_000_000))
	require.NoError(t, err)

	tracker := k.GetFeeTracker(ctx)
	require.True(t, tracker.TotalFeesEarned.Equal(math.NewInt(3_000_000)), "fee is 30 bps of gross input")
	// 3_000_000 * 10^18 / 10_000_000_000 shares
	require.True(t, tracker.FeesPerShare.Equal(math.NewIntWithDecimal(3, 14)))
	require.Equal(t, ctx.BlockHeight(), tracker.LastUpdate)
}

func TestUnclaimedFeesProRata(t *testing.T) {
	k, assets, ctx := setupTwoProviderPool(t)

	trader := testAddr("trader")
	assets.FundAccount("utoka", trader, math.NewInt(1_000_000_000))

	_, err := k.Swap(ctx, trader, "utoka", math.NewInt(1_000_000_000))
	require.NoError(t, err)

	first, err := k.UnclaimedFees(ctx, testAddr("provider"))
	require.NoError(t, err)
	second, err := k.UnclaimedFees(ctx, testAddr("second"))
	require.NoError(t, err)

	require.True(t, first.Equal(math.NewInt(2_700_000)))
	require.True(t, second.Equal(math.NewInt(300_000)))
	require.True(t, first.Equal(second.MulRaw(9)), "unclaimed fees split by share weight")

	// No stake, no fees
	none, err := k.UnclaimedFees(ctx, testAddr("stranger"))
	require.NoError(t, err)
	require.True(t, none.IsZero())
}

func TestClaimFeesPayout(t *testing.T) {
	k, assets, ctx := setupTwoProviderPool(t)

	trader := testAddr("trader")
	assets.FundAccount("utoka", trader, math.NewInt(1_000_000_000))

	_, err := k.Swap(ctx, trader, "utoka", math.NewInt(1_000_000_000))
	require.NoError(t, err)

	// Reserves after the swap: 11e9 in, 10e9 - 906_610_893 out
	reserveA, reserveB := k.GetReserves(ctx)
	require.True(t, reserveA.Equal(math.NewInt(11_000_000_000)))
	require.True(t, reserveB.Equal(math.NewInt(9_093_389_107)))

	second := testAddr("second")

	// 10% share -> 1000 bps of each reserve
	paid, err := k.ClaimFees(ctx, second)
	require.NoError(t, err)
	require.True(t, paid.Equal(math.NewInt(1_100_000_000+909_338_910)), "got %s", paid)

	require.True(t, assets.Balance(ctx, "utoka", second).Equal(math.NewInt(1_100_000_000)))
	require.True(t, assets.Balance(ctx, "utokb", second).Equal(math.NewInt(909_338_910)))

	// Payouts do not touch the recorded reserves
	afterA, afterB := k.GetReserves(ctx)
	require.True(t, afterA.Equal(reserveA))
	require.True(t, afterB.Equal(reserveB))
}

func TestClaimFeesIdempotent(t *testing.T) {
	k, assets, ctx := setupTwoProviderPool(t)

	trader := testAddr("trader")
	assets.FundAccount("utoka", trader, math.NewInt(1_000_000_000))

	_, err := k.Swap(ctx, trader, "utoka", math.NewInt(1_000_000_000))
	require.NoError(t, err)

	second := testAddr("second")

	paid, err := k.ClaimFees(ctx, second)
	require.NoError(t, err)
	require.True(t, paid.IsPositive())

	// The snapshot moved with the claim; nothing further is owed
	again, err := k.ClaimFees(ctx, second)
	require.NoError(t, err)
	require.True(t, again.IsZero())

	unclaimed, err := k.UnclaimedFees(ctx, second)
	require.NoError(t, err)
	require.True(t, unclaimed.IsZero())
}

func TestClaimFeesNoStake(t *testing.T) {
	k, _, ctx := setupTwoProviderPool(t)

	paid, err := k.ClaimFees(ctx, testAddr("stranger"))
	require.NoError(t, err)
	require.True(t, paid.IsZero())
}

func TestFeeAccrualAcrossMultipleSwaps(t *testing.T) {
	k, assets, ctx := setupTwoProviderPool(t)

	trader := testAddr("trader")
	assets.FundAccount("utoka", trader, math.NewInt(2_000_000_000))

	_, err := k.Swap(ctx, trader, "utoka", math.NewInt(1_000_000_000))
	require.NoError(t, err)
	before := k.GetFeeTracker(ctx).FeesPerShare

	_, err = k.Swap(ctx, trader, "utoka", math.NewInt(1_000_000_000))
	require.NoError(t, err)
	after := k.GetFeeTracker(ctx)

	require.True(t, after.FeesPerShare.GT(before), "accumulator only grows")
	require.True(t, after.TotalFeesEarned.Equal(math.NewInt(6_000_000)))
}
