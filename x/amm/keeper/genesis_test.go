package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/cosmosdex-labs/cosmodex-contracts/testutil/keeper"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, assets, ctx := setupTwoProviderPool(t)

	trader := testAddr("trader")
	assets.FundAccount("utoka", trader, math.NewInt(1_000_000_000))
	_, err := k.Swap(ctx, trader, "utoka", math.NewInt(1_000_000_000))
	require.NoError(t, err)

	exported := k.ExportGenesis(ctx)
	require.NotNil(t, exported.Pool)
	require.NoError(t, exported.Validate())

	// Rebuild a fresh keeper from the snapshot
	k2, _, ctx2 := keepertest.AmmKeeper(t)
	k2.InitGenesis(ctx2, *exported)

	require.True(t, k2.IsInitialized(ctx2))

	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	pool2, err := k2.GetPool(ctx2)
	require.NoError(t, err)
	require.Equal(t, pool.AssetA.ID, pool2.AssetA.ID)
	require.Equal(t, pool.AssetB.ID, pool2.AssetB.ID)
	require.True(t, pool.ReserveA.Equal(pool2.ReserveA))
	require.True(t, pool.ReserveB.Equal(pool2.ReserveB))

	require.True(t, k.TotalSupply(ctx).Equal(k2.TotalSupply(ctx2)))
	require.True(t, k.BalanceOf(ctx, testAddr("provider")).Equal(k2.BalanceOf(ctx2, testAddr("provider"))))
	require.True(t, k.BalanceOf(ctx, testAddr("second")).Equal(k2.BalanceOf(ctx2, testAddr("second"))))

	ft, ft2 := k.GetFeeTracker(ctx), k2.GetFeeTracker(ctx2)
	require.True(t, ft.TotalFeesEarned.Equal(ft2.TotalFeesEarned))
	require.True(t, ft.FeesPerShare.Equal(ft2.FeesPerShare))

	vt, vt2 := k.GetVolumeTracker(ctx), k2.GetVolumeTracker(ctx2)
	require.True(t, vt.TotalVolumeAllTime.Equal(vt2.TotalVolumeAllTime))

	require.True(t, k.NativeBalance(ctx).Equal(k2.NativeBalance(ctx2)))
}

func TestGenesisExportWithoutPool(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	exported := k.ExportGenesis(ctx)
	require.Nil(t, exported.Pool)
	require.NoError(t, exported.Validate())
}
