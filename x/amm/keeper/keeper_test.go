package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/cosmosdex-labs/cosmodex-contracts/testutil/keeper"
	"github.com/cosmosdex-labs/cosmodex-contracts/x/amm/keeper"
	"github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// testAddr derives a deterministic 20-byte account address from a label
func testAddr(name string) sdk.AccAddress {
	buf := make([]byte, 20)
	copy(buf, name)
	return sdk.AccAddress(buf)
}

// setupFundedPool initializes a pool over the two assets and seeds it
// with the given reserves from a dedicated provider account
func setupFundedPool(t testing.TB, assetA, assetB string, reserveA, reserveB math.Int) (*keeper.Keeper, *keepertest.MockAssetKeeper, sdk.Context) {
	k, assets, ctx := keepertest.AmmKeeper(t)

	require.NoError(t, k.InitializePool(ctx, assetA, assetB, "Pool Shares", "POOL"))

	provider := testAddr("provider")
	if !types.IsNativeAsset(assetA) {
		assets.FundAccount(assetA, provider, reserveA)
	}
	if !types.IsNativeAsset(assetB) {
		assets.FundAccount(assetB, provider, reserveB)
	}

	_, err := k.AddLiquidity(ctx, provider, reserveA, reserveB)
	require.NoError(t, err)

	return k, assets, ctx
}

// keeperWithEmptyPool initializes the pool identity but adds no
// liquidity
func keeperWithEmptyPool(t testing.TB) (*keeper.Keeper, *keepertest.MockAssetKeeper, sdk.Context) {
	k, assets, ctx := keepertest.AmmKeeper(t)
	require.NoError(t, k.InitializePool(ctx, "utoka", "utokb", "Pool Shares", "POOL"))
	return k, assets, ctx
}

type KeeperTestSuite struct {
	suite.Suite
	keeper *keeper.Keeper
	assets *keepertest.MockAssetKeeper
	ctx    sdk.Context
}

func (s *KeeperTestSuite) SetupTest() {
	s.keeper, s.assets, s.ctx = keepertest.AmmKeeper(s.T())
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) TestUninitializedPoolRejectsOperations() {
	addr := testAddr("someone")

	_, err := s.keeper.AddLiquidity(s.ctx, addr, math.NewInt(100), math.NewInt(100))
	s.Require().True(types.ErrNotInitialized.Is(err))

	_, _, err = s.keeper.RemoveLiquidity(s.ctx, addr, math.NewInt(100))
	s.Require().True(types.ErrNotInitialized.Is(err))

	_, err = s.keeper.Swap(s.ctx, addr, "utoka", math.NewInt(100))
	s.Require().True(types.ErrNotInitialized.Is(err))

	_, err = s.keeper.ClaimFees(s.ctx, addr)
	s.Require().True(types.ErrNotInitialized.Is(err))

	_, err = s.keeper.GetPool(s.ctx)
	s.Require().True(types.ErrNotInitialized.Is(err))
}

func (s *KeeperTestSuite) TestDefaultParams() {
	params := s.keeper.GetParams(s.ctx)
	s.Require().EqualValues(types.FeeBps, params.FeeBps)
	s.Require().True(params.MinimumLiquidity.Equal(math.NewInt(types.MinimumLiquidity)))
}
