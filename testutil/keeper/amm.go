package keeper

import (
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/cosmosdex-labs/cosmodex-contracts/x/amm/keeper"
	"github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// MockAssetKeeper is an in-memory fungible-asset ledger implementing
// types.FungibleAssetKeeper for tests.
type MockAssetKeeper struct {
	balances map[string]map[string]math.Int // asset -> address -> amount
}

// NewMockAssetKeeper creates an empty mock asset ledger
func NewMockAssetKeeper() *MockAssetKeeper {
	return &MockAssetKeeper{balances: make(map[string]map[string]math.Int)}
}

// FundAccount credits amount of asset to addr
func (m *MockAssetKeeper) FundAccount(assetID string, addr sdk.AccAddress, amount math.Int) {
	if m.balances[assetID] == nil {
		m.balances[assetID] = make(map[string]math.Int)
	}
	m.balances[assetID][addr.String()] = m.Balance(sdk.Context{}, assetID, addr).Add(amount)
}

// Transfer moves amount of asset from sender to recipient
func (m *MockAssetKeeper) Transfer(_ sdk.Context, assetID string, sender, recipient sdk.AccAddress, amount math.Int) error {
	if amount.IsNegative() {
		return fmt.Errorf("negative transfer amount %s", amount)
	}
	if amount.IsZero() {
		return nil
	}

	from := m.Balance(sdk.Context{}, assetID, sender)
	if from.LT(amount) {
		return fmt.Errorf("insufficient %s balance: have %s, need %s", assetID, from, amount)
	}

	if m.balances[assetID] == nil {
		m.balances[assetID] = make(map[string]math.Int)
	}
	m.balances[assetID][sender.String()] = from.Sub(amount)
	m.balances[assetID][recipient.String()] = m.Balance(sdk.Context{}, assetID, recipient).Add(amount)
	return nil
}

// Balance returns the asset balance held by addr
func (m *MockAssetKeeper) Balance(_ sdk.Context, assetID string, addr sdk.AccAddress) math.Int {
	if m.balances[assetID] == nil {
		return math.ZeroInt()
	}
	if bal, ok := m.balances[assetID][addr.String()]; ok {
		return bal
	}
	return math.ZeroInt()
}

// AmmKeeper creates a test keeper for the AMM module backed by an
// in-memory store and mock asset ledger
func AmmKeeper(t testing.TB) (*keeper.Keeper, *MockAssetKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	assetKeeper := NewMockAssetKeeper()

	k := keeper.NewKeeper(
		codec.NewLegacyAmino(),
		storeKey,
		assetKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1}, false, log.NewNopLogger())

	k.InitGenesis(ctx, *types.DefaultGenesis())

	return k, assetKeeper, ctx
}
