package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

func validGenesisPool() *types.GenesisPool {
	return &types.GenesisPool{
		AssetA:      "utoka",
		AssetB:      "utokb",
		LpName:      "utoka-utokb LP",
		LpSymbol:    "LP-utoka-utokb",
		ReserveA:    math.NewInt(10_000),
		ReserveB:    math.NewInt(10_000),
		TotalShares: math.NewInt(10_000),
		Balances: []types.GenesisBalance{
			{Address: sampleAddr("alice"), Shares: math.NewInt(7_000), LastObservedFees: math.ZeroInt()},
			{Address: sampleAddr("bob"), Shares: math.NewInt(3_000), LastObservedFees: math.ZeroInt()},
		},
		FeeTracker: types.FeeTracker{
			TotalFeesEarned: math.ZeroInt(),
			FeesPerShare:    math.ZeroInt(),
		},
		VolumeTracker: types.VolumeTracker{
			TotalVolumeAllTime: math.ZeroInt(),
			TotalVolume24h:     math.ZeroInt(),
			TotalVolume7d:      math.ZeroInt(),
		},
		NativeBalance: math.ZeroInt(),
	}
}

func TestGenesisStateValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(gs *types.GenesisState)
		wantErr string
	}{
		{
			name:   "default is valid",
			mutate: func(gs *types.GenesisState) { gs.Pool = nil },
		},
		{
			name:   "populated pool is valid",
			mutate: func(gs *types.GenesisState) {},
		},
		{
			name:    "identical assets",
			mutate:  func(gs *types.GenesisState) { gs.Pool.AssetB = "utoka" },
			wantErr: "pool assets must be different",
		},
		{
			name: "both assets native",
			mutate: func(gs *types.GenesisState) {
				gs.Pool.AssetA = "native"
				gs.Pool.AssetB = "ucdx"
			},
			wantErr: "resolve to the native asset",
		},
		{
			name:    "empty asset id",
			mutate:  func(gs *types.GenesisState) { gs.Pool.AssetA = "  " },
			wantErr: "cannot be empty",
		},
		{
			name:    "negative reserve",
			mutate:  func(gs *types.GenesisState) { gs.Pool.ReserveA = math.NewInt(-1) },
			wantErr: "cannot be nil or negative",
		},
		{
			name: "duplicate holder",
			mutate: func(gs *types.GenesisState) {
				gs.Pool.Balances[1].Address = gs.Pool.Balances[0].Address
			},
			wantErr: "duplicate share balance",
		},
		{
			name:    "unbalanced supply",
			mutate:  func(gs *types.GenesisState) { gs.Pool.TotalShares = math.NewInt(9_999) },
			wantErr: "share balances sum to",
		},
		{
			name: "negative holder shares",
			mutate: func(gs *types.GenesisState) {
				gs.Pool.Balances[0].Shares = math.NewInt(-1)
			},
			wantErr: "cannot be nil or negative",
		},
		{
			name: "negative fee snapshot",
			mutate: func(gs *types.GenesisState) {
				gs.Pool.Balances[0].LastObservedFees = math.NewInt(-1)
			},
			wantErr: "fee snapshot",
		},
		{
			name:    "negative fees per share",
			mutate:  func(gs *types.GenesisState) { gs.Pool.FeeTracker.FeesPerShare = math.NewInt(-1) },
			wantErr: "fees per share",
		},
		{
			name:    "bad params",
			mutate:  func(gs *types.GenesisState) { gs.Params.FeeBps = -1 },
			wantErr: "fee",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := types.GenesisState{
				Params: types.DefaultParams(),
				Pool:   validGenesisPool(),
			}
			tc.mutate(&gs)

			err := gs.Validate()
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDefaultGenesis(t *testing.T) {
	gs := types.DefaultGenesis()
	require.Nil(t, gs.Pool)
	require.NoError(t, gs.Validate())
	require.EqualValues(t, types.FeeBps, gs.Params.FeeBps)
}
