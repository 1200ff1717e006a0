package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// InitGenesis restores module state from a genesis snapshot
func (k Keeper) InitGenesis(ctx sdk.Context, genState ammtypes.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	if genState.Pool == nil {
		return
	}

	p := genState.Pool

	if err := k.InitializePool(ctx, p.AssetA, p.AssetB, p.LpName, p.LpSymbol); err != nil {
		panic(err)
	}

	k.setReserves(ctx, p.ReserveA, p.ReserveB)
	k.setInt(ctx, ammtypes.TotalSupplyKey, p.TotalShares)

	for _, bal := range p.Balances {
		owner, err := sdk.AccAddressFromBech32(bal.Address)
		if err != nil {
			panic(fmt.Errorf("invalid share holder address %s: %w", bal.Address, err))
		}
		k.setBalance(ctx, owner, bal.Shares)
		if bal.LastObservedFees.IsPositive() {
			k.setInt(ctx, ammtypes.LastObservedFeesKey(owner), bal.LastObservedFees)
		}
	}

	k.setInt(ctx, ammtypes.TotalFeesEarnedKey, p.FeeTracker.TotalFeesEarned)
	k.setInt(ctx, ammtypes.FeesPerShareKey, p.FeeTracker.FeesPerShare)
	k.setInt64(ctx, ammtypes.FeeLastUpdateKey, p.FeeTracker.LastUpdate)

	k.setInt(ctx, ammtypes.VolumeAllTimeKey, p.VolumeTracker.TotalVolumeAllTime)
	k.setInt(ctx, ammtypes.Volume24hKey, p.VolumeTracker.TotalVolume24h)
	k.setInt(ctx, ammtypes.Volume7dKey, p.VolumeTracker.TotalVolume7d)
	k.setInt64(ctx, ammtypes.LastSwapLedgerKey, p.VolumeTracker.LastSwapLedger)

	k.setInt(ctx, ammtypes.NativeBalanceKey, p.NativeBalance)
}

// ExportGenesis writes module state out as a genesis snapshot
func (k Keeper) ExportGenesis(ctx sdk.Context) *ammtypes.GenesisState {
	genState := &ammtypes.GenesisState{
		Params: k.GetParams(ctx),
	}

	if !k.IsInitialized(ctx) {
		return genState
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		panic(err)
	}

	var balances []ammtypes.GenesisBalance
	k.IterateBalances(ctx, func(owner sdk.AccAddress, shares math.Int) bool {
		balances = append(balances, ammtypes.GenesisBalance{
			Address:          owner.String(),
			Shares:           shares,
			LastObservedFees: k.LastObservedFees(ctx, owner),
		})
		return false
	})

	genState.Pool = &ammtypes.GenesisPool{
		AssetA:        pool.AssetA.ID,
		AssetB:        pool.AssetB.ID,
		LpName:        k.LPName(ctx),
		LpSymbol:      k.LPSymbol(ctx),
		ReserveA:      pool.ReserveA,
		ReserveB:      pool.ReserveB,
		TotalShares:   k.TotalSupply(ctx),
		Balances:      balances,
		FeeTracker:    k.GetFeeTracker(ctx),
		VolumeTracker: k.GetVolumeTracker(ctx),
		NativeBalance: k.NativeBalance(ctx),
	}

	return genState
}
