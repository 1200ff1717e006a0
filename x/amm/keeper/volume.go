package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// Volume tracker. The all-time counter is the only authoritative series;
// the 24h and 7d records are stored aliases of it until windowed decay
// is implemented.

// GetVolumeTracker returns the cumulative volume counters
func (k Keeper) GetVolumeTracker(ctx sdk.Context) ammtypes.VolumeTracker {
	return ammtypes.VolumeTracker{
		TotalVolumeAllTime: k.getInt(ctx, ammtypes.VolumeAllTimeKey),
		TotalVolume24h:     k.getInt(ctx, ammtypes.Volume24hKey),
		TotalVolume7d:      k.getInt(ctx, ammtypes.Volume7dKey),
		LastSwapLedger:     k.getInt64(ctx, ammtypes.LastSwapLedgerKey),
	}
}

// recordVolume folds a gross swap input into the counters
func (k Keeper) recordVolume(ctx sdk.Context, amountIn math.Int) error {
	allTime, err := SafeAdd(k.getInt(ctx, ammtypes.VolumeAllTimeKey), amountIn)
	if err != nil {
		return err
	}

	k.setInt(ctx, ammtypes.VolumeAllTimeKey, allTime)
	k.setInt(ctx, ammtypes.Volume24hKey, allTime)
	k.setInt(ctx, ammtypes.Volume7dKey, allTime)
	k.setInt64(ctx, ammtypes.LastSwapLedgerKey, ctx.BlockHeight())

	k.metrics.AddVolume(amountIn)
	return nil
}
