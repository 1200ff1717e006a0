package keeper

import (
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// Keeper of the amm store
type Keeper struct {
	storeKey    storetypes.StoreKey
	cdc         *codec.LegacyAmino
	assetKeeper ammtypes.FungibleAssetKeeper
	moduleAddr  sdk.AccAddress
	metrics     *Metrics
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	assetKeeper ammtypes.FungibleAssetKeeper,
) *Keeper {
	return &Keeper{
		storeKey:    key,
		cdc:         cdc,
		assetKeeper: assetKeeper,
		moduleAddr:  authtypes.NewModuleAddress(ammtypes.ModuleName),
		metrics:     GetMetrics(),
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+ammtypes.ModuleName)
}

// ModuleAddress returns the module account address holding pooled assets
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return k.moduleAddr
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// Scalar store records. Every numeric field is persisted under its own
// stable key as a math.Int marshal, so records never depend on a struct
// codec.

func (k Keeper) getInt(ctx sdk.Context, key []byte) math.Int {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return math.ZeroInt()
	}

	var v math.Int
	if err := v.Unmarshal(bz); err != nil {
		panic(err)
	}
	return v
}

func (k Keeper) setInt(ctx sdk.Context, key []byte, v math.Int) {
	bz, err := v.Marshal()
	if err != nil {
		panic(err)
	}
	k.getStore(ctx).Set(key, bz)
}

func (k Keeper) getInt64(ctx sdk.Context, key []byte) int64 {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return 0
	}
	return int64(sdk.BigEndianToUint64(bz))
}

func (k Keeper) setInt64(ctx sdk.Context, key []byte, v int64) {
	k.getStore(ctx).Set(key, sdk.Uint64ToBigEndian(uint64(v)))
}

func (k Keeper) getString(ctx sdk.Context, key []byte) string {
	return string(k.getStore(ctx).Get(key))
}

func (k Keeper) setString(ctx sdk.Context, key []byte, v string) {
	k.getStore(ctx).Set(key, []byte(v))
}
