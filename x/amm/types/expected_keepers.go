package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FungibleAssetKeeper is the interface the pool expects from the chain's
// token layer for the two pooled non-native assets. Transfers into the
// pool pull from the depositor; transfers out push from the module
// account.
type FungibleAssetKeeper interface {
	// Transfer moves amount of the asset from sender to recipient.
	Transfer(ctx sdk.Context, assetID string, sender, recipient sdk.AccAddress, amount math.Int) error

	// Balance returns the asset balance held by addr.
	Balance(ctx sdk.Context, assetID string, addr sdk.AccAddress) math.Int
}
