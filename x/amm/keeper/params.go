package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

// GetParams returns the current module parameters, falling back to
// defaults when none have been written yet.
func (k Keeper) GetParams(ctx sdk.Context) ammtypes.Params {
	bz := k.getStore(ctx).Get(ammtypes.ParamsKey)
	if bz == nil {
		return ammtypes.DefaultParams()
	}

	var params ammtypes.Params
	k.cdc.MustUnmarshalJSON(bz, &params)
	return params
}

// SetParams writes the module parameters
func (k Keeper) SetParams(ctx sdk.Context, params ammtypes.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := k.cdc.MarshalJSON(params)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(ammtypes.ParamsKey, bz)
	return nil
}
