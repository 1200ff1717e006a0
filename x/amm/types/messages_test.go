package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/cosmosdex-labs/cosmodex-contracts/x/amm/types"
)

func sampleAddr(name string) string {
	addr := make([]byte, 20)
	copy(addr, name)
	return sdk.AccAddress(addr).String()
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     types.MsgAddLiquidity
		wantErr bool
	}{
		{
			name: "valid",
			msg:  *types.NewMsgAddLiquidity(sampleAddr("provider"), math.NewInt(100), math.NewInt(200)),
		},
		{
			name: "zero amounts allowed",
			msg:  *types.NewMsgAddLiquidity(sampleAddr("provider"), math.ZeroInt(), math.ZeroInt()),
		},
		{
			name:    "invalid address",
			msg:     *types.NewMsgAddLiquidity("invalid", math.NewInt(100), math.NewInt(200)),
			wantErr: true,
		},
		{
			name:    "negative amount_a",
			msg:     *types.NewMsgAddLiquidity(sampleAddr("provider"), math.NewInt(-1), math.NewInt(200)),
			wantErr: true,
		},
		{
			name:    "nil amount_b",
			msg:     types.MsgAddLiquidity{Provider: sampleAddr("provider"), AmountA: math.NewInt(100)},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgRemoveLiquidityValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     types.MsgRemoveLiquidity
		wantErr bool
	}{
		{
			name: "valid",
			msg:  *types.NewMsgRemoveLiquidity(sampleAddr("provider"), math.NewInt(500)),
		},
		{
			name:    "invalid address",
			msg:     *types.NewMsgRemoveLiquidity("invalid", math.NewInt(500)),
			wantErr: true,
		},
		{
			name:    "zero shares",
			msg:     *types.NewMsgRemoveLiquidity(sampleAddr("provider"), math.ZeroInt()),
			wantErr: true,
		},
		{
			name:    "negative shares",
			msg:     *types.NewMsgRemoveLiquidity(sampleAddr("provider"), math.NewInt(-5)),
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgSwapValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     types.MsgSwap
		wantErr bool
	}{
		{
			name: "valid",
			msg:  *types.NewMsgSwap(sampleAddr("trader"), "utoka", math.NewInt(1000)),
		},
		{
			name: "native alias",
			msg:  *types.NewMsgSwap(sampleAddr("trader"), "native", math.NewInt(1000)),
		},
		{
			name:    "invalid address",
			msg:     *types.NewMsgSwap("invalid", "utoka", math.NewInt(1000)),
			wantErr: true,
		},
		{
			name:    "empty asset",
			msg:     *types.NewMsgSwap(sampleAddr("trader"), "", math.NewInt(1000)),
			wantErr: true,
		},
		{
			name:    "zero amount",
			msg:     *types.NewMsgSwap(sampleAddr("trader"), "utoka", math.ZeroInt()),
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgClaimFeesValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgClaimFees(sampleAddr("claimer")).ValidateBasic())
	require.Error(t, types.NewMsgClaimFees("invalid").ValidateBasic())
}

func TestMsgGetSigners(t *testing.T) {
	provider := sampleAddr("provider")
	signers := types.NewMsgAddLiquidity(provider, math.NewInt(1), math.NewInt(1)).GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, provider, signers[0].String())
}
