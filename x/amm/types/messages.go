package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgAddLiquidity    = "add_liquidity"
	TypeMsgRemoveLiquidity = "remove_liquidity"
	TypeMsgSwap            = "swap"
	TypeMsgClaimFees       = "claim_fees"
)

var (
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
	_ sdk.Msg = &MsgSwap{}
	_ sdk.Msg = &MsgClaimFees{}
)

// MsgAddLiquidity deposits proportional amounts of both pooled assets in
// exchange for LP shares.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

// MsgRemoveLiquidity burns LP shares for a pro-rata slice of both
// reserves.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
}

// MsgSwap trades a fixed input amount of one pooled asset for the other.
type MsgSwap struct {
	Trader   string   `json:"trader"`
	AssetIn  string   `json:"asset_in"`
	AmountIn math.Int `json:"amount_in"`
}

// MsgClaimFees pays out the signer's accrued share of swap fees.
type MsgClaimFees struct {
	Claimer string `json:"claimer"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, amountA, amountB math.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider string, shares math.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider: provider,
		Shares:   shares,
	}
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader, assetIn string, amountIn math.Int) *MsgSwap {
	return &MsgSwap{
		Trader:   trader,
		AssetIn:  assetIn,
		AmountIn: amountIn,
	}
}

// NewMsgClaimFees creates a new MsgClaimFees instance
func NewMsgClaimFees(claimer string) *MsgClaimFees {
	return &MsgClaimFees{Claimer: claimer}
}

// MsgAddLiquidity implementations

// ValidateBasic performs basic validation of MsgAddLiquidity
func (m *MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}

	if m.AmountA.IsNil() || m.AmountA.IsNegative() {
		return fmt.Errorf("amount_a cannot be negative")
	}

	if m.AmountB.IsNil() || m.AmountB.IsNegative() {
		return fmt.Errorf("amount_b cannot be negative")
	}

	return nil
}

// GetSigners returns the expected signers for MsgAddLiquidity
// Assumes address is valid (validated in ValidateBasic)
func (m *MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(m.Provider)
	return []sdk.AccAddress{provider}
}

// MsgRemoveLiquidity implementations

// ValidateBasic performs basic validation of MsgRemoveLiquidity
func (m *MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}

	if m.Shares.IsNil() || m.Shares.IsZero() || m.Shares.IsNegative() {
		return fmt.Errorf("shares must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgRemoveLiquidity
// Assumes address is valid (validated in ValidateBasic)
func (m *MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(m.Provider)
	return []sdk.AccAddress{provider}
}

// MsgSwap implementations

// ValidateBasic performs basic validation of MsgSwap
func (m *MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return fmt.Errorf("invalid trader address: %w", err)
	}

	if m.AssetIn == "" {
		return fmt.Errorf("asset_in cannot be empty")
	}

	if m.AmountIn.IsNil() || m.AmountIn.IsZero() || m.AmountIn.IsNegative() {
		return fmt.Errorf("invalid amount: amount_in must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgSwap
// Assumes address is valid (validated in ValidateBasic)
func (m *MsgSwap) GetSigners() []sdk.AccAddress {
	trader, _ := sdk.AccAddressFromBech32(m.Trader)
	return []sdk.AccAddress{trader}
}

// MsgClaimFees implementations

// ValidateBasic performs basic validation of MsgClaimFees
func (m *MsgClaimFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Claimer); err != nil {
		return fmt.Errorf("invalid claimer address: %w", err)
	}

	return nil
}

// GetSigners returns the expected signers for MsgClaimFees
func (m *MsgClaimFees) GetSigners() []sdk.AccAddress {
	claimer, _ := sdk.AccAddressFromBech32(m.Claimer)
	return []sdk.AccAddress{claimer}
}
