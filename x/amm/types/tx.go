package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	ClaimFees(context.Context, *MsgClaimFees) (*MsgClaimFeesResponse, error)
}

// Response types

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgClaimFeesResponse defines the response for ClaimFees
type MsgClaimFeesResponse struct {
	FeesClaimed math.Int `json:"fees_claimed"`
}

// Message name constants, used as amino routes and type URL suffixes.
const (
	msgAddLiquidityName    = "cosmodex.amm.v1.MsgAddLiquidity"
	msgRemoveLiquidityName = "cosmodex.amm.v1.MsgRemoveLiquidity"
	msgSwapName            = "cosmodex.amm.v1.MsgSwap"
	msgClaimFeesName       = "cosmodex.amm.v1.MsgClaimFees"
)

// proto.Message implementations for the hand-written message types

func (m *MsgAddLiquidity) Reset()                  { *m = MsgAddLiquidity{} }
func (m *MsgAddLiquidity) String() string          { return fmt.Sprintf("%v", *m) }
func (m *MsgAddLiquidity) ProtoMessage()           {}
func (m *MsgAddLiquidity) XXX_MessageName() string { return msgAddLiquidityName }

func (m *MsgRemoveLiquidity) Reset()                  { *m = MsgRemoveLiquidity{} }
func (m *MsgRemoveLiquidity) String() string          { return fmt.Sprintf("%v", *m) }
func (m *MsgRemoveLiquidity) ProtoMessage()           {}
func (m *MsgRemoveLiquidity) XXX_MessageName() string { return msgRemoveLiquidityName }

func (m *MsgSwap) Reset()                  { *m = MsgSwap{} }
func (m *MsgSwap) String() string          { return fmt.Sprintf("%v", *m) }
func (m *MsgSwap) ProtoMessage()           {}
func (m *MsgSwap) XXX_MessageName() string { return msgSwapName }

func (m *MsgClaimFees) Reset()                  { *m = MsgClaimFees{} }
func (m *MsgClaimFees) String() string          { return fmt.Sprintf("%v", *m) }
func (m *MsgClaimFees) ProtoMessage()           {}
func (m *MsgClaimFees) XXX_MessageName() string { return msgClaimFeesName }

func (m *MsgAddLiquidityResponse) Reset()         { *m = MsgAddLiquidityResponse{} }
func (m *MsgAddLiquidityResponse) String() string { return fmt.Sprintf("%v", *m) }
func (m *MsgAddLiquidityResponse) ProtoMessage()  {}

func (m *MsgRemoveLiquidityResponse) Reset()         { *m = MsgRemoveLiquidityResponse{} }
func (m *MsgRemoveLiquidityResponse) String() string { return fmt.Sprintf("%v", *m) }
func (m *MsgRemoveLiquidityResponse) ProtoMessage()  {}

func (m *MsgSwapResponse) Reset()         { *m = MsgSwapResponse{} }
func (m *MsgSwapResponse) String() string { return fmt.Sprintf("%v", *m) }
func (m *MsgSwapResponse) ProtoMessage()  {}

func (m *MsgClaimFeesResponse) Reset()         { *m = MsgClaimFeesResponse{} }
func (m *MsgClaimFeesResponse) String() string { return fmt.Sprintf("%v", *m) }
func (m *MsgClaimFeesResponse) ProtoMessage()  {}
