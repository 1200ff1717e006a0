package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Params defines the tunable parameters of the AMM module. The swap fee
// and minimum-liquidity floor default to the protocol constants but can
// be overridden at genesis.
type Params struct {
	FeeBps           int64    `json:"fee_bps" yaml:"fee_bps"`
	MinimumLiquidity math.Int `json:"minimum_liquidity" yaml:"minimum_liquidity"`
}

func (p *Params) Reset()         { *p = Params{} }
func (p *Params) String() string { return fmt.Sprintf("%v", *p) }
func (p *Params) ProtoMessage()  {}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		FeeBps:           FeeBps,
		MinimumLiquidity: math.NewInt(MinimumLiquidity),
	}
}

// NewParams creates a new Params instance
func NewParams(feeBps int64, minimumLiquidity math.Int) Params {
	return Params{
		FeeBps:           feeBps,
		MinimumLiquidity: minimumLiquidity,
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.FeeBps < 0 || p.FeeBps >= BpsDenominator {
		return fmt.Errorf("fee_bps must be in [0, %d): %d", BpsDenominator, p.FeeBps)
	}

	if p.MinimumLiquidity.IsNil() || p.MinimumLiquidity.IsNegative() {
		return fmt.Errorf("minimum_liquidity cannot be negative")
	}

	return nil
}
