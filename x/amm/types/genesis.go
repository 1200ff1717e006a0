package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
)

// GenesisPool is the exported snapshot of an initialized pool: identity,
// reserves, LP ledger, fee and volume trackers, and the internal native
// balance.
type GenesisPool struct {
	AssetA        string           `json:"asset_a"`
	AssetB        string           `json:"asset_b"`
	LpName        string           `json:"lp_name"`
	LpSymbol      string           `json:"lp_symbol"`
	ReserveA      math.Int         `json:"reserve_a"`
	ReserveB      math.Int         `json:"reserve_b"`
	TotalShares   math.Int         `json:"total_shares"`
	Balances      []GenesisBalance `json:"balances"`
	FeeTracker    FeeTracker       `json:"fee_tracker"`
	VolumeTracker VolumeTracker    `json:"volume_tracker"`
	NativeBalance math.Int         `json:"native_balance"`
}

// GenesisBalance is one holder's LP share balance and their
// fees-per-share snapshot.
type GenesisBalance struct {
	Address          string   `json:"address"`
	Shares           math.Int `json:"shares"`
	LastObservedFees math.Int `json:"last_observed_fees"`
}

// GenesisState defines the AMM module's genesis state.
type GenesisState struct {
	Params Params       `json:"params"`
	Pool   *GenesisPool `json:"pool,omitempty"`
}

func (gs *GenesisState) Reset()         { *gs = GenesisState{} }
func (gs *GenesisState) String() string { return fmt.Sprintf("%v", *gs) }
func (gs *GenesisState) ProtoMessage()  {}

// DefaultGenesis returns the default genesis state for the AMM module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Pool:   nil,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.Pool == nil {
		return nil
	}

	p := gs.Pool

	if strings.TrimSpace(p.AssetA) == "" || strings.TrimSpace(p.AssetB) == "" {
		return fmt.Errorf("pool asset identifiers cannot be empty")
	}
	if p.AssetA == p.AssetB {
		return fmt.Errorf("pool assets must be different")
	}
	if IsNativeAsset(p.AssetA) && IsNativeAsset(p.AssetB) {
		return fmt.Errorf("both pool assets resolve to the native asset")
	}

	for _, amt := range []math.Int{p.ReserveA, p.ReserveB, p.TotalShares, p.NativeBalance} {
		if amt.IsNil() || amt.IsNegative() {
			return fmt.Errorf("pool amounts cannot be nil or negative")
		}
	}

	sum := math.ZeroInt()
	seen := make(map[string]struct{}, len(p.Balances))
	for _, bal := range p.Balances {
		if strings.TrimSpace(bal.Address) == "" {
			return fmt.Errorf("share balance missing holder address")
		}
		if _, ok := seen[bal.Address]; ok {
			return fmt.Errorf("duplicate share balance for %s", bal.Address)
		}
		seen[bal.Address] = struct{}{}

		if bal.Shares.IsNil() || bal.Shares.IsNegative() {
			return fmt.Errorf("share balance for %s cannot be nil or negative", bal.Address)
		}
		if bal.LastObservedFees.IsNil() || bal.LastObservedFees.IsNegative() {
			return fmt.Errorf("fee snapshot for %s cannot be nil or negative", bal.Address)
		}
		sum = sum.Add(bal.Shares)
	}

	if !sum.Equal(p.TotalShares) {
		return fmt.Errorf("share balances sum to %s, total supply is %s", sum, p.TotalShares)
	}

	ft := p.FeeTracker
	if ft.TotalFeesEarned.IsNil() || ft.TotalFeesEarned.IsNegative() {
		return fmt.Errorf("total fees earned cannot be nil or negative")
	}
	if ft.FeesPerShare.IsNil() || ft.FeesPerShare.IsNegative() {
		return fmt.Errorf("fees per share cannot be nil or negative")
	}

	vt := p.VolumeTracker
	if vt.TotalVolumeAllTime.IsNil() || vt.TotalVolumeAllTime.IsNegative() {
		return fmt.Errorf("all-time volume cannot be nil or negative")
	}

	return nil
}
