package types

import (
	"cosmossdk.io/math"
)

// PoolState is the pool identity and current reserves. Asset identities
// are immutable after initialization; reserves are mutated only by the
// liquidity and swap paths.
type PoolState struct {
	AssetA   AssetRef `json:"asset_a"`
	AssetB   AssetRef `json:"asset_b"`
	ReserveA math.Int `json:"reserve_a"`
	ReserveB math.Int `json:"reserve_b"`
}

// IsNativePool reports whether either side of the pool is the chain's
// native asset.
func (p PoolState) IsNativePool() bool {
	return p.AssetA.Native || p.AssetB.Native
}

// NativeAssetIndex returns which side holds the native asset.
func (p PoolState) NativeAssetIndex() NativeIndex {
	switch {
	case p.AssetA.Native:
		return NativeIndexAssetA
	case p.AssetB.Native:
		return NativeIndexAssetB
	default:
		return NativeIndexNone
	}
}

// FeeTracker is the global fee-accrual state. FeesPerShare is scaled by
// 10^18 and is monotonically non-decreasing; claims never touch it.
type FeeTracker struct {
	TotalFeesEarned math.Int `json:"total_fees_earned"`
	FeesPerShare    math.Int `json:"fees_per_share"`
	LastUpdate      int64    `json:"last_update"`
}

// VolumeTracker holds cumulative trade-volume counters. Only the
// all-time counter is authoritative; the windowed fields are aliases of
// it (no time-bucketed decay is implemented).
type VolumeTracker struct {
	TotalVolumeAllTime math.Int `json:"total_volume_all_time"`
	TotalVolume24h     math.Int `json:"total_volume_24h"`
	TotalVolume7d      math.Int `json:"total_volume_7d"`
	LastSwapLedger     int64    `json:"last_swap_ledger"`
}

// LiquidityPosition is a holder's view of their stake: LP share balance,
// the pro-rata amounts of each pooled asset, and the basis-point share
// of total supply.
type LiquidityPosition struct {
	Shares   math.Int `json:"shares"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
	ShareBps math.Int `json:"share_bps"`
}
