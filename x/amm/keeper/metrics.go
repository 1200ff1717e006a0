package keeper

import (
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the AMM module
type Metrics struct {
	SwapsTotal        prometheus.Counter
	SwapVolume        prometheus.Counter
	SwapFeesCollected prometheus.Counter

	LiquidityAdds    prometheus.Counter
	LiquidityRemoves prometheus.Counter
	ReserveA         prometheus.Gauge
	ReserveB         prometheus.Gauge

	FeeClaims prometheus.Counter
}

var (
	ammMetricsOnce sync.Once
	ammMetrics     *Metrics
)

// NewMetrics creates and registers AMM metrics (singleton pattern)
func NewMetrics() *Metrics {
	ammMetricsOnce.Do(func() {
		ammMetrics = &Metrics{
			SwapsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "cosmodex",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
			),
			SwapVolume: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "cosmodex",
					Subsystem: "amm",
					Name:      "swap_volume_total",
					Help:      "Total swap volume in base units",
				},
			),
			SwapFeesCollected: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "cosmodex",
					Subsystem: "amm",
					Name:      "swap_fees_collected_total",
					Help:      "Total swap fees collected in base units",
				},
			),
			LiquidityAdds: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "cosmodex",
					Subsystem: "amm",
					Name:      "liquidity_adds_total",
					Help:      "Total liquidity additions",
				},
			),
			LiquidityRemoves: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "cosmodex",
					Subsystem: "amm",
					Name:      "liquidity_removes_total",
					Help:      "Total liquidity removals",
				},
			),
			ReserveA: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "cosmodex",
					Subsystem: "amm",
					Name:      "reserve_a",
					Help:      "Current reserve of asset A",
				},
			),
			ReserveB: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "cosmodex",
					Subsystem: "amm",
					Name:      "reserve_b",
					Help:      "Current reserve of asset B",
				},
			),
			FeeClaims: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "cosmodex",
					Subsystem: "amm",
					Name:      "fee_claims_total",
					Help:      "Total fee claim payouts",
				},
			),
		}
	})
	return ammMetrics
}

// GetMetrics returns the singleton AMM metrics instance
func GetMetrics() *Metrics {
	if ammMetrics == nil {
		return NewMetrics()
	}
	return ammMetrics
}

func (m *Metrics) IncSwaps() {
	m.SwapsTotal.Inc()
}

func (m *Metrics) AddVolume(amount math.Int) {
	if f, err := amount.ToLegacyDec().Float64(); err == nil {
		m.SwapVolume.Add(f)
	}
}

func (m *Metrics) AddFees(amount math.Int) {
	if f, err := amount.ToLegacyDec().Float64(); err == nil {
		m.SwapFeesCollected.Add(f)
	}
}

func (m *Metrics) IncLiquidityAdds() {
	m.LiquidityAdds.Inc()
}

func (m *Metrics) IncLiquidityRemoves() {
	m.LiquidityRemoves.Inc()
}

func (m *Metrics) SetReserves(reserveA, reserveB math.Int) {
	if f, err := reserveA.ToLegacyDec().Float64(); err == nil {
		m.ReserveA.Set(f)
	}
	if f, err := reserveB.ToLegacyDec().Float64(); err == nil {
		m.ReserveB.Set(f)
	}
}

func (m *Metrics) IncClaims() {
	m.FeeClaims.Inc()
}
