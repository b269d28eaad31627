// engine/profit.go
package engine

import (
	"math"

	"github.com/edgescope/edgescope/market"
)

// ComputeProfit converts an entry/exit price pair into realized currency
// profit:
//
//	long:  (exit - entry - fee) * size * multiplier
//	short: (entry - exit - fee) * size * multiplier
//
// Any other direction produces zero. The result is nil (indeterminate)
// unless all four numeric inputs are present and finite, or if the final
// product overflows. Pure and safe to call concurrently.
func ComputeProfit(symbol string, direction market.Direction, entryPrice, exitPrice, feePerUnit, size *float64) *float64 {
	if !finite(entryPrice) || !finite(exitPrice) || !finite(feePerUnit) || !finite(size) {
		return nil
	}

	var perUnit float64
	switch direction {
	case market.Long:
		perUnit = *exitPrice - *entryPrice - *feePerUnit
	case market.Short:
		perUnit = *entryPrice - *exitPrice - *feePerUnit
	}

	total := perUnit * *size * market.Multiplier(symbol)
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return nil
	}
	return &total
}

func finite(p *float64) bool {
	return p != nil && !math.IsNaN(*p) && !math.IsInf(*p, 0)
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
