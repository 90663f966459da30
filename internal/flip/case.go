// Package flip is the valuation engine: the cost/revenue waterfall for one
// purchase price, the closed-form optimal-price solve, the stress scenarios
// and the end-to-end evaluation over a resolved market table.
//
// Every function here is pure and total over finite inputs. Degenerate
// divisions produce NaN (margin, ROI) or a guarded default (break-even);
// they never raise.
package flip

import (
	"math"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

// ComputeCase computes the full business case for one purchase price.
//
// pricePerM2 is the resolved €/m² sale estimate, absorptionMonths the resolved
// months-to-sell (carried through to stress testing; it does not enter the
// waterfall itself).
func ComputeCase(purchasePrice, areaM2, pricePerM2 float64, tier model.RenovationTier, rates model.Rates) model.BusinessCase {
	grossSale := pricePerM2 * areaM2
	prudentSale := grossSale * (1.0 + rates.SalePrudence)

	renovationBase := model.RenovationCostPerM2(tier) * areaM2
	renovationTotal := renovationBase * (1.0 + rates.RenovationContingency)

	acquisition := purchasePrice * rates.Acquisition
	holding := (purchasePrice + renovationTotal) * rates.Holding
	totalInvestment := purchasePrice + acquisition + renovationTotal + holding
	saleFee := prudentSale * rates.Sale

	netProfit := prudentSale - (totalInvestment + saleFee)

	netMargin := math.NaN()
	if prudentSale > 0 {
		netMargin = netProfit / prudentSale
	}
	roi := math.NaN()
	if totalInvestment > 0 {
		roi = netProfit / totalInvestment
	}

	// Guard keeps the break-even finite when the sale rate reaches 100%.
	breakeven := totalInvestment / math.Max(1.0-rates.Sale, 1e-9)

	return model.BusinessCase{
		PurchasePrice: purchasePrice,
		AreaM2:        areaM2,
		PricePerM2:    pricePerM2,

		GrossSale:   grossSale,
		PrudentSale: prudentSale,

		RenovationBase:  renovationBase,
		RenovationTotal: renovationTotal,

		AcquisitionCost: acquisition,
		HoldingCost:     holding,
		TotalInvestment: totalInvestment,
		SaleFee:         saleFee,

		NetProfit:     netProfit,
		NetMargin:     netMargin,
		ROI:           roi,
		BreakevenSale: breakeven,
	}
}
