package flip

import (
	"fmt"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/market"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

// ResolvedEstimate records a figure taken from the reference table together
// with the bucket it came from.
type ResolvedEstimate struct {
	Value  float64
	Source string
}

// Evaluation is the complete output for one asking price: the resolved market
// estimates, the business case at the asking price, the closed-form optimal
// purchase price with its own case, and the stress runs for both.
type Evaluation struct {
	Inputs model.ScenarioInputs

	PricePerM2       ResolvedEstimate
	AbsorptionMonths ResolvedEstimate

	Asked        model.BusinessCase
	AskedVerdict model.Verdict
	AskedStress  []StressScenario

	OptimalPrice   float64
	Optimal        model.BusinessCase
	OptimalVerdict model.Verdict
	OptimalStress  []StressScenario
}

// Evaluate runs the full pipeline over a loaded table: resolve the €/m² price
// and absorption for the locality/typology, compute the asking-price case,
// solve for the maximum purchase price meeting the target margin, recompute
// at that price and stress-test both scenarios.
//
// Fails only on resolution (*market.NotFoundError); all downstream arithmetic
// is total.
func Evaluate(table *market.Table, in model.ScenarioInputs) (*Evaluation, error) {
	pricePerM2, priceSource, err := table.ResolveSalePrice(in.Locality, in.Typology)
	if err != nil {
		return nil, fmt.Errorf("resolve sale price: %w", err)
	}
	months, monthsSource, err := table.ResolveAbsorption(in.Locality, in.Typology)
	if err != nil {
		return nil, fmt.Errorf("resolve absorption: %w", err)
	}

	asked := ComputeCase(in.AskingPrice, in.AreaM2, pricePerM2, in.RenovationTier, in.Rates)

	optimalPrice := SolveOptimalPrice(
		asked.PrudentSale,
		asked.RenovationTotal,
		in.Rates.Acquisition,
		in.Rates.Holding,
		in.Rates.Sale,
		in.Rates.TargetNetMargin,
	)
	optimal := ComputeCase(optimalPrice, in.AreaM2, pricePerM2, in.RenovationTier, in.Rates)

	return &Evaluation{
		Inputs: in,

		PricePerM2:       ResolvedEstimate{Value: pricePerM2, Source: priceSource},
		AbsorptionMonths: ResolvedEstimate{Value: months, Source: monthsSource},

		Asked:        asked,
		AskedVerdict: model.VerdictFromMargin(asked.NetMargin, in.Rates.TargetNetMargin),
		AskedStress:  StressTest(asked, months),

		OptimalPrice:   optimalPrice,
		Optimal:        optimal,
		OptimalVerdict: model.VerdictFromMargin(optimal.NetMargin, in.Rates.TargetNetMargin),
		OptimalStress:  StressTest(optimal, months),
	}, nil
}
