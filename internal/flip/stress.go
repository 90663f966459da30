package flip

import (
	"math"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/market"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

// ScenarioName identifies one stress scenario.
// Keep these values stable; they are used in API payloads and CSV output.
type ScenarioName string

const (
	ScenarioBase         ScenarioName = "BASE"
	ScenarioSaleDown5    ScenarioName = "SALE_PRICE_DOWN_5"
	ScenarioRenovationUp ScenarioName = "RENOVATION_UP_10"
	ScenarioDelay3M      ScenarioName = "DELAY_PLUS_3_MONTHS"
)

// Label is the display name used by the reference tool.
func (n ScenarioName) Label() string {
	switch n {
	case ScenarioSaleDown5:
		return "Venda -5%"
	case ScenarioRenovationUp:
		return "Obra +10%"
	case ScenarioDelay3M:
		return "Atraso +3 meses"
	default:
		return "Base"
	}
}

// StressScenario is one recomputed adverse variant of a business case.
type StressScenario struct {
	Name      ScenarioName
	Profit    float64
	NetMargin float64
}

// StressTest derives the fixed adverse-scenario set from a computed business
// case: the base reproduction, a 5% additional sale haircut, a 10% renovation
// overrun, and a 3-month absorption delay that scales the holding cost.
//
// Effective rates are re-derived from the case itself (fee/prudent sale and
// so on, guarded to 0 on zero denominators) so the generator needs only the
// case and the absorption estimate, not the original rate parameters. The
// purchase price is never perturbed.
//
// Always returns exactly 4 scenarios in the order Base, SalePriceDown5,
// RenovationUp10, DelayPlus3Months.
func StressTest(bc model.BusinessCase, absorptionMonths float64) []StressScenario {
	saleRate := safeRatio(bc.SaleFee, bc.PrudentSale)
	acquisitionRate := safeRatio(bc.AcquisitionCost, bc.PurchasePrice)
	holdingRate := safeRatio(bc.HoldingCost, bc.PurchasePrice+bc.RenovationTotal)

	months := absorptionMonths
	if months <= 0 {
		months = market.DefaultAbsorptionMonths
	}

	recompute := func(name ScenarioName, saleValue, renovationValue, holdingScale float64) StressScenario {
		acquisition := bc.PurchasePrice * acquisitionRate
		holding := (bc.PurchasePrice + renovationValue) * holdingRate * holdingScale
		investment := bc.PurchasePrice + acquisition + renovationValue + holding
		fee := saleValue * saleRate
		profit := saleValue - (investment + fee)
		margin := math.NaN()
		if saleValue > 0 {
			margin = profit / saleValue
		}
		return StressScenario{Name: name, Profit: profit, NetMargin: margin}
	}

	delayScale := 1.5
	if months > 0 {
		delayScale = (months + 3.0) / months
	}

	return []StressScenario{
		recompute(ScenarioBase, bc.PrudentSale, bc.RenovationTotal, 1.0),
		recompute(ScenarioSaleDown5, bc.PrudentSale*0.95, bc.RenovationTotal, 1.0),
		recompute(ScenarioRenovationUp, bc.PrudentSale, bc.RenovationTotal*1.10, 1.0),
		recompute(ScenarioDelay3M, bc.PrudentSale, bc.RenovationTotal, delayScale),
	}
}

func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
