package models

import (
	"math"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/analysis"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/flip"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

// EvaluateResponse is the full evaluation payload.
type EvaluateResponse struct {
	PricePerM2       ResolvedValue    `json:"price_per_m2"`
	AbsorptionMonths ResolvedValue    `json:"absorption_months"`
	Asked            ScenarioResult   `json:"asked"`
	Optimal          ScenarioResult   `json:"optimal"`
	OptimalPrice     float64          `json:"optimal_price"`
	Alerts           []analysis.Alert `json:"alerts"`
}

// ResolvedValue is a figure from the reference table plus its source bucket.
type ResolvedValue struct {
	Value  float64 `json:"value"`
	Source string  `json:"source"`
}

// ScenarioResult is one business case plus its stress runs and verdict.
type ScenarioResult struct {
	Case    BusinessCase   `json:"case"`
	Verdict string         `json:"verdict"`
	Stress  []StressResult `json:"stress"`
}

// BusinessCase mirrors the engine record for JSON. NetMargin and ROI are
// pointers: encoding/json cannot represent NaN, so a degenerate figure
// serializes as null.
type BusinessCase struct {
	PurchasePrice   float64  `json:"purchase_price"`
	AreaM2          float64  `json:"area_m2"`
	PricePerM2      float64  `json:"price_per_m2"`
	GrossSale       float64  `json:"gross_sale"`
	PrudentSale     float64  `json:"prudent_sale"`
	RenovationBase  float64  `json:"renovation_base"`
	RenovationTotal float64  `json:"renovation_total"`
	AcquisitionCost float64  `json:"acquisition_cost"`
	HoldingCost     float64  `json:"holding_cost"`
	TotalInvestment float64  `json:"total_investment"`
	SaleFee         float64  `json:"sale_fee"`
	NetProfit       float64  `json:"net_profit"`
	NetMargin       *float64 `json:"net_margin"`
	ROI             *float64 `json:"roi"`
	BreakevenSale   float64  `json:"breakeven_sale"`
}

// StressResult is one stress scenario outcome.
type StressResult struct {
	Name      string   `json:"name"`
	Label     string   `json:"label"`
	Profit    float64  `json:"profit"`
	NetMargin *float64 `json:"net_margin"`
}

// LocalitiesResponse lists the distinct localities in the reference table.
type LocalitiesResponse struct {
	Localities []string `json:"localities"`
	Count      int      `json:"count"`
}

// ReferenceResponse describes the fixed vocabulary of the evaluator.
type ReferenceResponse struct {
	Typologies      []string         `json:"typologies"`
	RenovationTiers []RenovationTier `json:"renovation_tiers"`
	DefaultRates    DefaultRates     `json:"default_rates"`
}

type RenovationTier struct {
	Name        string  `json:"name"`
	CostPerM2   float64 `json:"cost_per_m2"`
	Description string  `json:"description"`
}

type DefaultRates struct {
	Acquisition           float64 `json:"acquisition"`
	Sale                  float64 `json:"sale"`
	Holding               float64 `json:"holding"`
	RenovationContingency float64 `json:"renovation_contingency"`
	SalePrudence          float64 `json:"sale_prudence"`
	TargetNetMargin       float64 `json:"target_net_margin"`
}

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewEvaluateResponse converts an engine evaluation into the JSON shape.
func NewEvaluateResponse(ev *flip.Evaluation, alerts []analysis.Alert) EvaluateResponse {
	if alerts == nil {
		alerts = []analysis.Alert{}
	}
	return EvaluateResponse{
		PricePerM2:       ResolvedValue{Value: ev.PricePerM2.Value, Source: ev.PricePerM2.Source},
		AbsorptionMonths: ResolvedValue{Value: ev.AbsorptionMonths.Value, Source: ev.AbsorptionMonths.Source},
		Asked: ScenarioResult{
			Case:    newBusinessCase(ev.Asked),
			Verdict: string(ev.AskedVerdict),
			Stress:  newStressResults(ev.AskedStress),
		},
		Optimal: ScenarioResult{
			Case:    newBusinessCase(ev.Optimal),
			Verdict: string(ev.OptimalVerdict),
			Stress:  newStressResults(ev.OptimalStress),
		},
		OptimalPrice: ev.OptimalPrice,
		Alerts:       alerts,
	}
}

func newBusinessCase(bc model.BusinessCase) BusinessCase {
	return BusinessCase{
		PurchasePrice:   bc.PurchasePrice,
		AreaM2:          bc.AreaM2,
		PricePerM2:      bc.PricePerM2,
		GrossSale:       bc.GrossSale,
		PrudentSale:     bc.PrudentSale,
		RenovationBase:  bc.RenovationBase,
		RenovationTotal: bc.RenovationTotal,
		AcquisitionCost: bc.AcquisitionCost,
		HoldingCost:     bc.HoldingCost,
		TotalInvestment: bc.TotalInvestment,
		SaleFee:         bc.SaleFee,
		NetProfit:       bc.NetProfit,
		NetMargin:       jsonNum(bc.NetMargin),
		ROI:             jsonNum(bc.ROI),
		BreakevenSale:   bc.BreakevenSale,
	}
}

func newStressResults(scenarios []flip.StressScenario) []StressResult {
	out := make([]StressResult, len(scenarios))
	for i, s := range scenarios {
		out[i] = StressResult{
			Name:      string(s.Name),
			Label:     s.Name.Label(),
			Profit:    s.Profit,
			NetMargin: jsonNum(s.NetMargin),
		}
	}
	return out
}

// jsonNum maps NaN to nil (JSON null).
func jsonNum(x float64) *float64 {
	if math.IsNaN(x) {
		return nil
	}
	return &x
}
