// Package analysis derives advisory signals from a computed evaluation.
// Alerts never affect the numbers; they are display-level warnings for the
// caller.
package analysis

import "github.com/pmgoulart-lgtm/flip-house-evaluator/internal/flip"

type AlertCode string

const (
	AlertMarginBelowTarget   AlertCode = "MARGIN_BELOW_TARGET"
	AlertRenovationShareHigh AlertCode = "RENOVATION_SHARE_HIGH"
	AlertSlowAbsorption      AlertCode = "SLOW_ABSORPTION"
)

type Alert struct {
	Code    AlertCode `json:"code"`
	Message string    `json:"message"`
}

// Thresholds configure the alert rules.
type Thresholds struct {
	// RenovationShareMax is the maximum acceptable renovation share of the
	// total investment (cost-overrun risk).
	RenovationShareMax float64
	// AbsorptionMonthsMax is the maximum acceptable months-to-sell
	// (liquidity / holding risk).
	AbsorptionMonthsMax float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		RenovationShareMax:  0.35,
		AbsorptionMonthsMax: 8,
	}
}

// Check runs the alert rules over the asked-price scenario of an evaluation.
// A NaN margin fails the margin rule (NaN comparisons are false, so the
// explicit ordering below matters).
func Check(ev *flip.Evaluation, th Thresholds) []Alert {
	var alerts []Alert

	if !(ev.Asked.NetMargin >= ev.Inputs.Rates.TargetNetMargin) {
		alerts = append(alerts, Alert{
			Code:    AlertMarginBelowTarget,
			Message: "net margin is below the target margin at the asking price",
		})
	}

	// Investment floored at 1.0 so a degenerate zero-investment case cannot
	// blow up the ratio.
	investment := ev.Asked.TotalInvestment
	if investment < 1.0 {
		investment = 1.0
	}
	if ev.Asked.RenovationTotal/investment > th.RenovationShareMax {
		alerts = append(alerts, Alert{
			Code:    AlertRenovationShareHigh,
			Message: "renovation is a large share of the total investment (overrun risk)",
		})
	}

	if ev.AbsorptionMonths.Value > th.AbsorptionMonthsMax {
		alerts = append(alerts, Alert{
			Code:    AlertSlowAbsorption,
			Message: "expected time-on-market is high (liquidity and holding risk)",
		})
	}

	return alerts
}
