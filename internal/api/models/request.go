package models

// EvaluateRequest represents the request body for running an evaluation
type EvaluateRequest struct {
	Locality       string  `json:"locality" binding:"required"`
	Typology       string  `json:"typology" binding:"required"`
	AreaM2         float64 `json:"area_m2" binding:"required"`
	AskingPrice    float64 `json:"asking_price" binding:"required"`
	RenovationTier string  `json:"renovation_tier,omitempty"` // default: medium

	// Optional rate overrides. Pointers so a zero or negative override
	// (sale prudence is normally negative) is distinguishable from "use the
	// configured default".
	Rates RateOverrides `json:"rates,omitempty"`
}

// RateOverrides mirrors the configurable rate parameters.
type RateOverrides struct {
	Acquisition           *float64 `json:"acquisition,omitempty"`
	Sale                  *float64 `json:"sale,omitempty"`
	Holding               *float64 `json:"holding,omitempty"`
	RenovationContingency *float64 `json:"renovation_contingency,omitempty"`
	SalePrudence          *float64 `json:"sale_prudence,omitempty"`
	TargetNetMargin       *float64 `json:"target_net_margin,omitempty"`
}
