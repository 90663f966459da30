package model

import "errors"

// Rates bundles the percentage parameters of an evaluation. All values are
// fractions (0.08 = 8%). SalePrudence is typically negative (a haircut on the
// estimated sale price); the rest are typically positive.
type Rates struct {
	Acquisition           float64 // IMT + stamp duty + fees, on purchase price
	Sale                  float64 // agency fee + VAT, on prudent sale
	Holding               float64 // financing/carrying, on purchase + renovation
	RenovationContingency float64 // uplift on the renovation base cost
	SalePrudence          float64 // haircut on the gross sale estimate
	TargetNetMargin       float64 // required net margin on prudent sale
}

// DefaultRates are the conservative defaults used when a caller does not
// override a parameter.
func DefaultRates() Rates {
	return Rates{
		Acquisition:           0.08,
		Sale:                  0.0615,
		Holding:               0.015,
		RenovationContingency: 0.10,
		SalePrudence:          -0.05,
		TargetNetMargin:       0.10,
	}
}

// ScenarioInputs is one caller-supplied evaluation request. Immutable for the
// duration of a run.
type ScenarioInputs struct {
	Locality       string
	Typology       Typology
	AreaM2         float64
	AskingPrice    float64 // €
	RenovationTier RenovationTier
	Rates          Rates
}

// Validate checks the caller-facing input contract. The valuation engine
// itself is total over any positive values; these bounds guard the outer
// surface, mirroring the form limits of the reference tool.
func (in ScenarioInputs) Validate() error {
	if in.Locality == "" {
		return errors.New("locality is required")
	}
	if in.AreaM2 < 10 || in.AreaM2 > 500 {
		return errors.New("area_m2 must be within [10, 500]")
	}
	if in.AskingPrice <= 0 {
		return errors.New("asking_price must be > 0")
	}
	return nil
}
