package model

// BusinessCase is the full cost/revenue waterfall for one purchase price.
// All monetary fields are €. It is a pure derived record: recomputing with
// identical inputs yields a bit-identical value.
//
// NetMargin and ROI are NaN when their denominators are zero; callers should
// render NaN as "undefined", not treat it as an error.
type BusinessCase struct {
	PurchasePrice float64
	AreaM2        float64
	PricePerM2    float64

	GrossSale   float64
	PrudentSale float64

	RenovationBase  float64
	RenovationTotal float64

	AcquisitionCost float64
	HoldingCost     float64
	TotalInvestment float64
	SaleFee         float64

	NetProfit     float64
	NetMargin     float64
	ROI           float64
	BreakevenSale float64
}

// Verdict is the executive read of a business case.
// Keep these values stable; they are used in API payloads and CSV output.
type Verdict string

const (
	VerdictAttractive     Verdict = "ATTRACTIVE"
	VerdictMarginal       Verdict = "MARGINAL"
	VerdictNotRecommended Verdict = "NOT_RECOMMENDED"
)

// VerdictFromMargin grades a net margin against the target. A NaN margin
// (degenerate case) is never recommendable.
func VerdictFromMargin(netMargin, target float64) Verdict {
	switch {
	case netMargin >= target:
		return VerdictAttractive
	case netMargin >= 0:
		return VerdictMarginal
	default:
		return VerdictNotRecommended
	}
}
