package flip

import "math"

// SolveOptimalPrice returns the maximum purchase price P that still meets the
// target net margin on the prudent sale, in closed form.
//
// Requiring netProfit >= target * prudentSale and substituting the linear
// cost model with P as the unknown:
//
//	P*(1 + a + h) <= V*(1 - s - m) - W*(1 + h)
//
// with V = prudentSale, W = renovationTotal, a/h/s the acquisition, holding
// and sale rates, m the target margin. The boundary solution is clamped to
// zero: a negative P means no purchase price achieves the margin. A
// non-positive denominator (pathological negative rates) also yields zero
// rather than dividing.
func SolveOptimalPrice(prudentSale, renovationTotal, acquisitionRate, holdingRate, saleRate, targetNetMargin float64) float64 {
	denom := 1.0 + acquisitionRate + holdingRate
	if denom <= 0 {
		return 0
	}
	rhs := prudentSale*(1.0-saleRate-targetNetMargin) - renovationTotal*(1.0+holdingRate)
	return math.Max(0, rhs/denom)
}
