package market

import "github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"

// Source labels returned with every resolved value so callers can show where
// a figure came from. Keep these strings stable; they appear in API payloads
// and CSV output.
const (
	SourceT1Proxy     = "T1 (or smaller) proxy"
	SourceT1          = "T1"
	SourceT2          = "T2"
	SourceT3          = "T3"
	SourceT3ProxyT4   = "T3 proxy for T4+"
	SourceFallback    = "Overall (fallback)"
	SourceDefaultNone = "Default (no data)"
)

// DefaultAbsorptionMonths is the conservative estimate used when a locality
// has no absorption data at all. Deliberately not an error.
const DefaultAbsorptionMonths = 6.0

// The reference data is sparse, so smaller/larger typologies reuse adjacent
// buckets: T0 borrows the T1 column, T4+ borrows T3.
type bandPick struct {
	band  func(model.Bands) *float64
	label string
}

var typologyBand = map[model.Typology]bandPick{
	model.TypologyT0:     {func(b model.Bands) *float64 { return b.T1 }, SourceT1Proxy},
	model.TypologyT1:     {func(b model.Bands) *float64 { return b.T1 }, SourceT1},
	model.TypologyT2:     {func(b model.Bands) *float64 { return b.T2 }, SourceT2},
	model.TypologyT3:     {func(b model.Bands) *float64 { return b.T3 }, SourceT3},
	model.TypologyT4Plus: {func(b model.Bands) *float64 { return b.T3 }, SourceT3ProxyT4},
}

// ResolveSalePrice returns the expected €/m² sale price for a locality and
// typology, together with a label naming the bucket that produced it. When
// the targeted bucket is absent the locality's overall price is used; the
// overall price is always present on a loaded record.
func (t *Table) ResolveSalePrice(locality string, typ model.Typology) (float64, string, error) {
	rec, err := t.Lookup(locality)
	if err != nil {
		return 0, "", err
	}
	if pick, ok := typologyBand[typ]; ok {
		if v := pick.band(rec.PricePerM2); v != nil {
			return *v, pick.label, nil
		}
	}
	return *rec.PricePerM2.Overall, SourceFallback, nil
}

// ResolveAbsorption returns the expected months-to-sell for a locality and
// typology. Fallback chain: typology bucket → overall → fixed default of
// DefaultAbsorptionMonths. The default is a conservative estimate for
// localities with no absorption data, not a failure.
func (t *Table) ResolveAbsorption(locality string, typ model.Typology) (float64, string, error) {
	rec, err := t.Lookup(locality)
	if err != nil {
		return 0, "", err
	}
	if pick, ok := typologyBand[typ]; ok {
		if v := pick.band(rec.AbsorptionMonths); v != nil {
			return *v, pick.label, nil
		}
	}
	if v := rec.AbsorptionMonths.Overall; v != nil {
		return *v, SourceFallback, nil
	}
	return DefaultAbsorptionMonths, SourceDefaultNone, nil
}
