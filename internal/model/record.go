package model

// Bands holds one value per reference bucket. Fields are nil when the source
// row has no usable figure for that bucket; the resolver decides fallbacks.
type Bands struct {
	Overall *float64
	T1      *float64
	T2      *float64
	T3      *float64
	House   *float64
}

// MarketRecord is one row of the reference dataset: effective per-m² sale
// prices and market-absorption months for a locality (concelho).
//
// Invariant maintained by the loader: PricePerM2.Overall is always non-nil
// for a retained record. Every other band may be absent.
type MarketRecord struct {
	Locality string
	Region   string

	// Prices in €/m², from effective sales (not listings).
	PricePerM2 Bands
	// Expected time-on-market in months.
	AbsorptionMonths Bands
}

// Float is a convenience for building optional band values in tests and
// fixtures.
func Float(v float64) *float64 { return &v }
