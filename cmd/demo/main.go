package main

import (
	"flag"
	"fmt"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/flip"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/market"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

// Demo:
// - Build a small in-memory reference table (no dataset file needed)
// - Evaluate a canonical scenario (T2, 60 m², asking 200k in Lisboa)
// - Print the asked vs optimal case to show how the pieces fit together
func main() {
	price := flag.Float64("price", 200_000, "Asking price in €")
	area := flag.Float64("area", 60, "Area in m²")
	flag.Parse()

	table := market.NewTable([]model.MarketRecord{
		{
			Locality: "Lisboa",
			Region:   "AML",
			PricePerM2: model.Bands{
				Overall: model.Float(3900),
				T1:      model.Float(4200),
				T2:      model.Float(4000),
				T3:      model.Float(3700),
			},
			AbsorptionMonths: model.Bands{
				Overall: model.Float(5),
				T2:      model.Float(4),
			},
		},
		{
			Locality:   "Setúbal",
			Region:     "AML",
			PricePerM2: model.Bands{Overall: model.Float(1900)},
		},
	})

	inputs := model.ScenarioInputs{
		Locality:       "Lisboa",
		Typology:       model.TypologyT2,
		AreaM2:         *area,
		AskingPrice:    *price,
		RenovationTier: model.RenovationMedium,
		Rates:          model.DefaultRates(),
	}

	ev, err := flip.Evaluate(table, inputs)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Sale estimate: %.0f €/m² (%s), absorption %.0f months (%s)\n",
		ev.PricePerM2.Value, ev.PricePerM2.Source,
		ev.AbsorptionMonths.Value, ev.AbsorptionMonths.Source)
	fmt.Printf("Asked %.0f €:   profit %.0f €, margin %.1f%%  → %s\n",
		ev.Asked.PurchasePrice, ev.Asked.NetProfit, ev.Asked.NetMargin*100, ev.AskedVerdict)
	fmt.Printf("Optimal %.0f €: profit %.0f €, margin %.1f%%  → %s\n",
		ev.OptimalPrice, ev.Optimal.NetProfit, ev.Optimal.NetMargin*100, ev.OptimalVerdict)

	fmt.Println("\nStress (asked):")
	for _, s := range ev.AskedStress {
		fmt.Printf("  %-16s profit %10.0f €  margin %6.1f%%\n", s.Name.Label(), s.Profit, s.NetMargin*100)
	}
}
