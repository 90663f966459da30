package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/analysis"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/config"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/data"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/flip"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/market"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "evaluate":
		cmdEvaluate(os.Args[2:])
	case "localities":
		cmdLocalities(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli evaluate --data market.csv --locality Lisboa --typology T2 --area 60 --price 200000 --out results/case.csv")
	fmt.Println("  cli localities --data market.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - evaluate prints the asked vs optimal business case and the stress table")
	fmt.Println("  - rates come from --config (YAML) when given, built-in defaults otherwise")
}

func cmdEvaluate(args []string) {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to the reference dataset CSV")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	locality := fs.String("locality", "", "Locality (concelho), e.g. Lisboa")
	typology := fs.String("typology", "T2", "Typology: T0, T1, T2, T3, T4+")
	area := fs.Float64("area", 60, "Area in m²")
	price := fs.Float64("price", 0, "Asking price in €")
	renovation := fs.String("renovation", "medium", "Renovation tier: low, medium, high")
	outPath := fs.String("out", "", "Optional path to write the evaluation CSV")
	_ = fs.Parse(args)

	cfg := resolveConfig(*cfgPath, *dataPath)
	if cfg.DataFile == "" {
		fmt.Fprintln(os.Stderr, "either --data or a config with data_file is required")
		os.Exit(2)
	}
	if *locality == "" || *price <= 0 {
		fmt.Fprintln(os.Stderr, "--locality and a positive --price are required")
		os.Exit(2)
	}

	typ, err := model.ParseTypology(*typology)
	if err != nil {
		fatal(err)
	}
	tier, err := model.ParseRenovationTier(*renovation)
	if err != nil {
		fatal(err)
	}

	inputs := model.ScenarioInputs{
		Locality:       *locality,
		Typology:       typ,
		AreaM2:         *area,
		AskingPrice:    *price,
		RenovationTier: tier,
		Rates:          cfg.ResolvedRates(),
	}
	if err := inputs.Validate(); err != nil {
		fatal(err)
	}

	records, err := data.Load(cfg.DataFile)
	if err != nil {
		fatal(err)
	}

	ev, err := flip.Evaluate(market.NewTable(records), inputs)
	if err != nil {
		fatal(err)
	}

	printEvaluation(ev, cfg)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := flip.WriteEvaluationCSV(*outPath, ev); err != nil {
			fatal(err)
		}
		fmt.Printf("\nWrote evaluation to %s\n", *outPath)
	}
}

func cmdLocalities(args []string) {
	fs := flag.NewFlagSet("localities", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to the reference dataset CSV")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	cfg := resolveConfig(*cfgPath, *dataPath)
	if cfg.DataFile == "" {
		fmt.Fprintln(os.Stderr, "either --data or a config with data_file is required")
		os.Exit(2)
	}

	records, err := data.Load(cfg.DataFile)
	if err != nil {
		fatal(err)
	}

	for _, l := range market.NewTable(records).Localities() {
		fmt.Println(l)
	}
}

// resolveConfig loads the YAML config when given; --data overrides its
// data_file either way.
func resolveConfig(cfgPath, dataPath string) *config.Config {
	cfg := &config.Config{}
	if cfgPath != "" {
		loaded, err := config.LoadUnchecked(cfgPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}
	if dataPath != "" {
		cfg.DataFile = dataPath
	}
	return cfg
}

func printEvaluation(ev *flip.Evaluation, cfg *config.Config) {
	fmt.Printf("Locality: %s  Typology: %s  Area: %.0f m²\n", ev.Inputs.Locality, ev.Inputs.Typology, ev.Inputs.AreaM2)
	fmt.Printf("Sale estimate: %.0f €/m² (%s)  Absorption: %.1f months (%s)\n\n",
		ev.PricePerM2.Value, ev.PricePerM2.Source,
		ev.AbsorptionMonths.Value, ev.AbsorptionMonths.Source)

	fmt.Printf("%-28s %14s %14s\n", "metric", "asked", "optimal")
	row := func(name string, a, b float64) {
		fmt.Printf("%-28s %14s %14s\n", name, fmtMoney(a), fmtMoney(b))
	}
	row("purchase price (€)", ev.Asked.PurchasePrice, ev.Optimal.PurchasePrice)
	row("acquisition cost (€)", ev.Asked.AcquisitionCost, ev.Optimal.AcquisitionCost)
	row("renovation total (€)", ev.Asked.RenovationTotal, ev.Optimal.RenovationTotal)
	row("holding cost (€)", ev.Asked.HoldingCost, ev.Optimal.HoldingCost)
	row("total investment (€)", ev.Asked.TotalInvestment, ev.Optimal.TotalInvestment)
	row("prudent sale (€)", ev.Asked.PrudentSale, ev.Optimal.PrudentSale)
	row("sale fee (€)", ev.Asked.SaleFee, ev.Optimal.SaleFee)
	row("net profit (€)", ev.Asked.NetProfit, ev.Optimal.NetProfit)
	fmt.Printf("%-28s %13s%% %13s%%\n", "net margin", fmtPct(ev.Asked.NetMargin), fmtPct(ev.Optimal.NetMargin))
	fmt.Printf("%-28s %13s%% %13s%%\n", "roi", fmtPct(ev.Asked.ROI), fmtPct(ev.Optimal.ROI))
	row("break-even sale (€)", ev.Asked.BreakevenSale, ev.Optimal.BreakevenSale)

	fmt.Printf("\nVerdict (asked):   %s\n", ev.AskedVerdict)
	fmt.Printf("Verdict (optimal): %s\n", ev.OptimalVerdict)

	fmt.Printf("\n%-18s %14s %10s %14s %10s\n", "stress", "asked €", "asked %", "optimal €", "optimal %")
	for i := range ev.AskedStress {
		a := ev.AskedStress[i]
		o := ev.OptimalStress[i]
		fmt.Printf("%-18s %14s %9s%% %14s %9s%%\n",
			a.Name.Label(), fmtMoney(a.Profit), fmtPct(a.NetMargin), fmtMoney(o.Profit), fmtPct(o.NetMargin))
	}

	alerts := analysis.Check(ev, cfg.ResolvedThresholds())
	if len(alerts) == 0 {
		fmt.Println("\nNo alerts.")
		return
	}
	fmt.Println("\nAlerts:")
	for _, a := range alerts {
		fmt.Printf("  [%s] %s\n", a.Code, a.Message)
	}
}

func fmtMoney(x float64) string {
	if math.IsNaN(x) {
		return "n/a"
	}
	return fmt.Sprintf("%.0f", x)
}

func fmtPct(x float64) string {
	if math.IsNaN(x) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", x*100)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
