package flip

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

// ExportRow is one line of the long-format CSV export: every input and every
// computed figure as a (section, field, value) triple. The long format keeps
// the file diffable and trivially loadable into a spreadsheet.
type ExportRow struct {
	Section string `csv:"section"`
	Field   string `csv:"field"`
	Value   string `csv:"value"`
}

// ExportRows flattens an evaluation into CSV rows: inputs, the asked and
// optimal business cases, then the stress scenarios for both.
func ExportRows(ev *Evaluation) []ExportRow {
	in := ev.Inputs
	rows := []ExportRow{
		{"input", "locality", in.Locality},
		{"input", "typology", string(in.Typology)},
		{"input", "area_m2", fmtValue(in.AreaM2)},
		{"input", "asking_price", fmtValue(in.AskingPrice)},
		{"input", "renovation_tier", string(in.RenovationTier)},
		{"input", "acquisition_rate", fmtValue(in.Rates.Acquisition)},
		{"input", "sale_rate", fmtValue(in.Rates.Sale)},
		{"input", "holding_rate", fmtValue(in.Rates.Holding)},
		{"input", "renovation_contingency_rate", fmtValue(in.Rates.RenovationContingency)},
		{"input", "sale_prudence_rate", fmtValue(in.Rates.SalePrudence)},
		{"input", "target_net_margin", fmtValue(in.Rates.TargetNetMargin)},
		{"input", "price_per_m2", fmtValue(ev.PricePerM2.Value)},
		{"input", "price_per_m2_source", ev.PricePerM2.Source},
		{"input", "absorption_months", fmtValue(ev.AbsorptionMonths.Value)},
		{"input", "absorption_source", ev.AbsorptionMonths.Source},
	}

	rows = append(rows, caseRows("case_asked", ev.Asked, ev.AskedVerdict)...)
	rows = append(rows, ExportRow{"case_asked", "optimal_price", fmtValue(ev.OptimalPrice)})
	rows = append(rows, caseRows("case_optimal", ev.Optimal, ev.OptimalVerdict)...)

	for _, s := range ev.AskedStress {
		rows = append(rows, stressRows("stress_asked", s)...)
	}
	for _, s := range ev.OptimalStress {
		rows = append(rows, stressRows("stress_optimal", s)...)
	}
	return rows
}

// WriteEvaluationCSV writes the long-format export to path.
func WriteEvaluationCSV(path string, ev *Evaluation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	rows := ExportRows(ev)
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

func caseRows(section string, bc model.BusinessCase, verdict model.Verdict) []ExportRow {
	return []ExportRow{
		{section, "purchase_price", fmtValue(bc.PurchasePrice)},
		{section, "area_m2", fmtValue(bc.AreaM2)},
		{section, "price_per_m2", fmtValue(bc.PricePerM2)},
		{section, "gross_sale", fmtValue(bc.GrossSale)},
		{section, "prudent_sale", fmtValue(bc.PrudentSale)},
		{section, "renovation_base", fmtValue(bc.RenovationBase)},
		{section, "renovation_total", fmtValue(bc.RenovationTotal)},
		{section, "acquisition_cost", fmtValue(bc.AcquisitionCost)},
		{section, "holding_cost", fmtValue(bc.HoldingCost)},
		{section, "total_investment", fmtValue(bc.TotalInvestment)},
		{section, "sale_fee", fmtValue(bc.SaleFee)},
		{section, "net_profit", fmtValue(bc.NetProfit)},
		{section, "net_margin", fmtValue(bc.NetMargin)},
		{section, "roi", fmtValue(bc.ROI)},
		{section, "breakeven_sale", fmtValue(bc.BreakevenSale)},
		{section, "verdict", string(verdict)},
	}
}

func stressRows(section string, s StressScenario) []ExportRow {
	return []ExportRow{
		{section, string(s.Name) + ".profit", fmtValue(s.Profit)},
		{section, string(s.Name) + ".net_margin", fmtValue(s.NetMargin)},
	}
}

// fmtValue renders a float for CSV. NaN (degenerate margin/ROI) becomes an
// empty cell so spreadsheets show it as undefined rather than a number.
func fmtValue(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
