package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

// The reference dataset has no reliable header row; columns are located purely
// by position. Layout (0-based) of the 23-column table:
//
//	0  region
//	1  locality (concelho)
//	2  (unused)
//	3..7  dwelling counts per bucket (unused)
//	8  overall €/m²
//	9..12 T1, T2, T3, house €/m²
//	13 € per dwelling (unused)
//	14..17 (unused)
//	18..22 overall, T1, T2, T3, house absorption months
const (
	colRegion   = 0
	colLocality = 1

	colPriceOverall = 8
	colPriceT1      = 9
	colPriceT2      = 10
	colPriceT3      = 11
	colPriceHouse   = 12

	colAbsorptionOverall = 18
	colAbsorptionT1      = 19
	colAbsorptionT2      = 20
	colAbsorptionT3      = 21
	colAbsorptionHouse   = 22

	minColumns = 23
)

// FormatError reports a source table whose structure does not match the fixed
// positional layout. It is fatal to the load: no partial result is returned.
type FormatError struct {
	Path    string
	Columns int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected table structure in %s: got %d columns, need at least %d", e.Path, e.Columns, minColumns)
}

// Load reads the reference dataset at path into market records.
//
// Row rules, in order: rows with an empty locality are dropped; rows whose
// overall €/m² does not coerce to a number are dropped (this also discards
// banner and header rows); every other numeric column coerces permissively,
// with failures recorded as absent rather than dropping the row.
//
// Load never memoizes; callers that want one table per distinct path should
// go through TableCache.
func Load(path string) ([]model.MarketRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // width is validated explicitly below
	r.Comma = sniffSeparator(f)
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(rows) == 0 || maxWidth(rows) < minColumns {
		return nil, &FormatError{Path: path, Columns: maxWidth(rows)}
	}

	records := make([]model.MarketRecord, 0, len(rows))
	for _, row := range rows {
		if len(row) < minColumns {
			continue
		}
		locality := strings.TrimSpace(row[colLocality])
		if locality == "" {
			continue
		}
		overall := parseNumber(row[colPriceOverall])
		if overall == nil {
			continue
		}

		records = append(records, model.MarketRecord{
			Locality: locality,
			Region:   strings.TrimSpace(row[colRegion]),
			PricePerM2: model.Bands{
				Overall: overall,
				T1:      parseNumber(row[colPriceT1]),
				T2:      parseNumber(row[colPriceT2]),
				T3:      parseNumber(row[colPriceT3]),
				House:   parseNumber(row[colPriceHouse]),
			},
			AbsorptionMonths: model.Bands{
				Overall: parseNumber(row[colAbsorptionOverall]),
				T1:      parseNumber(row[colAbsorptionT1]),
				T2:      parseNumber(row[colAbsorptionT2]),
				T3:      parseNumber(row[colAbsorptionT3]),
				House:   parseNumber(row[colAbsorptionHouse]),
			},
		})
	}

	return records, nil
}

// parseNumber coerces a cell permissively: surrounding whitespace, currency
// suffixes and comma decimal separators are tolerated. Returns nil on failure.
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "€")
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil
	}
	// Portuguese exports use "1.234,5"; plain exports use "1234.5".
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// sniffSeparator picks ';' when the first line contains more semicolons than
// commas (the usual shape of a Portuguese spreadsheet export), ',' otherwise.
func sniffSeparator(f *os.File) rune {
	buf := make([]byte, 4096)
	n, _ := f.Read(buf)
	_, _ = f.Seek(0, 0)
	line, _, _ := strings.Cut(string(buf[:n]), "\n")
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

func maxWidth(rows [][]string) int {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}
