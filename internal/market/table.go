// Package market resolves per-m² sale prices and absorption estimates from
// the loaded reference dataset, applying the typology proxy and fallback
// rules of the valuation model.
package market

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

// NotFoundError reports a locality with no case-insensitive match in the
// reference table. It is fatal to the resolve call only; the table stays
// usable for other requests.
type NotFoundError struct {
	Locality string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("locality %q not found in reference data", e.Locality)
}

// Table is a read-only view over the loaded records. Lookups are
// case-insensitive; when the dataset carries duplicate localities the first
// row in file order wins, matching the reference tool.
type Table struct {
	records []model.MarketRecord
}

func NewTable(records []model.MarketRecord) *Table {
	return &Table{records: records}
}

// Lookup returns the first record matching locality case-insensitively.
func (t *Table) Lookup(locality string) (model.MarketRecord, error) {
	for _, rec := range t.records {
		if strings.EqualFold(rec.Locality, locality) {
			return rec, nil
		}
	}
	return model.MarketRecord{}, &NotFoundError{Locality: locality}
}

// Localities returns the distinct locality names, sorted.
func (t *Table) Localities() []string {
	seen := make(map[string]bool, len(t.records))
	out := make([]string, 0, len(t.records))
	for _, rec := range t.records {
		if !seen[rec.Locality] {
			seen[rec.Locality] = true
			out = append(out, rec.Locality)
		}
	}
	sort.Strings(out)
	return out
}

// Len reports the number of retained rows.
func (t *Table) Len() int { return len(t.records) }
