package flip

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportRows(t *testing.T) {
	ev, err := Evaluate(evaluationTable(), evaluationInputs())
	require.NoError(t, err)

	rows := ExportRows(ev)

	t.Run("sections appear in display order", func(t *testing.T) {
		var order []string
		for _, r := range rows {
			if len(order) == 0 || order[len(order)-1] != r.Section {
				order = append(order, r.Section)
			}
		}
		require.Equal(t, []string{"input", "case_asked", "case_optimal", "stress_asked", "stress_optimal"}, order)
	})

	t.Run("stress rows keep scenario order", func(t *testing.T) {
		var fields []string
		for _, r := range rows {
			if r.Section == "stress_asked" && strings.HasSuffix(r.Field, ".profit") {
				fields = append(fields, r.Field)
			}
		}
		require.Equal(t, []string{
			"BASE.profit",
			"SALE_PRICE_DOWN_5.profit",
			"RENOVATION_UP_10.profit",
			"DELAY_PLUS_3_MONTHS.profit",
		}, fields)
	})

	t.Run("NaN renders as an empty cell", func(t *testing.T) {
		require.Equal(t, "", fmtValue(math.NaN()))
	})
}

func TestWriteEvaluationCSV(t *testing.T) {
	ev, err := Evaluate(evaluationTable(), evaluationInputs())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "case.csv")
	require.NoError(t, WriteEvaluationCSV(path, ev))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)

	require.True(t, strings.HasPrefix(content, "section,field,value\n"))
	require.Contains(t, content, "input,locality,Lisboa")
	require.Contains(t, content, "case_optimal,verdict,ATTRACTIVE")

	// Numeric cells round-trip: find the asked net profit and parse it back.
	var found bool
	for _, r := range ExportRows(ev) {
		if r.Section == "case_asked" && r.Field == "net_profit" {
			v, perr := strconv.ParseFloat(r.Value, 64)
			require.NoError(t, perr)
			require.InDelta(t, ev.Asked.NetProfit, v, 1e-9)
			found = true
		}
	}
	require.True(t, found)
}
