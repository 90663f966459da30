package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/flip"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/market"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

func evaluate(t *testing.T, askingPrice, pricePerM2, absorption float64) *flip.Evaluation {
	t.Helper()
	table := market.NewTable([]model.MarketRecord{{
		Locality:         "Lisboa",
		PricePerM2:       model.Bands{Overall: model.Float(pricePerM2)},
		AbsorptionMonths: model.Bands{Overall: model.Float(absorption)},
	}})
	ev, err := flip.Evaluate(table, model.ScenarioInputs{
		Locality:       "Lisboa",
		Typology:       model.TypologyT2,
		AreaM2:         60,
		AskingPrice:    askingPrice,
		RenovationTier: model.RenovationMedium,
		Rates:          model.DefaultRates(),
	})
	require.NoError(t, err)
	return ev
}

func hasAlert(alerts []Alert, code AlertCode) bool {
	for _, a := range alerts {
		if a.Code == code {
			return true
		}
	}
	return false
}

func TestCheck(t *testing.T) {
	t.Run("overpriced asking price trips the margin alert", func(t *testing.T) {
		ev := evaluate(t, 300_000, 2000, 4)
		alerts := Check(ev, DefaultThresholds())
		require.True(t, hasAlert(alerts, AlertMarginBelowTarget))
	})

	t.Run("a healthy deal under all thresholds is quiet", func(t *testing.T) {
		// Buy well below the optimal price in a fast market.
		ev := evaluate(t, 150_000, 6000, 3)
		alerts := Check(ev, DefaultThresholds())
		require.Empty(t, alerts)
	})

	t.Run("renovation-heavy deal trips the share alert", func(t *testing.T) {
		// Cheap purchase, expensive renovation: renovation dominates.
		ev := evaluate(t, 150_000, 6000, 3)
		th := DefaultThresholds()
		th.RenovationShareMax = 0.10
		alerts := Check(ev, th)
		require.True(t, hasAlert(alerts, AlertRenovationShareHigh))
	})

	t.Run("slow market trips the absorption alert", func(t *testing.T) {
		ev := evaluate(t, 150_000, 6000, 14)
		alerts := Check(ev, DefaultThresholds())
		require.True(t, hasAlert(alerts, AlertSlowAbsorption))
		require.False(t, hasAlert(alerts, AlertMarginBelowTarget))
	})

	t.Run("degenerate NaN margin counts as below target", func(t *testing.T) {
		ev := evaluate(t, 100_000, 0, 4)
		alerts := Check(ev, DefaultThresholds())
		require.True(t, hasAlert(alerts, AlertMarginBelowTarget))
	})
}
