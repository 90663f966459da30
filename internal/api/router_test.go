package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/api/models"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/config"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/data"
)

// testRouter serves a two-row reference dataset written to a temp file.
func testRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	row := make([]string, 23)
	row[0], row[1], row[8], row[10], row[18] = "AML", "Lisboa", "3900", "2000", "5"
	lisboa := strings.Join(row, ";")

	row = make([]string, 23)
	row[0], row[1], row[8] = "Alentejo", "Beja", "1100"
	beja := strings.Join(row, ";")

	path := filepath.Join(t.TempDir(), "market.csv")
	require.NoError(t, os.WriteFile(path, []byte(lisboa+"\n"+beja), 0o644))

	cfg := &config.Config{DataFile: path}
	return NewRouter(cfg, data.NewTableCache(), zap.NewNop().Sugar())
}

func TestEvaluateEndpoint(t *testing.T) {
	router := testRouter(t)

	post := func(t *testing.T, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("evaluates a valid request", func(t *testing.T) {
		w := post(t, `{
			"locality": "lisboa",
			"typology": "T2",
			"area_m2": 60,
			"asking_price": 200000
		}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.EvaluateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		require.Equal(t, 2000.0, resp.PricePerM2.Value)
		require.Equal(t, "T2", resp.PricePerM2.Source)
		require.Equal(t, "NOT_RECOMMENDED", resp.Asked.Verdict)
		require.Equal(t, "ATTRACTIVE", resp.Optimal.Verdict)
		require.Greater(t, resp.OptimalPrice, 0.0)
		require.Len(t, resp.Asked.Stress, 4)
		require.Equal(t, "BASE", resp.Asked.Stress[0].Name)
		require.NotEmpty(t, resp.Alerts) // margin below target at 200k
	})

	t.Run("degenerate margins serialize as null", func(t *testing.T) {
		// Sale prudence of -100% zeroes the prudent sale.
		w := post(t, `{
			"locality": "Lisboa",
			"typology": "T2",
			"area_m2": 60,
			"asking_price": 200000,
			"rates": {"sale_prudence": -1.0}
		}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.EvaluateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Nil(t, resp.Asked.Case.NetMargin)
	})

	t.Run("unknown locality is 404 with the typed code", func(t *testing.T) {
		w := post(t, `{
			"locality": "Atlantis",
			"typology": "T1",
			"area_m2": 60,
			"asking_price": 100000
		}`)
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "LOCALITY_NOT_FOUND", resp.Error.Code)
	})

	t.Run("bad typology is 400", func(t *testing.T) {
		w := post(t, `{
			"locality": "Lisboa",
			"typology": "T9",
			"area_m2": 60,
			"asking_price": 100000
		}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "INVALID_INPUTS", resp.Error.Code)
	})

	t.Run("missing required fields is 400", func(t *testing.T) {
		w := post(t, `{"locality": "Lisboa"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "INVALID_REQUEST", resp.Error.Code)
	})
}

func TestLocalitiesEndpoint(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/localities", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LocalitiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, []string{"Beja", "Lisboa"}, resp.Localities)
	require.Equal(t, 2, resp.Count)
}

func TestReferenceEndpoint(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reference", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ReferenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, []string{"T0", "T1", "T2", "T3", "T4+"}, resp.Typologies)
	require.Len(t, resp.RenovationTiers, 3)
	require.Equal(t, 600.0, resp.RenovationTiers[1].CostPerM2)
	require.Equal(t, 0.0615, resp.DefaultRates.Sale)
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
