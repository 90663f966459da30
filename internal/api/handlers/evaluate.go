package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/analysis"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/api/models"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/config"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/data"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/flip"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/market"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

// EvaluateHandler handles evaluation requests
type EvaluateHandler struct {
	cfg   *config.Config
	cache *data.TableCache
	log   *zap.SugaredLogger
}

// NewEvaluateHandler creates a new evaluate handler
func NewEvaluateHandler(cfg *config.Config, cache *data.TableCache, log *zap.SugaredLogger) *EvaluateHandler {
	return &EvaluateHandler{cfg: cfg, cache: cache, log: log}
}

// Evaluate handles POST /api/v1/evaluate
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	inputs, err := h.buildInputs(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUTS",
				Message: err.Error(),
			},
		})
		return
	}

	records, err := h.cache.Get(h.cfg.DataFile)
	if err != nil {
		h.log.Errorw("failed to load reference data", "path", h.cfg.DataFile, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_LOAD_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	ev, err := flip.Evaluate(market.NewTable(records), inputs)
	if err != nil {
		var notFound *market.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "LOCALITY_NOT_FOUND",
					Message: notFound.Error(),
					Details: map[string]interface{}{"locality": notFound.Locality},
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EVALUATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	alerts := analysis.Check(ev, h.cfg.ResolvedThresholds())
	c.JSON(http.StatusOK, models.NewEvaluateResponse(ev, alerts))
}

// buildInputs converts a request into scenario inputs, overlaying any rate
// overrides onto the configured defaults.
func (h *EvaluateHandler) buildInputs(req models.EvaluateRequest) (model.ScenarioInputs, error) {
	typ, err := model.ParseTypology(req.Typology)
	if err != nil {
		return model.ScenarioInputs{}, err
	}

	tier := model.RenovationMedium
	if req.RenovationTier != "" {
		tier, err = model.ParseRenovationTier(req.RenovationTier)
		if err != nil {
			return model.ScenarioInputs{}, err
		}
	}

	rates := h.cfg.ResolvedRates()
	applyRate(&rates.Acquisition, req.Rates.Acquisition)
	applyRate(&rates.Sale, req.Rates.Sale)
	applyRate(&rates.Holding, req.Rates.Holding)
	applyRate(&rates.RenovationContingency, req.Rates.RenovationContingency)
	applyRate(&rates.SalePrudence, req.Rates.SalePrudence)
	applyRate(&rates.TargetNetMargin, req.Rates.TargetNetMargin)

	inputs := model.ScenarioInputs{
		Locality:       req.Locality,
		Typology:       typ,
		AreaM2:         req.AreaM2,
		AskingPrice:    req.AskingPrice,
		RenovationTier: tier,
		Rates:          rates,
	}
	if err := inputs.Validate(); err != nil {
		return model.ScenarioInputs{}, err
	}
	return inputs, nil
}

func applyRate(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
