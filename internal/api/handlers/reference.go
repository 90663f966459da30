package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/api/models"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/config"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/data"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/market"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

// ReferenceHandler serves the evaluator's fixed vocabulary and the localities
// of the loaded dataset.
type ReferenceHandler struct {
	cfg   *config.Config
	cache *data.TableCache
	log   *zap.SugaredLogger
}

func NewReferenceHandler(cfg *config.Config, cache *data.TableCache, log *zap.SugaredLogger) *ReferenceHandler {
	return &ReferenceHandler{cfg: cfg, cache: cache, log: log}
}

// ListLocalities handles GET /api/v1/localities
func (h *ReferenceHandler) ListLocalities(c *gin.Context) {
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

	localities := market.NewTable(records).Localities()
	c.JSON(http.StatusOK, models.LocalitiesResponse{
		Localities: localities,
		Count:      len(localities),
	})
}

// GetReference handles GET /api/v1/reference
func (h *ReferenceHandler) GetReference(c *gin.Context) {
	tiers := make([]models.RenovationTier, 0, 3)
	descriptions := map[model.RenovationTier]string{
		model.RenovationLow:    "Cosmetic refresh: paint, minor fixes.",
		model.RenovationMedium: "Standard renovation: kitchen, bathroom, flooring.",
		model.RenovationHigh:   "Deep renovation: layout changes, full systems replacement.",
	}
	for _, t := range model.RenovationTiers() {
		tiers = append(tiers, models.RenovationTier{
			Name:        string(t),
			CostPerM2:   model.RenovationCostPerM2(t),
			Description: descriptions[t],
		})
	}

	typologies := make([]string, 0, 5)
	for _, t := range model.Typologies() {
		typologies = append(typologies, string(t))
	}

	r := h.cfg.ResolvedRates()
	c.JSON(http.StatusOK, models.ReferenceResponse{
		Typologies:      typologies,
		RenovationTiers: tiers,
		DefaultRates: models.DefaultRates{
			Acquisition:           r.Acquisition,
			Sale:                  r.Sale,
			Holding:               r.Holding,
			RenovationContingency: r.RenovationContingency,
			SalePrudence:          r.SalePrudence,
			TargetNetMargin:       r.TargetNetMargin,
		},
	})
}
