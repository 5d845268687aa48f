package handlers

import (
	"errors"
	"net/http"
	"time"

	"vedic-chart/internal/api/models"
	"vedic-chart/internal/chart"
	"vedic-chart/internal/config"
	"vedic-chart/internal/data"
	"vedic-chart/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// batchLimit bounds concurrent builds for one batch request.
const batchLimit = 8

// ChartHandler handles chart requests
type ChartHandler struct {
	engine    *chart.Engine
	engineCfg config.EngineConfig
	cache     *data.ChartCache
	places    *data.PlaceList
	logger    *zap.Logger
	now       func() time.Time
}

// NewChartHandler creates a chart handler. cache and places may be nil.
func NewChartHandler(cfg config.EngineConfig, cache *data.ChartCache, places *data.PlaceList, logger *zap.Logger) *ChartHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChartHandler{
		engine:    chart.New(chart.WithOptions(cfg.ToOptions()), chart.WithLogger(logger)),
		engineCfg: cfg,
		cache:     cache,
		places:    places,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateChart handles POST /api/v1/charts
func (h *ChartHandler) CreateChart(c *gin.Context) {
	var req models.ChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	in, err := h.birthInput(req.Birth)
	if err != nil {
		writeError(c, err)
		return
	}

	engine, err := h.engineFor(req.Options)
	if err != nil {
		writeError(c, err)
		return
	}

	key := data.GenerateCacheKey(in, engine.Options())
	ch, cached := h.cache.Get(key)
	if !cached {
		ch, err = engine.Build(in)
		if err != nil {
			h.logger.Info("chart rejected", zap.String("name", in.Name), zap.Error(err))
			writeError(c, err)
			return
		}
		h.cache.Set(key, ch)
	}

	c.JSON(http.StatusOK, models.ChartResponse{
		ID:     key,
		Cached: cached,
		Chart:  buildChartView(ch, h.asOf(req.AsOf), req.IncludeAntardasha),
	})
}

// CreateBatch handles POST /api/v1/charts/batch
func (h *ChartHandler) CreateBatch(c *gin.Context) {
	var req models.BatchChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	inputs := make([]model.BirthInput, 0, len(req.Births))
	for _, b := range req.Births {
		in, err := h.birthInput(b)
		if err != nil {
			writeError(c, err)
			return
		}
		inputs = append(inputs, in)
	}

	engine, err := h.engineFor(req.Options)
	if err != nil {
		writeError(c, err)
		return
	}

	charts, err := engine.BuildAll(c.Request.Context(), inputs, batchLimit)
	if err != nil {
		writeError(c, err)
		return
	}

	asOf := h.asOf(req.AsOf)
	resp := models.BatchChartResponse{Charts: make([]models.ChartResponse, 0, len(charts))}
	for i, ch := range charts {
		key := data.GenerateCacheKey(inputs[i], engine.Options())
		h.cache.Set(key, ch)
		resp.Charts = append(resp.Charts, models.ChartResponse{
			ID:    key,
			Chart: buildChartView(ch, asOf, req.IncludeAntardasha),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetChart handles GET /api/v1/charts/:id
func (h *ChartHandler) GetChart(c *gin.Context) {
	id := c.Param("id")
	ch, ok := h.cache.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "chart not found or expired; build it again with POST /api/v1/charts",
			},
		})
		return
	}

	var asOf *time.Time
	if raw := c.Query("as_of"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(c, &model.InputError{Field: "as_of", Reason: "expected RFC3339"})
			return
		}
		asOf = &t
	}

	c.JSON(http.StatusOK, models.ChartResponse{
		ID:     id,
		Cached: true,
		Chart:  buildChartView(ch, h.asOf(asOf), c.Query("include_antardasha") == "true"),
	})
}

func (h *ChartHandler) asOf(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return h.now().UTC()
}

// birthInput converts the request form. Missing coordinates are an input
// error; there is no default location.
func (h *ChartHandler) birthInput(b models.BirthRequest) (model.BirthInput, error) {
	in := model.BirthInput{
		Name:      b.Name,
		Date:      b.Date,
		Time:      b.Time,
		UTCOffset: b.UTCOffset,
		TimeZone:  b.TimeZone,
	}
	if b.PlaceID != "" {
		p, ok := h.places.Find(b.PlaceID)
		if !ok {
			return in, &model.InputError{Field: "place_id", Reason: "unknown place " + b.PlaceID}
		}
		in = p.Apply(in)
	}
	if b.Latitude != nil {
		in.Latitude = *b.Latitude
	} else if b.PlaceID == "" {
		return in, &model.InputError{Field: "latitude", Reason: "is required"}
	}
	if b.Longitude != nil {
		in.Longitude = *b.Longitude
	} else if b.PlaceID == "" {
		return in, &model.InputError{Field: "longitude", Reason: "is required"}
	}
	return in, nil
}

func (h *ChartHandler) engineFor(o *models.EngineOverrides) (*chart.Engine, error) {
	if o == nil {
		return h.engine, nil
	}
	merged := config.MergeEngine(h.engineCfg, config.EngineConfig{
		DashaHorizonYears:  o.HorizonYears,
		RetrogradeStepDays: o.RetrogradeStepDays,
	})
	if err := merged.Validate(); err != nil {
		return nil, &model.InputError{Field: "options", Reason: err.Error()}
	}
	return h.engine.With(merged.ToOptions()), nil
}

func writeError(c *gin.Context, err error) {
	var inErr *model.InputError
	switch {
	case errors.As(err, &inErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: err.Error(),
				Details: map[string]interface{}{"field": inErr.Field},
			},
		})
	case errors.Is(err, model.ErrSingularity):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "COMPUTATION_SINGULARITY",
				Message: err.Error(),
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: err.Error(),
			},
		})
	}
}
