// Package complexity serves the classifier, legend and growth chart over HTTP.
package complexity

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/HerbHall/bigoref/internal/metrics"
	"github.com/HerbHall/bigoref/internal/server"
	pkgcomplexity "github.com/HerbHall/bigoref/pkg/complexity"
)

// ClassifyResponse is the response for GET /api/v1/complexity/classify.
type ClassifyResponse struct {
	Notation string               `json:"notation"`
	Rating   pkgcomplexity.Rating `json:"rating"`
	Label    string               `json:"label"`
}

// ChartResponse is the response for GET /api/v1/complexity/chart.
type ChartResponse struct {
	Samples int                   `json:"samples"`
	MaxN    float64               `json:"max_n"`
	Curves  []pkgcomplexity.Curve `json:"curves"`
}

// Handler serves the complexity API.
type Handler struct {
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewHandler creates a new complexity API handler. m may be nil.
func NewHandler(m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{metrics: m, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/complexity/classify", h.handleClassify)
	mux.HandleFunc("GET /api/v1/complexity/legend", h.handleLegend)
	mux.HandleFunc("GET /api/v1/complexity/chart", h.handleChart)
}

// handleClassify rates a single notation.
//
//	@Summary		Classify a Big-O notation
//	@Tags			complexity
//	@Produce		json
//	@Param			notation query string true "Big-O notation, e.g. O(n log n)"
//	@Success		200 {object} ClassifyResponse
//	@Failure		400 {object} server.Problem
//	@Router			/complexity/classify [get]
func (h *Handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("notation") {
		server.BadRequest(w, "notation query parameter is required", r.URL.Path)
		return
	}
	notation := q.Get("notation")

	rating := pkgcomplexity.Classify(notation)
	h.metrics.ObserveClassification(rating)

	server.WriteJSON(w, http.StatusOK, ClassifyResponse{
		Notation: notation,
		Rating:   rating,
		Label:    rating.Label(),
	})
}

// handleLegend returns the ratings from best to worst.
//
//	@Summary		Rating legend
//	@Tags			complexity
//	@Produce		json
//	@Success		200 {array} pkgcomplexity.LegendEntry
//	@Router			/complexity/legend [get]
func (h *Handler) handleLegend(w http.ResponseWriter, r *http.Request) {
	server.WriteJSON(w, http.StatusOK, pkgcomplexity.Legend())
}

// handleChart returns the Big-O growth curves.
//
//	@Summary		Big-O growth chart
//	@Tags			complexity
//	@Produce		json
//	@Param			samples query int false "Points per curve" default(20)
//	@Param			max_n query number false "Right edge of the chart" default(20)
//	@Success		200 {object} ChartResponse
//	@Failure		400 {object} server.Problem
//	@Router			/complexity/chart [get]
func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	samples := pkgcomplexity.DefaultSamples
	if raw := q.Get("samples"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			server.BadRequest(w, "samples must be an integer", r.URL.Path)
			return
		}
		samples = n
	}

	maxN := pkgcomplexity.DefaultMaxN
	if raw := q.Get("max_n"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			server.BadRequest(w, "max_n must be a number", r.URL.Path)
			return
		}
		maxN = f
	}

	curves, err := pkgcomplexity.Chart(samples, maxN)
	if errors.Is(err, pkgcomplexity.ErrInvalidChart) {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}
	if err != nil {
		h.logger.Error("chart failed", zap.Error(err))
		server.InternalError(w, "failed to build chart", r.URL.Path)
		return
	}

	server.WriteJSON(w, http.StatusOK, ChartResponse{Samples: samples, MaxN: maxN, Curves: curves})
}
