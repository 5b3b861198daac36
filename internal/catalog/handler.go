package catalog

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/HerbHall/bigoref/internal/server"
	"github.com/HerbHall/bigoref/pkg/complexity"
	"github.com/HerbHall/bigoref/pkg/models"
)

// QuestionsResponse is the response for GET /api/v1/catalog/questions.
type QuestionsResponse struct {
	Filter  models.FilterState `json:"filter"`
	Count   int                `json:"count"`
	Entries []RatedQuestion    `json:"entries"`
}

// Handler serves the catalog API.
type Handler struct {
	engine *Engine
	logger *zap.Logger
}

// NewHandler creates a new catalog API handler.
func NewHandler(engine *Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/catalog/questions", h.handleQuestions)
	mux.HandleFunc("GET /api/v1/catalog/questions/{id}", h.handleQuestion)
	mux.HandleFunc("GET /api/v1/catalog/topics", h.handleTopics)
	mux.HandleFunc("GET /api/v1/catalog/sorting", h.handleSorting)
	mux.HandleFunc("GET /api/v1/catalog/searching", h.handleSearching)
	mux.HandleFunc("GET /api/v1/catalog/structures", h.handleStructures)
}

// handleQuestions returns the filtered question catalog.
//
//	@Summary		List interview questions
//	@Description	Returns questions matching topic, difficulty and title search, in curated order, annotated with complexity ratings.
//	@Tags			catalog
//	@Produce		json
//	@Param			topic query string false "Topic filter (All, Array, Tree, ...)" default(All)
//	@Param			difficulty query string false "Difficulty filter (All, Easy, Medium, Hard)" default(All)
//	@Param			search query string false "Case-insensitive title substring"
//	@Param			max_rating query string false "Worst acceptable time/space rating (excellent..horrible)"
//	@Success		200 {object} QuestionsResponse
//	@Failure		400 {object} server.Problem
//	@Router			/catalog/questions [get]
func (h *Handler) handleQuestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := models.FilterState{
		Topic:      q.Get("topic"),
		Difficulty: q.Get("difficulty"),
		Search:     q.Get("search"),
	}.Normalize()

	if err := ValidateState(state); err != nil {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}

	var extra []Predicate
	if raw := q.Get("max_rating"); raw != "" {
		limit, err := complexity.ParseRating(raw)
		if err != nil {
			server.BadRequest(w, err.Error(), r.URL.Path)
			return
		}
		extra = append(extra, MaxRating(limit))
	}

	res := h.engine.Questions(state, extra...)
	h.logger.Debug("questions filtered",
		zap.String("topic", state.Topic),
		zap.String("difficulty", state.Difficulty),
		zap.String("search", state.Search),
		zap.Int("count", res.Count),
	)

	server.WriteJSON(w, http.StatusOK, QuestionsResponse{
		Filter:  state,
		Count:   res.Count,
		Entries: h.engine.RateQuestions(res.Entries),
	})
}

// handleQuestion returns one question by id.
//
//	@Summary		Get an interview question
//	@Tags			catalog
//	@Produce		json
//	@Param			id path int true "Question id"
//	@Success		200 {object} RatedQuestion
//	@Failure		400 {object} server.Problem
//	@Failure		404 {object} server.Problem
//	@Router			/catalog/questions/{id} [get]
func (h *Handler) handleQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		server.BadRequest(w, "id must be a positive integer", r.URL.Path)
		return
	}

	q, ok := h.engine.Question(id)
	if !ok {
		server.NotFound(w, "question "+strconv.Itoa(id)+" not found", r.URL.Path)
		return
	}
	server.WriteJSON(w, http.StatusOK, h.engine.RateQuestions([]models.InterviewQuestion{q})[0])
}

// handleTopics returns the selectable topic filters.
//
//	@Summary		List topic filters
//	@Tags			catalog
//	@Produce		json
//	@Success		200 {array} string
//	@Router			/catalog/topics [get]
func (h *Handler) handleTopics(w http.ResponseWriter, r *http.Request) {
	server.WriteJSON(w, http.StatusOK, h.engine.Catalog().Topics())
}

// handleSorting returns sorting algorithms filtered by name.
//
//	@Summary		List sorting algorithms
//	@Tags			catalog
//	@Produce		json
//	@Param			search query string false "Case-insensitive name substring"
//	@Success		200 {object} Result[RatedAlgorithm]
//	@Router			/catalog/sorting [get]
func (h *Handler) handleSorting(w http.ResponseWriter, r *http.Request) {
	res := h.engine.Sorting(r.URL.Query().Get("search"))
	server.WriteJSON(w, http.StatusOK, newResult(h.engine.RateAlgorithms(res.Entries)))
}

// handleSearching returns searching algorithms filtered by name.
//
//	@Summary		List searching algorithms
//	@Tags			catalog
//	@Produce		json
//	@Param			search query string false "Case-insensitive name substring"
//	@Success		200 {object} Result[RatedAlgorithm]
//	@Router			/catalog/searching [get]
func (h *Handler) handleSearching(w http.ResponseWriter, r *http.Request) {
	res := h.engine.Searching(r.URL.Query().Get("search"))
	server.WriteJSON(w, http.StatusOK, newResult(h.engine.RateAlgorithms(res.Entries)))
}

// handleStructures returns data structures filtered by name.
//
//	@Summary		List data structures
//	@Tags			catalog
//	@Produce		json
//	@Param			search query string false "Case-insensitive name substring"
//	@Success		200 {object} Result[RatedStructure]
//	@Router			/catalog/structures [get]
func (h *Handler) handleStructures(w http.ResponseWriter, r *http.Request) {
	res := h.engine.Structures(r.URL.Query().Get("search"))
	server.WriteJSON(w, http.StatusOK, newResult(h.engine.RateStructures(res.Entries)))
}
