package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/oolnhq/insights-service/internal/api/middleware"
	"github.com/oolnhq/insights-service/internal/usecase"
)

// InsightsHandler answers trading questions.
type InsightsHandler struct {
	service *usecase.InsightService
	log     zerolog.Logger
}

func NewInsightsHandler(service *usecase.InsightService, log zerolog.Logger) *InsightsHandler {
	return &InsightsHandler{service: service, log: log}
}

// Ask handles POST /api/insights
func (h *InsightsHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		middleware.WriteError(w, http.StatusBadRequest, "question is required")
		return
	}

	answer, err := h.service.Answer(r.Context(), question)
	if err != nil {
		h.log.Error().Err(err).Str("question", question).Msg("Failed to answer question")
		middleware.WriteError(w, http.StatusBadGateway, "Failed to answer question")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, answer)
}

// Health handles GET /healthz
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NewRouter wires the endpoints behind the middleware chain.
func NewRouter(insights *InsightsHandler, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		Health(w, r)
	})

	mux.HandleFunc("/api/insights", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		insights.Ask(w, r)
	})

	var handler http.Handler = mux
	handler = middleware.CORS(handler)
	handler = middleware.Recovery(log)(handler)
	handler = middleware.Logger(log)(handler)
	handler = middleware.RequestID(handler)
	return handler
}
