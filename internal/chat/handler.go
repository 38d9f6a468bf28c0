// Package chat serves the public conversation API.
package chat

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/romchy222/AI-SANA/internal/agent"
	"github.com/romchy222/AI-SANA/internal/models"
)

const maxMessageLength = 2000

// Limiter gates requests per client. *ratelimit.RateLimiter implements it.
type Limiter interface {
	Allow(ctx context.Context, clientID string, limit int) (bool, error)
}

// QueryLogger records the per-request audit row. *db.DB implements it.
type QueryLogger interface {
	LogQuery(ctx context.Context, q *models.UserQuery) error
}

type Handler struct {
	router       *agent.Router
	limiter      Limiter
	queries      QueryLogger
	limitPerHour int
}

func NewHandler(router *agent.Router, limiter Limiter, queries QueryLogger, limitPerHour int) *Handler {
	return &Handler{
		router:       router,
		limiter:      limiter,
		queries:      queries,
		limitPerHour: limitPerHour,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/chat", h.Chat).Methods("POST")
	router.HandleFunc("/api/agents", h.ListAgents).Methods("GET")
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	var req struct {
		Message   string `json:"message"`
		Language  string `json:"language"`
		SessionID string `json:"session_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}
	if len([]rune(req.Message)) > maxMessageLength {
		http.Error(w, "message too long", http.StatusBadRequest)
		return
	}

	language := normalizeLanguage(req.Language)
	clientIP := clientIP(r)

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(r.Context(), clientIP, h.limitPerHour)
		if err != nil {
			log.Printf("Rate limit check failed: %v", err)
			http.Error(w, "Rate limit check failed", http.StatusInternalServerError)
			return
		}
		if !allowed {
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}
	}

	response := h.router.Route(r.Context(), req.Message, language)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	elapsed := time.Since(startTime)
	h.logQuery(req.Message, language, sessionID, clientIP, elapsed, response)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) ListAgents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.router.Agents())
}

// logQuery writes the audit row off the request path; a failed insert never
// affects the response.
func (h *Handler) logQuery(message, language, sessionID, clientIP string, elapsed time.Duration, response models.AgentResponse) {
	if h.queries == nil {
		return
	}

	row := &models.UserQuery{
		UserMessage:    message,
		BotResponse:    response.Response,
		Language:       language,
		ResponseTimeMs: int(elapsed.Milliseconds()),
		AgentType:      response.AgentType,
		AgentName:      response.AgentName,
		Confidence:     response.Confidence,
		ContextUsed:    response.ContextUsed,
		Cached:         response.Cached,
		SessionID:      sessionID,
		IPAddress:      clientIP,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.queries.LogQuery(ctx, row); err != nil {
			log.Printf("Failed to log user query: %v", err)
		}
	}()
}

func normalizeLanguage(language string) string {
	switch strings.ToLower(language) {
	case "kz":
		return "kz"
	case "en":
		return "en"
	default:
		return "ru"
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.Index(forwarded, ","); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return strings.TrimSpace(forwarded)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
