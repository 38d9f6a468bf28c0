package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/romchy222/AI-SANA/internal/cache"
	"github.com/romchy222/AI-SANA/internal/db"
	"github.com/romchy222/AI-SANA/internal/models"
)

// AdminHandler exposes knowledge base management and usage statistics.
// All routes are expected to sit behind the auth middleware.
type AdminHandler struct {
	db            *db.DB
	responseCache *cache.ResponseCache
}

func NewAdminHandler(database *db.DB, responseCache *cache.ResponseCache) *AdminHandler {
	return &AdminHandler{db: database, responseCache: responseCache}
}

// RegisterRoutes attaches the admin endpoints. The passed router is
// expected to be an /admin subrouter wrapped in the auth middleware.
func (h *AdminHandler) RegisterRoutes(router *mux.Router) {
	// Knowledge base management
	router.HandleFunc("/knowledge", h.ListKnowledge).Methods("GET")
	router.HandleFunc("/knowledge", h.CreateKnowledge).Methods("POST")
	router.HandleFunc("/knowledge/{id}", h.GetKnowledge).Methods("GET")
	router.HandleFunc("/knowledge/{id}", h.UpdateKnowledge).Methods("PUT")
	router.HandleFunc("/knowledge/{id}", h.DeactivateKnowledge).Methods("DELETE")

	// Analytics
	router.HandleFunc("/stats/queries", h.GetQueryStats).Methods("GET")
	router.HandleFunc("/stats/cache", h.GetCacheStats).Methods("GET")
	router.HandleFunc("/cache/clear", h.ClearCache).Methods("POST")
}

func (h *AdminHandler) ListKnowledge(w http.ResponseWriter, r *http.Request) {
	agentType := r.URL.Query().Get("agent_type")

	entries, err := h.db.ListKnowledge(r.Context(), agentType)
	if err != nil {
		log.Printf("Failed to list knowledge entries: %v", err)
		http.Error(w, "Failed to list knowledge entries", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

func (h *AdminHandler) CreateKnowledge(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AgentType string `json:"agent_type"`
		Title     string `json:"title"`
		ContentRU string `json:"content_ru"`
		ContentKZ string `json:"content_kz"`
		ContentEN string `json:"content_en"`
		Keywords  string `json:"keywords"`
		Priority  int    `json:"priority"`
		Category  string `json:"category"`
		Tags      string `json:"tags"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.AgentType == "" || req.Title == "" || req.ContentRU == "" {
		http.Error(w, "agent_type, title and content_ru are required", http.StatusBadRequest)
		return
	}

	if req.Priority <= 0 {
		req.Priority = 1
	}
	if req.ContentKZ == "" {
		req.ContentKZ = req.ContentRU
	}

	entry := &models.KnowledgeEntry{
		AgentType: req.AgentType,
		Title:     req.Title,
		ContentRU: req.ContentRU,
		ContentKZ: req.ContentKZ,
		ContentEN: req.ContentEN,
		Keywords:  req.Keywords,
		Priority:  req.Priority,
		Category:  req.Category,
		Tags:      req.Tags,
	}

	if err := h.db.CreateKnowledge(r.Context(), entry); err != nil {
		log.Printf("Failed to create knowledge entry: %v", err)
		http.Error(w, "Failed to create knowledge entry", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry)
}

func (h *AdminHandler) GetKnowledge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid entry ID", http.StatusBadRequest)
		return
	}

	entry, err := h.db.GetKnowledgeByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Knowledge entry not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

func (h *AdminHandler) UpdateKnowledge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid entry ID", http.StatusBadRequest)
		return
	}

	entry, err := h.db.GetKnowledgeByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Knowledge entry not found", http.StatusNotFound)
		return
	}

	var updates struct {
		Title     *string `json:"title"`
		ContentRU *string `json:"content_ru"`
		ContentKZ *string `json:"content_kz"`
		ContentEN *string `json:"content_en"`
		Keywords  *string `json:"keywords"`
		Priority  *int    `json:"priority"`
		Category  *string `json:"category"`
		Tags      *string `json:"tags"`
		IsActive  *bool   `json:"is_active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if updates.Title != nil {
		entry.Title = *updates.Title
	}
	if updates.ContentRU != nil {
		entry.ContentRU = *updates.ContentRU
	}
	if updates.ContentKZ != nil {
		entry.ContentKZ = *updates.ContentKZ
	}
	if updates.ContentEN != nil {
		entry.ContentEN = *updates.ContentEN
	}
	if updates.Keywords != nil {
		entry.Keywords = *updates.Keywords
	}
	if updates.Priority != nil && *updates.Priority > 0 {
		entry.Priority = *updates.Priority
	}
	if updates.Category != nil {
		entry.Category = *updates.Category
	}
	if updates.Tags != nil {
		entry.Tags = *updates.Tags
	}
	if updates.IsActive != nil {
		entry.IsActive = *updates.IsActive
	}

	if err := h.db.UpdateKnowledge(r.Context(), entry); err != nil {
		log.Printf("Failed to update knowledge entry %d: %v", id, err)
		http.Error(w, "Failed to update knowledge entry", http.StatusInternalServerError)
		return
	}

	// Cached answers may now contradict the updated entry.
	h.responseCache.Clear()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

// DeactivateKnowledge soft-deletes an entry; rows are kept for audit.
func (h *AdminHandler) DeactivateKnowledge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid entry ID", http.StatusBadRequest)
		return
	}

	if err := h.db.DeactivateKnowledge(r.Context(), id); err != nil {
		log.Printf("Failed to deactivate knowledge entry %d: %v", id, err)
		http.Error(w, "Failed to deactivate knowledge entry", http.StatusInternalServerError)
		return
	}

	h.responseCache.Clear()

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) GetQueryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.db.GetQueryStats(r.Context())
	if err != nil {
		log.Printf("Failed to get query stats: %v", err)
		http.Error(w, "Failed to get query stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *AdminHandler) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.responseCache.Stats())
}

func (h *AdminHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.responseCache.Clear()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "cleared"})
}
