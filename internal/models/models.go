package models

import "time"

// KnowledgeEntry is one knowledge base record owned by a single agent.
// Entries are created and edited through the admin API; the chat pipeline
// only reads them. Entries are deactivated instead of deleted.
type KnowledgeEntry struct {
	ID        int       `json:"id"`
	AgentType string    `json:"agent_type"`
	Title     string    `json:"title"`
	ContentRU string    `json:"content_ru"`
	ContentKZ string    `json:"content_kz"`
	ContentEN string    `json:"content_en,omitempty"`
	Keywords  string    `json:"keywords"`
	Priority  int       `json:"priority"`
	Category  string    `json:"category,omitempty"`
	Tags      string    `json:"tags,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Content returns the entry body for the requested language, falling back
// to Russian when the translation is missing.
func (e *KnowledgeEntry) Content(language string) string {
	switch language {
	case "kz":
		if e.ContentKZ != "" {
			return e.ContentKZ
		}
	case "en":
		if e.ContentEN != "" {
			return e.ContentEN
		}
	}
	return e.ContentRU
}

// UserQuery is the per-request audit row written after every chat response.
type UserQuery struct {
	ID             int64     `json:"id"`
	UserMessage    string    `json:"user_message"`
	BotResponse    string    `json:"bot_response"`
	Language       string    `json:"language"`
	ResponseTimeMs int       `json:"response_time_ms"`
	AgentType      string    `json:"agent_type"`
	AgentName      string    `json:"agent_name"`
	Confidence     float64   `json:"confidence"`
	ContextUsed    bool      `json:"context_used"`
	Cached         bool      `json:"cached"`
	SessionID      string    `json:"session_id"`
	IPAddress      string    `json:"ip_address"`
	CreatedAt      time.Time `json:"created_at"`
}

// AgentResponse is the payload returned for every chat message, including
// the degraded fallback variants.
type AgentResponse struct {
	Response          string  `json:"response"`
	Confidence        float64 `json:"confidence"`
	AgentType         string  `json:"agent_type"`
	AgentName         string  `json:"agent_name"`
	ContextUsed       bool    `json:"context_used"`
	ContextConfidence float64 `json:"context_confidence"`
	Cached            bool    `json:"cached"`
}

// AgentInfo describes a registered agent for the public listing endpoint.
type AgentInfo struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// QueryStats aggregates the user query log for the admin dashboard.
type QueryStats struct {
	TotalQueries  int64            `json:"total_queries"`
	CachedQueries int64            `json:"cached_queries"`
	AvgConfidence float64          `json:"avg_confidence"`
	ByAgent       map[string]int64 `json:"by_agent"`
}
