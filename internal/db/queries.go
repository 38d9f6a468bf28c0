package db

import (
	"context"

	"github.com/romchy222/AI-SANA/internal/models"
)

// ActiveKnowledge returns the active knowledge entries for one agent,
// highest priority first (priority 1 is the highest).
func (db *DB) ActiveKnowledge(ctx context.Context, agentType string) ([]models.KnowledgeEntry, error) {
	query := `
        SELECT id, agent_type, title, content_ru, content_kz, COALESCE(content_en, ''),
               COALESCE(keywords, ''), priority, COALESCE(category, ''), COALESCE(tags, ''),
               is_active, created_at, updated_at
        FROM agent_knowledge_base
        WHERE agent_type = $1 AND is_active = TRUE
        ORDER BY priority ASC
    `

	rows, err := db.Pool.Query(ctx, query, agentType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.KnowledgeEntry
	for rows.Next() {
		var e models.KnowledgeEntry
		err := rows.Scan(
			&e.ID, &e.AgentType, &e.Title, &e.ContentRU, &e.ContentKZ, &e.ContentEN,
			&e.Keywords, &e.Priority, &e.Category, &e.Tags,
			&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ListKnowledge returns all entries, optionally filtered by agent type.
// Inactive entries are included so admins can reactivate them.
func (db *DB) ListKnowledge(ctx context.Context, agentType string) ([]models.KnowledgeEntry, error) {
	query := `
        SELECT id, agent_type, title, content_ru, content_kz, COALESCE(content_en, ''),
               COALESCE(keywords, ''), priority, COALESCE(category, ''), COALESCE(tags, ''),
               is_active, created_at, updated_at
        FROM agent_knowledge_base
        WHERE ($1 = '' OR agent_type = $1)
        ORDER BY agent_type, priority ASC
    `

	rows, err := db.Pool.Query(ctx, query, agentType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.KnowledgeEntry
	for rows.Next() {
		var e models.KnowledgeEntry
		err := rows.Scan(
			&e.ID, &e.AgentType, &e.Title, &e.ContentRU, &e.ContentKZ, &e.ContentEN,
			&e.Keywords, &e.Priority, &e.Category, &e.Tags,
			&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (db *DB) GetKnowledgeByID(ctx context.Context, id int) (*models.KnowledgeEntry, error) {
	query := `
        SELECT id, agent_type, title, content_ru, content_kz, COALESCE(content_en, ''),
               COALESCE(keywords, ''), priority, COALESCE(category, ''), COALESCE(tags, ''),
               is_active, created_at, updated_at
        FROM agent_knowledge_base
        WHERE id = $1
    `

	var e models.KnowledgeEntry
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.AgentType, &e.Title, &e.ContentRU, &e.ContentKZ, &e.ContentEN,
		&e.Keywords, &e.Priority, &e.Category, &e.Tags,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (db *DB) CreateKnowledge(ctx context.Context, e *models.KnowledgeEntry) error {
	query := `
        INSERT INTO agent_knowledge_base
            (agent_type, title, content_ru, content_kz, content_en, keywords, priority, category, tags, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
        RETURNING id, is_active, created_at, updated_at
    `

	return db.Pool.QueryRow(ctx, query,
		e.AgentType, e.Title, e.ContentRU, e.ContentKZ, e.ContentEN,
		e.Keywords, e.Priority, e.Category, e.Tags,
	).Scan(&e.ID, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
}

func (db *DB) UpdateKnowledge(ctx context.Context, e *models.KnowledgeEntry) error {
	query := `
        UPDATE agent_knowledge_base
        SET title = $2, content_ru = $3, content_kz = $4, content_en = $5,
            keywords = $6, priority = $7, category = $8, tags = $9,
            is_active = $10, updated_at = NOW()
        WHERE id = $1
    `

	_, err := db.Pool.Exec(ctx, query,
		e.ID, e.Title, e.ContentRU, e.ContentKZ, e.ContentEN,
		e.Keywords, e.Priority, e.Category, e.Tags, e.IsActive,
	)

	return err
}

// DeactivateKnowledge soft-deletes an entry. Rows are never removed so the
// admin history stays intact.
func (db *DB) DeactivateKnowledge(ctx context.Context, id int) error {
	query := `
        UPDATE agent_knowledge_base
        SET is_active = FALSE, updated_at = NOW()
        WHERE id = $1
    `

	_, err := db.Pool.Exec(ctx, query, id)
	return err
}

func (db *DB) LogQuery(ctx context.Context, q *models.UserQuery) error {
	query := `
        INSERT INTO user_queries
            (user_message, bot_response, language, response_time_ms, agent_type,
             agent_name, confidence, context_used, cached, session_id, ip_address)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `

	_, err := db.Pool.Exec(ctx, query,
		q.UserMessage, q.BotResponse, q.Language, q.ResponseTimeMs, q.AgentType,
		q.AgentName, q.Confidence, q.ContextUsed, q.Cached, q.SessionID, q.IPAddress,
	)

	return err
}

func (db *DB) GetQueryStats(ctx context.Context) (*models.QueryStats, error) {
	stats := &models.QueryStats{ByAgent: make(map[string]int64)}

	summary := `
        SELECT COUNT(*), COUNT(*) FILTER (WHERE cached), COALESCE(AVG(confidence), 0)
        FROM user_queries
    `
	err := db.Pool.QueryRow(ctx, summary).Scan(
		&stats.TotalQueries, &stats.CachedQueries, &stats.AvgConfidence,
	)
	if err != nil {
		return nil, err
	}

	byAgent := `
        SELECT agent_type, COUNT(*)
        FROM user_queries
        WHERE agent_type <> ''
        GROUP BY agent_type
    `
	rows, err := db.Pool.Query(ctx, byAgent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var agentType string
		var count int64
		if err := rows.Scan(&agentType, &count); err != nil {
			return nil, err
		}
		stats.ByAgent[agentType] = count
	}

	return stats, rows.Err()
}
