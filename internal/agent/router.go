package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/romchy222/AI-SANA/internal/cache"
	"github.com/romchy222/AI-SANA/internal/knowledge"
	"github.com/romchy222/AI-SANA/internal/models"
)

// Retrieval and routing parameters, matching the knowledge search defaults.
const (
	maxContextResults = 3
	minRelevanceScore = 0.1
	contextBudget     = 1500

	// defaultFloor is the minimum handling confidence required before a
	// message is delegated to an agent at all.
	defaultFloor = 0.2
)

// Generator produces model text for a prompt. The Mistral client implements
// it; tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, message, contextText, language, systemPrompt string) (string, error)
}

// KnowledgeSource yields the active knowledge entries for one agent.
// *db.DB implements it.
type KnowledgeSource interface {
	ActiveKnowledge(ctx context.Context, agentType string) ([]models.KnowledgeEntry, error)
}

// Router picks the best-matching agent for a message and runs its pipeline.
type Router struct {
	agents    []*Agent
	knowledge KnowledgeSource
	search    *knowledge.SearchEngine
	cache     *cache.ResponseCache
	generator Generator
	floor     float64
}

// NewRouter wires the routing pipeline. When no agents are passed the five
// default university agents are registered.
func NewRouter(source KnowledgeSource, generator Generator, respCache *cache.ResponseCache, agents ...*Agent) *Router {
	if len(agents) == 0 {
		agents = DefaultAgents()
	}
	return &Router{
		agents:    agents,
		knowledge: source,
		search:    knowledge.NewSearchEngine(),
		cache:     respCache,
		generator: generator,
		floor:     defaultFloor,
	}
}

// Agents lists the registered agents in registration order.
func (r *Router) Agents() []models.AgentInfo {
	infos := make([]models.AgentInfo, len(r.agents))
	for i, a := range r.agents {
		infos[i] = models.AgentInfo{Type: a.Type, Name: a.Name, Description: a.Description}
	}
	return infos
}

// Route selects the agent with the highest handling confidence and runs its
// pipeline. On an exact tie the first-registered agent wins. When no agent
// clears the floor a fixed low-confidence reply naming no agent is returned.
func (r *Router) Route(ctx context.Context, message, language string) models.AgentResponse {
	var best *Agent
	bestConfidence := 0.0
	for _, a := range r.agents {
		if conf := a.CanHandle(message, language); conf > bestConfidence {
			bestConfidence = conf
			best = a
		}
	}

	if best == nil || bestConfidence < r.floor {
		return noAgentResponse(language)
	}

	return r.process(ctx, best, message, language)
}

// process runs one agent's full pipeline: cache lookup, context retrieval,
// generation, confidence composition and cache write. Failures degrade into
// a valid low-confidence payload; nothing here is fatal to the request.
func (r *Router) process(ctx context.Context, a *Agent, message, language string) models.AgentResponse {
	if cached, ok := r.cache.Get(message, a.Type, language); ok {
		log.Printf("Returning cached response for %s", a.Name)
		cached.Cached = true
		return cached
	}

	contextText := r.agentContext(ctx, a, message, language)
	contextConfidence := ContextConfidence(contextText, message)

	text, err := r.generator.Generate(ctx, message, contextText, language, a.SystemPrompt(language))
	if err != nil {
		log.Printf("Generation failed for %s agent: %v", a.Name, err)
		return generationFailureResponse(a, language)
	}

	response := models.AgentResponse{
		Response:          text,
		Confidence:        OverallConfidence(a.CanHandle(message, language), contextConfidence, contextText != ""),
		AgentType:         a.Type,
		AgentName:         a.Name,
		ContextUsed:       contextText != "",
		ContextConfidence: contextConfidence,
		Cached:            false,
	}

	if r.cache.ShouldCache(message, response) {
		r.cache.Set(message, a.Type, language, response)
	}

	return response
}

// agentContext retrieves and formats knowledge for the agent. A lookup
// failure or an empty knowledge base falls back to the agent's static blurb,
// never to an error.
func (r *Router) agentContext(ctx context.Context, a *Agent, message, language string) string {
	entries, err := r.knowledge.ActiveKnowledge(ctx, a.Type)
	if err != nil {
		log.Printf("Knowledge lookup failed for %s: %v", a.Type, err)
		return a.FallbackContext(language)
	}
	if len(entries) == 0 {
		return a.FallbackContext(language)
	}

	results := r.search.Search(message, entries, language, maxContextResults, minRelevanceScore)
	if len(results) > 0 {
		if formatted := r.search.FormatContext(results, language, contextBudget); formatted != "" {
			return formatted
		}
	}

	// Nothing scored above the threshold: use the top-priority entries as a
	// weaker signal before giving up on the knowledge base.
	var fallback []knowledge.Result
	for i := range entries {
		if i == 2 {
			break
		}
		fallback = append(fallback, knowledge.Result{Entry: &entries[i]})
	}
	if formatted := r.search.FormatContext(fallback, language, contextBudget); formatted != "" {
		return formatted
	}

	return a.FallbackContext(language)
}

func noAgentResponse(language string) models.AgentResponse {
	text := "Извините, я не смог определить подходящего специалиста для вашего вопроса. Пожалуйста, уточните запрос."
	if language == "kz" {
		text = "Кешіріңіз, сұрағыңызға сәйкес маманды анықтай алмадым. Сұрағыңызды нақтылап көріңіз."
	}
	return models.AgentResponse{
		Response:   text,
		Confidence: 0.1,
	}
}

func generationFailureResponse(a *Agent, language string) models.AgentResponse {
	text := fmt.Sprintf("Извините, возникла ошибка при обработке запроса по теме '%s'.", a.Description)
	if language == "kz" {
		text = fmt.Sprintf("Кешіріңіз, '%s' тақырыбы бойынша сұранысты өңдеу кезінде қате орын алды.", a.Description)
	}
	return models.AgentResponse{
		Response:   text,
		Confidence: 0.1,
		AgentType:  a.Type,
		AgentName:  a.Name,
	}
}
