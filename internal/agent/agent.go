// Package agent routes user messages to topic-scoped agents and runs the
// full answer pipeline: cache lookup, knowledge retrieval, LLM call,
// confidence scoring and cache write.
package agent

import "strings"

// Agent type codes, also used as knowledge base partition keys.
const (
	TypeAIAbitur        = "ai_abitur"
	TypeKadrAI          = "kadrai"
	TypeUniNav          = "uninav"
	TypeCareerNavigator = "career_navigator"
	TypeUniRoom         = "uniroom"
)

// Agent is a topic-scoped responder: a keyword matcher plus bilingual
// system prompts and a static fallback context used when the knowledge
// base has nothing to offer.
type Agent struct {
	Type        string
	Name        string
	Description string

	// Keywords trigger full handling confidence when contained in the
	// message; BaseConfidence applies otherwise.
	Keywords       []string
	BaseConfidence float64

	systemPrompts    map[string]string
	fallbackContexts map[string]string
}

// CanHandle scores how well this agent matches the message: 1.0 when any
// registered keyword is contained in it, the agent's base confidence
// otherwise.
func (a *Agent) CanHandle(message, language string) float64 {
	lower := strings.ToLower(message)
	for _, k := range a.Keywords {
		if strings.Contains(lower, k) {
			return 1.0
		}
	}
	return a.BaseConfidence
}

// SystemPrompt returns the role instruction for the language, defaulting
// to Russian.
func (a *Agent) SystemPrompt(language string) string {
	if p, ok := a.systemPrompts[language]; ok {
		return p
	}
	return a.systemPrompts["ru"]
}

// FallbackContext is the static blurb injected when the knowledge base is
// empty or unreachable.
func (a *Agent) FallbackContext(language string) string {
	if c, ok := a.fallbackContexts[language]; ok {
		return c
	}
	return a.fallbackContexts["ru"]
}
