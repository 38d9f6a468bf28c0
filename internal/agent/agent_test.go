package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agentByType(t *testing.T, agentType string) *Agent {
	t.Helper()
	for _, a := range DefaultAgents() {
		if a.Type == agentType {
			return a
		}
	}
	t.Fatalf("no agent registered for type %s", agentType)
	return nil
}

func TestDefaultAgentsRegistrationOrder(t *testing.T) {
	agents := DefaultAgents()
	require.Len(t, agents, 5)

	types := make([]string, len(agents))
	for i, a := range agents {
		types[i] = a.Type
	}
	assert.Equal(t, []string{TypeAIAbitur, TypeKadrAI, TypeUniNav, TypeCareerNavigator, TypeUniRoom}, types)
}

func TestCanHandleKeywordMatch(t *testing.T) {
	tests := []struct {
		message   string
		agentType string
	}{
		{"Хочу подать документы на поступление", TypeAIAbitur},
		{"Как оформить отпуск сотруднику?", TypeKadrAI},
		{"Где посмотреть расписание занятий?", TypeUniNav},
		{"Помогите составить резюме", TypeCareerNavigator},
		{"Хочу заселиться в общежитие", TypeUniRoom},
	}

	for _, tt := range tests {
		matched := agentByType(t, tt.agentType)
		assert.Equal(t, 1.0, matched.CanHandle(tt.message, "ru"), "%s should fully match %q", tt.agentType, tt.message)

		// The keyword agent is the unique maximum for its message.
		for _, other := range DefaultAgents() {
			if other.Type == tt.agentType {
				continue
			}
			assert.Less(t, other.CanHandle(tt.message, "ru"), 1.0, "%s should not fully match %q", other.Type, tt.message)
		}
	}
}

func TestCanHandleFallsBackToBaseConfidence(t *testing.T) {
	a := agentByType(t, TypeUniRoom)
	assert.Equal(t, a.BaseConfidence, a.CanHandle("расскажите о погоде", "ru"))
}

func TestPromptsAndFallbacksDefaultToRussian(t *testing.T) {
	for _, a := range DefaultAgents() {
		assert.NotEmpty(t, a.SystemPrompt("ru"), a.Type)
		assert.NotEmpty(t, a.SystemPrompt("kz"), a.Type)
		assert.Equal(t, a.SystemPrompt("ru"), a.SystemPrompt("en"), a.Type)

		assert.NotEmpty(t, a.FallbackContext("ru"), a.Type)
		assert.NotEmpty(t, a.FallbackContext("kz"), a.Type)
		assert.Equal(t, a.FallbackContext("ru"), a.FallbackContext("en"), a.Type)
	}
}
