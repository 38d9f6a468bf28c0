package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextConfidenceEmptyContext(t *testing.T) {
	assert.Equal(t, 0.0, ContextConfidence("", "как поступить"))
}

func TestContextConfidenceRewardsOverlapAndStructure(t *testing.T) {
	message := "как поступить в университет"

	structured := "**Поступление**\n- поступить в университет можно летом\n- документы принимает комиссия"
	plain := "поступить в университет можно летом"

	assert.Greater(t, ContextConfidence(structured, message), ContextConfidence(plain, message))
	assert.Greater(t, ContextConfidence(plain, message), ContextConfidence("жатақхана туралы ақпарат", message))
}

func TestOverallConfidenceWithoutContext(t *testing.T) {
	assert.InDelta(t, 0.4, OverallConfidence(0.5, 0.0, false), 0.001)
	assert.InDelta(t, 0.8, OverallConfidence(1.0, 0.0, false), 0.001)
}

func TestOverallConfidenceBoostAndPenalty(t *testing.T) {
	// Strong agent match plus strong context earns a boost.
	boosted := OverallConfidence(0.9, 0.8, true)
	assert.InDelta(t, (0.9*0.6+0.8*0.4)*1.1, boosted, 0.001)

	// Weak context drags the score down.
	penalized := OverallConfidence(1.0, 0.2, true)
	assert.InDelta(t, (1.0*0.6+0.2*0.4)*0.8, penalized, 0.001)
}

func TestOverallConfidenceBounds(t *testing.T) {
	steps := []float64{0.0, 0.1, 0.3, 0.5, 0.7, 0.9, 1.0}
	for _, agentConf := range steps {
		for _, contextConf := range steps {
			for _, hasContext := range []bool{true, false} {
				got := OverallConfidence(agentConf, contextConf, hasContext)
				assert.GreaterOrEqual(t, got, 0.1)
				assert.LessOrEqual(t, got, 1.0)
			}
		}
	}
}
