package agent

import (
	"strings"
)

// structureMarkers hint that retrieved context is well formatted (headings,
// bullet lists, numbered steps) and therefore more likely to be useful.
var structureMarkers = []string{"**", "###", "\n-", "\n•", "1.", "2."}

// ContextConfidence estimates how trustworthy retrieved context is for the
// given message: word overlap with the question carries half the weight,
// content length and formatting the rest.
func ContextConfidence(contextText, message string) float64 {
	if contextText == "" {
		return 0.0
	}

	messageWords := fieldsSet(message)
	contextWords := fieldsSet(contextText)

	wordConfidence := 0.0
	if len(messageWords) > 0 {
		overlap := 0
		for w := range messageWords {
			if contextWords[w] {
				overlap++
			}
		}
		wordConfidence = float64(overlap) / float64(len(messageWords))
	}

	lengthConfidence := float64(len([]rune(contextText))) / 1000
	if lengthConfidence > 1.0 {
		lengthConfidence = 1.0
	}

	structureScore := 0.0
	for _, marker := range structureMarkers {
		if strings.Contains(contextText, marker) {
			structureScore += 0.2
		}
	}
	if structureScore > 1.0 {
		structureScore = 1.0
	}

	return wordConfidence*0.5 + lengthConfidence*0.3 + structureScore*0.2
}

// OverallConfidence composes the agent match confidence with the context
// confidence. Deterministic; always within [0.1, 1.0].
func OverallConfidence(agentConfidence, contextConfidence float64, hasContext bool) float64 {
	if !hasContext {
		return clampConfidence(agentConfidence * 0.8)
	}

	combined := agentConfidence*0.6 + contextConfidence*0.4

	if agentConfidence > 0.8 && contextConfidence > 0.7 {
		combined *= 1.1
	}
	if contextConfidence < 0.3 {
		combined *= 0.8
	}

	return clampConfidence(combined)
}

func clampConfidence(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

func fieldsSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = true
	}
	return set
}
