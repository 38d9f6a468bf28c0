package knowledge

import (
	"strings"
	"testing"

	"github.com/romchy222/AI-SANA/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocessTextDropsStopWords(t *testing.T) {
	s := NewSearchEngine()

	assert.Equal(t, "поступить университет", s.PreprocessText("Как поступить в университет?", "ru"))
	assert.Equal(t, "жатақхана орналасу", s.PreprocessText("жатақхана және орналасу туралы", "kz"))

	// Unknown language keeps every word.
	assert.Equal(t, "как дела", s.PreprocessText("Как дела", "en"))
}

func TestFuzzyMatchScore(t *testing.T) {
	s := NewSearchEngine()

	assert.Equal(t, 1.0, s.FuzzyMatchScore("документы", "какие документы нужны"))

	// One-letter typo still counts as a match.
	typo := s.FuzzyMatchScore("распесание", "расписание занятий")
	assert.GreaterOrEqual(t, typo, 0.75)
	assert.Less(t, typo, 1.0)

	// Shared stem scores above half even below the match threshold.
	partial := s.FuzzyMatchScore("поступ", "поступление")
	assert.Greater(t, partial, 0.5)

	assert.Equal(t, 0.0, s.FuzzyMatchScore("общежитие", ""))
}

func TestRelevanceScoreStrongMatch(t *testing.T) {
	s := NewSearchEngine()

	entry := &models.KnowledgeEntry{
		Title:     "Документы для поступления",
		ContentRU: "Для поступления нужны документы: аттестат, справка о здоровье, фотографии",
		Keywords:  "документы, поступление, приём, аттестат",
		Priority:  1,
	}

	score := s.RelevanceScore("какие документы нужны для поступления", entry, "ru")
	assert.Greater(t, score, 0.5)

	unrelated := s.RelevanceScore("проблемы с общежитием", entry, "ru")
	assert.Less(t, unrelated, score)
}

func TestSearchFiltersAndOrders(t *testing.T) {
	s := NewSearchEngine()

	entries := []models.KnowledgeEntry{
		{
			Title:     "Режим работы библиотеки",
			ContentRU: "Библиотека работает ежедневно кроме воскресенья",
			Keywords:  "библиотека, книги",
			Priority:  2,
		},
		{
			Title:     "Документы для поступления",
			ContentRU: "Для поступления нужны документы: аттестат и справка",
			Keywords:  "документы, поступление",
			Priority:  1,
		},
	}

	results := s.Search("какие документы нужны для поступления", entries, "ru", 3, 0.1)
	require.NotEmpty(t, results)
	assert.Equal(t, "Документы для поступления", results[0].Entry.Title)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Score, 0.1)
	}

	// maxResults truncates.
	one := s.Search("документы для поступления", entries, "ru", 1, 0.0)
	assert.Len(t, one, 1)

	// Nothing relevant enough returns nothing.
	none := s.Search("совершенно посторонний запрос", entries, "ru", 3, 0.5)
	assert.Empty(t, none)
}

func TestFormatContextBudget(t *testing.T) {
	s := NewSearchEngine()

	first := models.KnowledgeEntry{Title: "Первый", ContentRU: strings.Repeat("а", 100)}
	second := models.KnowledgeEntry{Title: "Второй", ContentRU: strings.Repeat("б", 100)}

	results := []Result{{Entry: &first}, {Entry: &second}}

	full := s.FormatContext(results, "ru", 1500)
	assert.Contains(t, full, "**Первый**")
	assert.Contains(t, full, "**Второй**")

	// Budget only fits the first block.
	tight := s.FormatContext(results, "ru", 150)
	assert.Contains(t, tight, "**Первый**")
	assert.NotContains(t, tight, "**Второй**")

	// A single oversized block is cut at the budget.
	cut := s.FormatContext(results[:1], "ru", 50)
	assert.Len(t, []rune(cut), 50)
}

func TestFormatContextLanguageFallback(t *testing.T) {
	s := NewSearchEngine()

	entry := models.KnowledgeEntry{Title: "Жатақхана", ContentRU: "русский текст", ContentKZ: "қазақша мәтін"}

	assert.Contains(t, s.FormatContext([]Result{{Entry: &entry}}, "kz", 1500), "қазақша мәтін")
	// Missing translation falls back to Russian.
	entry.ContentKZ = ""
	assert.Contains(t, s.FormatContext([]Result{{Entry: &entry}}, "kz", 1500), "русский текст")
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("экзамен", "экзамен"))
	assert.InDelta(t, 0.9, similarity("расписание", "распесание"), 0.001)
	assert.Equal(t, 0.0, similarity("", "слово"))
}
