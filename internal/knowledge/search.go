// Package knowledge ranks agent knowledge base entries against a user
// message and formats the best matches into model context.
package knowledge

import (
	"sort"
	"strings"
	"unicode"

	"github.com/romchy222/AI-SANA/internal/models"
)

// Result is one scored knowledge entry.
type Result struct {
	Entry *models.KnowledgeEntry
	Score float64
}

// SearchEngine scores knowledge entries with keyword containment, fuzzy
// word overlap and entry priority. It holds no mutable state and is safe
// for concurrent use.
type SearchEngine struct {
	stopWords map[string]map[string]bool
}

// fuzzyThreshold is the minimum per-word similarity counted as a match.
// It tolerates single-letter typos and case endings in Russian/Kazakh.
const fuzzyThreshold = 0.75

func NewSearchEngine() *SearchEngine {
	return &SearchEngine{
		stopWords: map[string]map[string]bool{
			"ru": wordSet("и в не на с что как по это о а то все так его но да ты к у же вы за бы только мне для или при из об до через"),
			"kz": wordSet("және мен бен бұл ол үшін туралы да де не қалай керек бар жоқ"),
		},
	}
}

func wordSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}

// PreprocessText lowercases, strips punctuation and drops stop words.
func (s *SearchEngine) PreprocessText(text, language string) string {
	return strings.Join(s.tokens(text, language), " ")
}

func (s *SearchEngine) tokens(text, language string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	stop := s.stopWords[language]
	var out []string
	for _, w := range strings.Fields(cleaned) {
		if stop[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// FuzzyMatchScore returns the best similarity between term and any word of
// text: 1.0 for an exact word match, otherwise a normalized edit-distance
// ratio.
func (s *SearchEngine) FuzzyMatchScore(term, text string) float64 {
	term = strings.ToLower(term)
	best := 0.0
	for _, w := range s.tokens(text, "") {
		if w == term {
			return 1.0
		}
		if sim := similarity(term, w); sim > best {
			best = sim
		}
	}
	return best
}

// RelevanceScore rates how well an entry answers the query. Keyword hits
// weigh most, then body overlap, then title overlap, then entry priority.
func (s *SearchEngine) RelevanceScore(query string, entry *models.KnowledgeEntry, language string) float64 {
	words := s.tokens(query, language)
	if len(words) == 0 {
		return 0
	}

	content := entry.Content(language)

	keywordScore := s.overlapRatio(words, entry.Keywords)
	contentScore := s.overlapRatio(words, content)
	titleScore := s.overlapRatio(words, entry.Title)

	priority := entry.Priority
	if priority < 1 {
		priority = 1
	}
	priorityScore := 1.0 / float64(priority)

	return keywordScore*0.4 + contentScore*0.3 + titleScore*0.2 + priorityScore*0.1
}

// overlapRatio is the fraction of query words fuzzily present in text.
func (s *SearchEngine) overlapRatio(words []string, text string) float64 {
	if text == "" {
		return 0
	}
	matched := 0
	for _, w := range words {
		if s.FuzzyMatchScore(w, text) >= fuzzyThreshold {
			matched++
		}
	}
	return float64(matched) / float64(len(words))
}

// Search scores the given entries against the query and returns at most
// maxResults entries with a score of at least minScore, best first.
func (s *SearchEngine) Search(query string, entries []models.KnowledgeEntry, language string, maxResults int, minScore float64) []Result {
	var results []Result
	for i := range entries {
		entry := &entries[i]
		if score := s.RelevanceScore(query, entry, language); score >= minScore {
			results = append(results, Result{Entry: entry, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Entry.Priority < results[j].Entry.Priority
	})

	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// FormatContext concatenates results as titled markdown blocks, stopping
// before the total exceeds maxLength runes.
func (s *SearchEngine) FormatContext(results []Result, language string, maxLength int) string {
	var parts []string
	total := 0
	for _, r := range results {
		block := "**" + r.Entry.Title + "**\n" + r.Entry.Content(language)
		size := len([]rune(block))
		if total+size > maxLength {
			if len(parts) == 0 {
				runes := []rune(block)
				parts = append(parts, string(runes[:maxLength]))
			}
			break
		}
		parts = append(parts, block)
		total += size + 2
	}
	return strings.Join(parts, "\n\n")
}

// similarity is 1 - levenshtein(a,b)/max(len(a),len(b)), on runes.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	max := len(ra)
	if len(rb) > max {
		max = len(rb)
	}
	return 1.0 - float64(levenshtein(ra, rb))/float64(max)
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
