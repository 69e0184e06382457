package text

import (
	"regexp"
	"strings"
)

// WordStats holds the lexical statistics computed over a corpus.
type WordStats struct {
	// TotalWords is the number of tokens left after stopword filtering,
	// duplicates included.
	TotalWords int

	// UniqueWords is the number of distinct tokens after stopword filtering.
	// Always <= TotalWords.
	UniqueWords int

	// UniquePerThousand is UniqueWords normalized to a rate per 1000 words.
	// Zero when the corpus has no countable words.
	UniquePerThousand float64
}

// Maximal runs of ASCII letters and apostrophes, so contractions like
// "don't" stay one token. The tokenizer does not assume the input already
// went through SanitizeLyrics.
var wordRe = regexp.MustCompile(`\b[a-zA-Z']+\b`)

// CalculateWordStats lower-cases the text, tokenizes it, drops every token
// present in stopwords, and returns the resulting counts. Pure and
// deterministic; an empty or all-stopword input yields all zeros.
func CalculateWordStats(s string, stopwords Stopwords) WordStats {
	words := wordRe.FindAllString(strings.ToLower(s), -1)

	total := 0
	seen := make(map[string]struct{})
	for _, word := range words {
		if _, skip := stopwords[word]; skip {
			continue
		}
		total++
		seen[word] = struct{}{}
	}

	stats := WordStats{
		TotalWords:  total,
		UniqueWords: len(seen),
	}
	if total > 0 {
		stats.UniquePerThousand = float64(stats.UniqueWords) / float64(total) * 1000
	}

	return stats
}
