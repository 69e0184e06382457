package text

import (
	"math"
	"testing"
)

func TestCalculateWordStats(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantTotal  int
		wantUnique int
		wantPerK   float64
	}{
		{
			name: "stopwords filtered, case folded",
			// Filtered tokens: cat, dog, ran, dog, ran, fast
			input:      "the cat and the Dog ran, the dog ran fast",
			wantTotal:  6,
			wantUnique: 4,
			wantPerK:   4.0 / 6.0 * 1000,
		},
		{
			name:       "empty input",
			input:      "",
			wantTotal:  0,
			wantUnique: 0,
			wantPerK:   0,
		},
		{
			name:       "only stopwords",
			input:      "the and of to",
			wantTotal:  0,
			wantUnique: 0,
			wantPerK:   0,
		},
		{
			name:       "apostrophes kept inside tokens",
			input:      "ain't ain't winning",
			wantTotal:  3,
			wantUnique: 2,
			wantPerK:   2.0 / 3.0 * 1000,
		},
		{
			name: "trailing apostrophe dropped by the boundary match",
			// "rollin'" tokenizes as "rollin", so all three collapse.
			input:      "rollin' rollin' rollin",
			wantTotal:  3,
			wantUnique: 1,
			wantPerK:   1.0 / 3.0 * 1000,
		},
		{
			name:       "digits and punctuation are not tokens",
			input:      "99 problems... but 1 word",
			wantTotal:  2, // problems, word ("but" is a stopword)
			wantUnique: 2,
			wantPerK:   1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateWordStats(tt.input, DefaultStopwords)

			if got.TotalWords != tt.wantTotal {
				t.Errorf("TotalWords = %d, want %d", got.TotalWords, tt.wantTotal)
			}
			if got.UniqueWords != tt.wantUnique {
				t.Errorf("UniqueWords = %d, want %d", got.UniqueWords, tt.wantUnique)
			}
			if math.Abs(got.UniquePerThousand-tt.wantPerK) > 0.001 {
				t.Errorf("UniquePerThousand = %f, want %f", got.UniquePerThousand, tt.wantPerK)
			}
		})
	}
}

func TestCalculateWordStats_UniqueNeverExceedsTotal(t *testing.T) {
	inputs := []string{
		"",
		"one",
		"one one one",
		"every word here is different entirely",
		"the quick brown fox jumps over the lazy dog",
		"don't don't won't can't shan't",
	}

	for _, input := range inputs {
		got := CalculateWordStats(input, DefaultStopwords)
		if got.UniqueWords > got.TotalWords {
			t.Errorf("input %q: UniqueWords %d > TotalWords %d", input, got.UniqueWords, got.TotalWords)
		}
	}
}

func TestCalculateWordStats_IndependentOfSanitizer(t *testing.T) {
	// The tokenizer must handle text that never went through SanitizeLyrics.
	raw := "[Hook] I don't chase, I replace"
	got := CalculateWordStats(raw, DefaultStopwords)

	// Tokens: hook, chase, replace ("i" and "don't" are stopwords).
	if got.TotalWords != 3 {
		t.Errorf("TotalWords = %d, want 3", got.TotalWords)
	}
	if got.UniqueWords != 3 {
		t.Errorf("UniqueWords = %d, want 3", got.UniqueWords)
	}
}

func TestStopwords(t *testing.T) {
	if !DefaultStopwords.Contains("the") {
		t.Error(`DefaultStopwords should contain "the"`)
	}
	if !DefaultStopwords.Contains("don't") {
		t.Error(`DefaultStopwords should contain "don't"`)
	}
	if DefaultStopwords.Contains("cat") {
		t.Error(`DefaultStopwords should not contain "cat"`)
	}

	custom := NewStopwords([]string{"yeah"})
	if !custom.Contains("yeah") {
		t.Error(`custom set should contain "yeah"`)
	}
	if got := CalculateWordStats("yeah yeah music", custom); got.TotalWords != 1 {
		t.Errorf("TotalWords with custom stopwords = %d, want 1", got.TotalWords)
	}
}
