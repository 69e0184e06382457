package text

// Stopwords is a set of lower-cased words excluded from the statistics.
type Stopwords map[string]struct{}

// NewStopwords builds a Stopwords set from a word list.
func NewStopwords(words []string) Stopwords {
	set := make(Stopwords, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is in the set. Words are stored lower-cased,
// so callers must lower-case before asking.
func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// DefaultStopwords is the fixed set of English function words excluded from
// the corpus statistics: articles, demonstratives, pronouns, auxiliary verbs,
// prepositions and conjunctions.
var DefaultStopwords = NewStopwords([]string{
	// Articles and demonstratives
	"a", "an", "the", "this", "that", "these", "those",

	// Pronouns and auxiliary verbs
	"am", "are", "be", "been", "being", "can", "could", "couldn't",
	"did", "didn't", "do", "does", "doesn't", "don't",
	"had", "hadn't", "has", "hasn't", "have", "haven't",
	"he", "her", "hers", "herself", "him", "himself", "his",
	"i", "is", "isn't", "it", "its", "itself",
	"may", "might", "me", "must", "my", "myself",
	"our", "ours", "ourselves",
	"she", "theirs", "them", "themselves", "they",
	"we", "were", "will", "won't", "would",
	"you", "your", "yours", "yourself", "yourselves",

	// Prepositions and conjunctions
	"about", "above", "after", "again", "against", "all", "also", "and",
	"any", "as", "at", "before", "below", "between", "both", "but", "by",
	"during", "for", "from", "further", "if", "in", "into", "near", "nor",
	"of", "off", "on", "or", "other", "over", "own", "same", "so", "some",
	"such", "than", "their", "then", "there", "to", "too", "under", "until",
	"up", "very", "was", "what", "when", "where", "which", "while", "who",
	"whom", "why", "with",
})
