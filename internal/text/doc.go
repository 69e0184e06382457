// Package text implements the text cleanup and statistics logic that the
// rest of the application is built around.
//
// # Sanitizers
//
// SanitizeLyrics strips bracketed section markers such as [Chorus] or
// [Verse 1] along with quote characters, leaving only sung/spoken content:
//
//	clean := text.SanitizeLyrics("[Chorus]\nDon't stop")
//	// clean == "\nDont stop"
//
// SanitizeFileName removes characters that are unsafe in file names and
// falls back to "untitled" when nothing usable remains:
//
//	text.SanitizeFileName("Lose Yourself")  // "Lose Yourself"
//	text.SanitizeFileName("a/b:c")          // "abc"
//	text.SanitizeFileName("***")            // "untitled"
//
// Both sanitizers are pure functions and never fail.
//
// # Word Statistics
//
// CalculateWordStats tokenizes arbitrary text, drops stopwords, and reports
// lexical diversity metrics:
//
//	stats := text.CalculateWordStats(corpus, text.DefaultStopwords)
//	fmt.Printf("%d total, %d unique, %.2f per 1k\n",
//	    stats.TotalWords, stats.UniqueWords, stats.UniquePerThousand)
//
// The tokenizer matches runs of ASCII letters and apostrophes, so it works
// on raw text as well as text that already went through SanitizeLyrics.
//
// The stopword set is plain immutable data passed in by the caller;
// DefaultStopwords is the set used by the CLI.
package text
