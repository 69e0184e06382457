package text

import (
	"regexp"
	"strings"
)

var (
	// Bracketed spans like [Chorus] or [Verse 1]. Non-greedy, so each match
	// stops at the first closing bracket; nested brackets are not handled.
	sectionHeaderRe = regexp.MustCompile(`\[.*?\]`)

	// Straight single/double quotes plus the right single curly quote that
	// Genius uses for contractions.
	quoteCharsRe = regexp.MustCompile(`["'’]`)

	// Characters that are reserved or unsafe in common filesystems.
	reservedFileCharsRe = regexp.MustCompile(`[\\/:*?"<>|]`)
)

// SanitizeLyrics removes bracketed section markers and quote characters from
// raw lyrics text. Everything outside the brackets is preserved verbatim,
// including whitespace, so applying it twice is a no-op.
func SanitizeLyrics(lyrics string) string {
	noSections := sectionHeaderRe.ReplaceAllString(lyrics, "")
	return quoteCharsRe.ReplaceAllString(noSections, "")
}

// SanitizeFileName removes characters that do not play well in file names
// and trims surrounding whitespace. An input that sanitizes down to nothing
// yields "untitled" so callers always get a usable name.
func SanitizeFileName(name string) string {
	cleaned := reservedFileCharsRe.ReplaceAllString(name, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "untitled"
	}
	return cleaned
}
