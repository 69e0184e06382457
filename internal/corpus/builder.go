package corpus

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	ioutils "github.com/handiism/lyrics-corpus/internal/io"
)

// FileName is the name of the corpus file inside the artist folder.
const FileName = "corpus.txt"

// Build concatenates the given lyrics files into a single corpus file inside
// artistDir.
//
// Files are read in lexicographic path order, not input order, so the corpus
// is deterministic even when retrieval order varies between runs. Each
// file's content is followed by a single newline, including the last one.
// The result is written to <artistDir>/corpus.txt, overwriting any previous
// corpus.
//
// Build returns the corpus path and the combined text so callers can compute
// statistics without re-reading the file just written. Any read or write
// failure is fatal for the run; there is no partial-corpus recovery.
func Build(files []string, artistDir string) (string, string, error) {
	sorted := append([]string(nil), files...)
	sort.Strings(sorted)

	var sb strings.Builder
	for _, path := range sorted {
		content, err := ioutils.ReadText(path)
		if err != nil {
			return "", "", fmt.Errorf("reading lyrics file %s: %w", path, err)
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	corpusPath := filepath.Join(artistDir, FileName)
	corpusText := sb.String()
	if err := ioutils.WriteText(corpusPath, corpusText); err != nil {
		return "", "", fmt.Errorf("writing corpus file: %w", err)
	}

	return corpusPath, corpusText, nil
}
