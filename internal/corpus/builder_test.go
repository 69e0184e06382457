package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/lyrics-corpus/internal/text"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func TestBuild_SortsByPath(t *testing.T) {
	dir := t.TempDir()
	// Given in reverse order on purpose.
	files := []string{
		writeFile(t, dir, "b.txt", "B"),
		writeFile(t, dir, "a.txt", "A"),
	}

	corpusPath, combined, err := Build(files, dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if combined != "A\nB\n" {
		t.Errorf("combined text = %q, want %q", combined, "A\nB\n")
	}
	if corpusPath != filepath.Join(dir, "corpus.txt") {
		t.Errorf("corpus path = %q, want it under the artist dir", corpusPath)
	}

	// Input order must not be disturbed by the sort.
	if filepath.Base(files[0]) != "b.txt" {
		t.Errorf("input slice was reordered: %v", files)
	}
}

func TestBuild_WrittenFileMatchesReturnedText(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeFile(t, dir, "one.txt", "first song\nhas two lines"),
		writeFile(t, dir, "two.txt", "second song"),
	}

	corpusPath, combined, err := Build(files, dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	onDisk, err := os.ReadFile(corpusPath)
	if err != nil {
		t.Fatalf("reading written corpus: %v", err)
	}
	if string(onDisk) != combined {
		t.Errorf("corpus.txt = %q, returned text = %q; want identical", onDisk, combined)
	}

	// Statistics over the in-memory text must equal statistics over the file.
	memStats := text.CalculateWordStats(combined, text.DefaultStopwords)
	fileStats := text.CalculateWordStats(string(onDisk), text.DefaultStopwords)
	if memStats != fileStats {
		t.Errorf("stats differ: in-memory %+v vs re-read %+v", memStats, fileStats)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	dir := t.TempDir()

	corpusPath, combined, err := Build(nil, dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if combined != "" {
		t.Errorf("combined text = %q, want empty", combined)
	}

	onDisk, err := os.ReadFile(corpusPath)
	if err != nil {
		t.Fatalf("corpus file should still be written: %v", err)
	}
	if len(onDisk) != 0 {
		t.Errorf("corpus.txt should be empty, got %q", onDisk)
	}
}

func TestBuild_OverwritesExistingCorpus(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "corpus.txt", "stale content from a previous run")
	files := []string{writeFile(t, dir, "a.txt", "fresh")}

	_, combined, err := Build(files, dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if combined != "fresh\n" {
		t.Errorf("combined text = %q, want %q", combined, "fresh\n")
	}
}

func TestBuild_MissingFileFails(t *testing.T) {
	dir := t.TempDir()
	files := []string{filepath.Join(dir, "does-not-exist.txt")}

	if _, _, err := Build(files, dir); err == nil {
		t.Error("expected error for unreadable lyrics file, got none")
	}
}
