package download

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/lyrics-corpus/internal/config"
	"github.com/handiism/lyrics-corpus/internal/genius"
	"github.com/handiism/lyrics-corpus/internal/model"
	"github.com/handiism/lyrics-corpus/internal/text"
)

// fakeProvider returns canned data in place of the Genius client.
type fakeProvider struct {
	artist    *model.Artist
	songs     []*model.Song
	searchErr error
	songsErr  error
}

func (f *fakeProvider) SearchArtist(ctx context.Context, name string) (*model.Artist, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.artist, nil
}

func (f *fakeProvider) ArtistSongs(ctx context.Context, artist *model.Artist, maxSongs int, sortMode string) ([]*model.Song, error) {
	if f.songsErr != nil {
		return nil, f.songsErr
	}
	return f.songs, nil
}

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	settings := config.DefaultSettings()
	settings.OutputDir = t.TempDir()
	return settings
}

func TestManager_Run(t *testing.T) {
	provider := &fakeProvider{
		artist: &model.Artist{ID: 1, Name: "Test Artist"},
		songs: []*model.Song{
			{Title: "Zulu", Artist: "Test Artist", Lyrics: "[Chorus]\nzebra zebra"},
			{Title: "Alpha", Artist: "Test Artist", Lyrics: "aardvark 'quoted'"},
			{Title: "Empty", Artist: "Test Artist", Lyrics: ""},
		},
	}
	settings := testSettings(t)

	var events []ProgressEvent
	manager := NewManager(settings, provider, func(event ProgressEvent) {
		events = append(events, event)
	})

	result, err := manager.Run(context.Background(), "Test Artist")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Two songs written, in processing order, the empty one skipped.
	if len(result.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(result.Files))
	}
	if filepath.Base(result.Files[0]) != "Zulu.txt" || filepath.Base(result.Files[1]) != "Alpha.txt" {
		t.Errorf("files in wrong order: %v", result.Files)
	}

	// Lyrics were sanitized before writing.
	content, err := os.ReadFile(result.Files[0])
	if err != nil {
		t.Fatalf("reading written lyrics: %v", err)
	}
	if string(content) != "\nzebra zebra" {
		t.Errorf("written lyrics = %q, want sanitized text", content)
	}

	// Corpus is path-sorted: Alpha before Zulu regardless of processing order.
	corpusContent, err := os.ReadFile(result.CorpusPath)
	if err != nil {
		t.Fatalf("reading corpus: %v", err)
	}
	if string(corpusContent) != "aardvark quoted\n\nzebra zebra\n" {
		t.Errorf("corpus = %q, want sorted concatenation", corpusContent)
	}

	// Stats match an independent computation over the corpus file.
	want := text.CalculateWordStats(string(corpusContent), text.DefaultStopwords)
	if result.Stats != want {
		t.Errorf("Stats = %+v, want %+v", result.Stats, want)
	}

	saved, total := manager.GetProgress()
	if saved != 2 || total != 3 {
		t.Errorf("GetProgress() = (%d, %d), want (2, 3)", saved, total)
	}

	if len(events) == 0 {
		t.Error("expected progress events to be emitted")
	}
}

func TestManager_Run_AllSongsSkipped(t *testing.T) {
	provider := &fakeProvider{
		artist: &model.Artist{ID: 1, Name: "Quiet Artist"},
		songs: []*model.Song{
			{Title: "One", Lyrics: ""},
			{Title: "Two", Lyrics: ""},
		},
	}
	manager := NewManager(testSettings(t), provider, nil)

	_, err := manager.Run(context.Background(), "Quiet Artist")
	if !errors.Is(err, ErrNoLyricsSaved) {
		t.Errorf("err = %v, want ErrNoLyricsSaved", err)
	}
}

func TestManager_Run_NoSongs(t *testing.T) {
	provider := &fakeProvider{
		artist: &model.Artist{ID: 1, Name: "Unknown"},
		songs:  nil,
	}
	manager := NewManager(testSettings(t), provider, nil)

	_, err := manager.Run(context.Background(), "Unknown")
	if !errors.Is(err, ErrNoSongsFound) {
		t.Errorf("err = %v, want ErrNoSongsFound", err)
	}
}

func TestManager_Run_ArtistNotFoundPassesThrough(t *testing.T) {
	provider := &fakeProvider{searchErr: genius.ErrArtistNotFound}
	manager := NewManager(testSettings(t), provider, nil)

	_, err := manager.Run(context.Background(), "Nobody")
	if !errors.Is(err, genius.ErrArtistNotFound) {
		t.Errorf("err = %v, want the provider's ErrArtistNotFound", err)
	}
}

func TestManager_Run_SanitizesArtistFolderName(t *testing.T) {
	provider := &fakeProvider{
		artist: &model.Artist{ID: 1, Name: "AC/DC"},
		songs:  []*model.Song{{Title: "Back In Black", Lyrics: "thunder"}},
	}
	settings := testSettings(t)
	manager := NewManager(settings, provider, nil)

	result, err := manager.Run(context.Background(), "AC/DC")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	wantDir := filepath.Join(settings.OutputDir, "ACDC")
	if result.ArtistDir != wantDir {
		t.Errorf("ArtistDir = %q, want %q", result.ArtistDir, wantDir)
	}
}

func TestManager_Run_OverwritesExistingFiles(t *testing.T) {
	provider := &fakeProvider{
		artist: &model.Artist{ID: 1, Name: "Repeat"},
		songs:  []*model.Song{{Title: "Same Song", Lyrics: "new take"}},
	}
	settings := testSettings(t)

	artistDir := filepath.Join(settings.OutputDir, "Repeat")
	if err := os.MkdirAll(artistDir, 0755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(artistDir, "Same Song.txt")
	if err := os.WriteFile(stale, []byte("old take"), 0644); err != nil {
		t.Fatal(err)
	}

	manager := NewManager(settings, provider, nil)
	if _, err := manager.Run(context.Background(), "Repeat"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	content, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "new take" {
		t.Errorf("file content = %q, want the fresh lyrics", content)
	}
}
