package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/handiism/lyrics-corpus/internal/config"
	"github.com/handiism/lyrics-corpus/internal/corpus"
	ioutils "github.com/handiism/lyrics-corpus/internal/io"
	"github.com/handiism/lyrics-corpus/internal/model"
	"github.com/handiism/lyrics-corpus/internal/text"
)

// ErrNoSongsFound is returned when the provider yields an artist but not a
// single song to process.
var ErrNoSongsFound = errors.New("no songs found for artist")

// ErrNoLyricsSaved is returned when every song was skipped or filtered and
// nothing was written to disk.
var ErrNoLyricsSaved = errors.New("no lyrics were saved; ensure the artist has songs with lyrics")

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// SongProvider is the retrieval capability the Manager drives. The Genius
// client implements it; tests inject fakes.
type SongProvider interface {
	// SearchArtist resolves an artist by name.
	SearchArtist(ctx context.Context, name string) (*model.Artist, error)

	// ArtistSongs returns up to maxSongs songs with lyrics attached, in
	// provider order for the given sort mode.
	ArtistSongs(ctx context.Context, artist *model.Artist, maxSongs int, sortMode string) ([]*model.Song, error)
}

// ImageProvider is the optional capability of fetching the artist image.
// Providers that implement it are used when SaveArtistImage is enabled.
type ImageProvider interface {
	ArtistImage(ctx context.Context, artist *model.Artist) ([]byte, error)
}

// Result is the outcome of a completed pipeline run.
type Result struct {
	// ArtistDir is the folder the lyrics were written into.
	ArtistDir string

	// Files lists the written lyrics files in processing order.
	Files []string

	// CorpusPath is the written corpus file.
	CorpusPath string

	// Stats are the lexical statistics over the corpus text.
	Stats text.WordStats
}

// Manager coordinates the lyrics pipeline: retrieval, sanitization,
// per-song files, corpus assembly and statistics.
type Manager struct {
	settings     *config.Settings
	provider     SongProvider
	imageService *ioutils.ImageService
	stopwords    text.Stopwords

	totalSongs int32
	savedFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new Manager. onProgress may be nil.
func NewManager(settings *config.Settings, provider SongProvider, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:     settings,
		provider:     provider,
		imageService: ioutils.NewImageService(),
		stopwords:    text.DefaultStopwords,
		onProgress:   onProgress,
	}
}

// Run executes the whole pipeline for one artist and returns the written
// paths, the corpus location and the statistics.
//
// The pipeline is sequential: songs are written in provider order, then the
// corpus is assembled (path-sorted), then statistics are computed over the
// corpus text returned by the builder. Any stage failure aborts the run.
func (m *Manager) Run(ctx context.Context, artistName string) (*Result, error) {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Searching Genius for %s", artistName), Level: LevelVerbose})

	artist, err := m.provider.SearchArtist(ctx, artistName)
	if err != nil {
		return nil, err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Found artist: %s", artist.Name), Level: LevelInfo})

	songs, err := m.provider.ArtistSongs(ctx, artist, m.settings.MaxSongs, m.settings.Sort)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoSongsFound, artist.Name)
	}
	atomic.StoreInt32(&m.totalSongs, int32(len(songs)))

	artistDir := filepath.Join(m.settings.OutputDir, text.SanitizeFileName(artist.Name))
	if err := ioutils.EnsureDir(artistDir); err != nil {
		return nil, fmt.Errorf("creating artist folder: %w", err)
	}

	if m.settings.SaveArtistImage {
		m.saveArtistImage(ctx, artist, artistDir)
	}

	written, err := m.writeSongs(songs, artistDir)
	if err != nil {
		return nil, err
	}
	if len(written) == 0 {
		return nil, ErrNoLyricsSaved
	}

	corpusPath, corpusText, err := corpus.Build(written, artistDir)
	if err != nil {
		return nil, err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Corpus created at: %s", corpusPath), Level: LevelSuccess})

	return &Result{
		ArtistDir:  artistDir,
		Files:      written,
		CorpusPath: corpusPath,
		Stats:      text.CalculateWordStats(corpusText, m.stopwords),
	}, nil
}

// GetProgress returns how many songs have been saved out of how many were
// retrieved. Safe to call from another goroutine while Run is in flight.
func (m *Manager) GetProgress() (saved, total int32) {
	return atomic.LoadInt32(&m.savedFiles), atomic.LoadInt32(&m.totalSongs)
}

// writeSongs sanitizes and writes one file per song with lyrics, in order.
// Songs without lyrics are skipped silently apart from a verbose notice.
func (m *Manager) writeSongs(songs []*model.Song, artistDir string) ([]string, error) {
	var written []string

	for _, song := range songs {
		if !song.HasLyrics() {
			m.progress(ProgressEvent{Message: fmt.Sprintf("No lyrics for %s, skipping", song.Title), Level: LevelVerbose})
			continue
		}

		cleaned := text.SanitizeLyrics(song.Lyrics)
		fileName := text.SanitizeFileName(song.Title) + ".txt"
		path := filepath.Join(artistDir, fileName)

		if err := ioutils.WriteText(path, cleaned); err != nil {
			return nil, fmt.Errorf("writing %s: %w", fileName, err)
		}

		written = append(written, path)
		atomic.AddInt32(&m.savedFiles, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Saved: %s", path), Level: LevelInfo})
	}

	return written, nil
}

// saveArtistImage fetches, resizes and writes the artist image next to the
// lyrics. Failures only warn; the pipeline does not depend on the image.
func (m *Manager) saveArtistImage(ctx context.Context, artist *model.Artist, artistDir string) {
	images, ok := m.provider.(ImageProvider)
	if !ok || !artist.HasImage() {
		return
	}

	data, err := images.ArtistImage(ctx, artist)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching artist image: %v", err), Level: LevelWarning})
		return
	}

	if maxSize := m.settings.ArtistImageMaxSize; maxSize > 0 {
		if resized, err := m.imageService.Resize(data, maxSize, maxSize); err == nil {
			data = resized
		}
	}
	if m.settings.ConvertImageToJPG {
		if converted, err := m.imageService.ConvertToJPEG(data); err == nil {
			data = converted
		}
	}

	path := filepath.Join(artistDir, "artist.jpg")
	if err := ioutils.WriteBytes(path, data); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error saving artist image: %v", err), Level: LevelWarning})
		return
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved artist image: %s", path), Level: LevelVerbose})
}

// progress reports an event to the configured callback.
func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
