package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// ErrMissingToken is returned when no Genius API token can be found in the
// flags, the environment, or a .env file.
var ErrMissingToken = errors.New("Genius API token must be provided via -token or GENIUS_ACCESS_TOKEN")

// EnvToken is the environment variable holding the Genius API access token.
const EnvToken = "GENIUS_ACCESS_TOKEN"

// Settings holds all configuration options.
type Settings struct {
	// Download settings
	OutputDir          string  `json:"output_dir"`
	MaxSongs           int     `json:"max_songs"`
	TimeoutSeconds     int     `json:"timeout_seconds"`
	Sort               string  `json:"sort"` // popularity, title
	FetchMaxRetries    int     `json:"fetch_max_retries"`
	FetchRetryCooldown float64 `json:"fetch_retry_cooldown"`
	MaxConcurrentFetch int     `json:"max_concurrent_fetch"`

	// Song filtering
	SkipNonSongs  bool     `json:"skip_non_songs"`
	ExcludedTerms []string `json:"excluded_terms"`

	// Artist image settings
	SaveArtistImage    bool `json:"save_artist_image"`
	ArtistImageMaxSize int  `json:"artist_image_max_size"`
	ConvertImageToJPG  bool `json:"convert_image_to_jpg"`
}

// DefaultExcludedTerms lists title substrings for song variants that rarely
// contain unique lyrics.
var DefaultExcludedTerms = []string{"(Remix)", "(Live)", "Freestyle", "(Skit)", "Intro"}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputDir:          "Lyrics",
		MaxSongs:           50,
		TimeoutSeconds:     15,
		Sort:               "popularity",
		FetchMaxRetries:    3,
		FetchRetryCooldown: 0.5,
		MaxConcurrentFetch: 3,

		SkipNonSongs:  true,
		ExcludedTerms: append([]string(nil), DefaultExcludedTerms...),

		SaveArtistImage:    false,
		ArtistImageMaxSize: 1000,
		ConvertImageToJPG:  true,
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadToken resolves the Genius API token: an explicit flag value wins,
// otherwise the GENIUS_ACCESS_TOKEN environment variable is consulted, with
// a .env file in the working directory loaded first if present.
func LoadToken(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	_ = godotenv.Load()

	if token := os.Getenv(EnvToken); token != "" {
		return token, nil
	}
	return "", ErrMissingToken
}
