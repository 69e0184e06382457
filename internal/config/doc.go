// Package config handles application settings and credentials for
// lyrics-corpus.
//
// # Settings
//
// Settings are stored as JSON. DefaultSettings returns sensible defaults;
// Load falls back to those when the file does not exist:
//
//	settings, err := config.Load("config.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	settings.MaxSongs = 100
//	settings.Save("config.json")
//
// # Credentials
//
// The Genius API token never lives in the settings file. LoadToken resolves
// it from (in order) an explicit flag value, a .env file in the working
// directory, and the GENIUS_ACCESS_TOKEN environment variable:
//
//	token, err := config.LoadToken(*tokenFlag)
//	if errors.Is(err, config.ErrMissingToken) {
//	    // no credential, abort before doing any work
//	}
package config
