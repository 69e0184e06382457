// Package download orchestrates the lyrics pipeline for one artist.
//
// # Manager
//
// The Manager drives the whole run:
//
//  1. Resolve the artist through the SongProvider
//  2. Fetch the artist's songs (filtered and capped by configuration)
//  3. Sanitize each song's lyrics and write one .txt file per song
//  4. Assemble the per-artist corpus file
//  5. Compute word statistics over the corpus text
//
// # Basic Usage
//
//	manager := download.NewManager(settings, client, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := manager.Run(ctx, "Eminem")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.CorpusPath, result.Stats.UniquePerThousand)
//
// # Error semantics
//
// A song without lyrics is skipped, not an error. The run fails with
// ErrNoLyricsSaved only when every song was skipped, and with
// ErrNoSongsFound when the provider returned an artist with nothing to
// process. Provider errors (including the Genius client's
// ErrArtistNotFound) pass through untouched; file system errors are wrapped
// with context. Nothing is retried at this level.
//
// # Progress Tracking
//
// Progress is reported through a callback receiving ProgressEvent values
// with levels (Info, Verbose, Warning, Error, Success); GetProgress exposes
// saved/total counters for UIs that poll instead.
package download
