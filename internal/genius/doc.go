// Package genius provides the client for the Genius lyrics provider.
//
// The package covers two surfaces:
//
//  1. The REST API (search, artist songs) for discovering an artist and the
//     metadata of their songs
//  2. The public song pages, which are scraped for the lyrics text since the
//     API does not serve lyrics
//
// # Usage
//
//	client := genius.NewClient(genius.ClientOptions{
//	    Token:         token,
//	    SkipNonSongs:  true,
//	    ExcludedTerms: config.DefaultExcludedTerms,
//	})
//
//	artist, err := client.SearchArtist(ctx, "Eminem")
//	if errors.Is(err, genius.ErrArtistNotFound) {
//	    // nothing on Genius under that name
//	}
//
//	songs, err := client.ArtistSongs(ctx, artist, 50, "popularity")
//
// # Filtering
//
// The client drops entries whose lyrics_state is not "complete" (tracklists
// and similar non-songs) and songs whose title contains a configured
// excluded term. Both filters are set once at construction via
// ClientOptions.
//
// # Concurrency and retries
//
// Song metadata is paged sequentially; the per-song lyrics pages are fetched
// with a bounded errgroup, preserving song order. Each page fetch retries
// with exponential backoff. A song whose page stays unreachable is returned
// with empty lyrics rather than failing the batch.
package genius
