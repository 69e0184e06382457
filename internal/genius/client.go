package genius

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/lyrics-corpus/internal/genius/dto"
	"github.com/handiism/lyrics-corpus/internal/model"
)

// ErrArtistNotFound is returned when a search yields no hit whose primary
// artist matches the requested name.
var ErrArtistNotFound = errors.New("no matching artist found on Genius")

const (
	defaultBaseURL = "https://api.genius.com"
	songsPerPage   = 50
	userAgent      = "lyrics-corpus"
)

// ClientOptions configures a Client at construction. The zero value of each
// optional field is replaced with a default; options are not mutable after
// NewClient returns.
type ClientOptions struct {
	// Token is the Genius API access token (required).
	Token string

	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string

	// Timeout applies to every API and page request. Default 15s.
	Timeout time.Duration

	// SkipNonSongs drops entries whose lyrics_state is not "complete",
	// filtering out tracklists, booklets and similar non-song pages.
	SkipNonSongs bool

	// ExcludedTerms drops songs whose title contains any of these
	// substrings (e.g. "(Remix)", "(Live)").
	ExcludedTerms []string

	// MaxConcurrentFetch bounds parallel lyrics page fetches. Default 3.
	MaxConcurrentFetch int

	// MaxRetries is the number of attempts per lyrics page. Default 3.
	MaxRetries int

	// RetryCooldown is the initial backoff between attempts, doubled after
	// each failure. Default 500ms.
	RetryCooldown time.Duration
}

// Client talks to the Genius API and scrapes lyrics from song pages.
type Client struct {
	api  *resty.Client // authenticated, rooted at the API base URL
	web  *resty.Client // plain client for song pages and images
	opts ClientOptions
}

// NewClient creates a Client from immutable options.
func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxConcurrentFetch <= 0 {
		opts.MaxConcurrentFetch = 3
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.RetryCooldown <= 0 {
		opts.RetryCooldown = 500 * time.Millisecond
	}

	api := resty.New().
		SetBaseURL(opts.BaseURL).
		SetAuthToken(opts.Token).
		SetHeader("User-Agent", userAgent).
		SetTimeout(opts.Timeout)

	web := resty.New().
		SetHeader("User-Agent", userAgent).
		SetTimeout(opts.Timeout)

	return &Client{api: api, web: web, opts: opts}
}

// SearchArtist finds the artist whose name matches the query
// (case-insensitive). Genius search returns song hits, so the match is made
// against each hit's primary artist. Returns ErrArtistNotFound when nothing
// matches.
func (c *Client) SearchArtist(ctx context.Context, name string) (*model.Artist, error) {
	var out dto.JSONSearchResponse
	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("q", name).
		SetResult(&out).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("genius search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("genius search: HTTP %s", resp.Status())
	}

	for _, hit := range out.Response.Hits {
		if hit.Type != "song" {
			continue
		}
		if strings.EqualFold(hit.Result.PrimaryArtist.Name, name) {
			return hit.Result.PrimaryArtist.ToArtist(), nil
		}
	}

	return nil, ErrArtistNotFound
}

// ArtistSongs pages through the artist's songs, applies the configured
// filters, scrapes lyrics for each kept song, and returns at most maxSongs
// songs in the order Genius lists them for the given sort mode
// ("popularity" or "title").
//
// Lyrics pages are fetched with bounded concurrency; song order is
// preserved. A song whose lyrics page cannot be fetched is returned with
// empty lyrics so the caller can apply its skip policy.
func (c *Client) ArtistSongs(ctx context.Context, artist *model.Artist, maxSongs int, sortMode string) ([]*model.Song, error) {
	songs, err := c.listSongs(ctx, artist, maxSongs, sortMode)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.MaxConcurrentFetch)
	for _, song := range songs {
		song := song
		g.Go(func() error {
			lyrics, err := c.fetchLyrics(gctx, song.URL)
			if err != nil {
				// Missing lyrics is a per-song skip condition downstream,
				// except for cancellation which aborts the whole fetch.
				if gctx.Err() != nil {
					return gctx.Err()
				}
				return nil
			}
			song.Lyrics = lyrics
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return songs, nil
}

// listSongs collects song metadata from the paged songs endpoint.
func (c *Client) listSongs(ctx context.Context, artist *model.Artist, maxSongs int, sortMode string) ([]*model.Song, error) {
	var songs []*model.Song

	page := 1
	for page > 0 && len(songs) < maxSongs {
		var out dto.JSONSongsResponse
		resp, err := c.api.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"sort":     sortMode,
				"per_page": strconv.Itoa(songsPerPage),
				"page":     strconv.Itoa(page),
			}).
			SetResult(&out).
			Get(fmt.Sprintf("/artists/%d/songs", artist.ID))
		if err != nil {
			return nil, fmt.Errorf("genius artist songs: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("genius artist songs: HTTP %s", resp.Status())
		}

		for _, js := range out.Response.Songs {
			if !c.keepSong(js, artist) {
				continue
			}
			songs = append(songs, js.ToSong())
			if len(songs) == maxSongs {
				break
			}
		}

		if out.Response.NextPage == nil {
			break
		}
		page = *out.Response.NextPage
	}

	return songs, nil
}

// keepSong applies the configured song filters.
func (c *Client) keepSong(js dto.JSONSong, artist *model.Artist) bool {
	if js.PrimaryArtist.ID != artist.ID {
		return false
	}
	if c.opts.SkipNonSongs && !js.IsComplete() {
		return false
	}
	return !titleContainsAny(js.Title, c.opts.ExcludedTerms)
}

// titleContainsAny reports whether the title contains any excluded term as a
// literal substring.
func titleContainsAny(title string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(title, term) {
			return true
		}
	}
	return false
}

// ArtistImage downloads the artist's image bytes.
func (c *Client) ArtistImage(ctx context.Context, artist *model.Artist) ([]byte, error) {
	if !artist.HasImage() {
		return nil, fmt.Errorf("artist %s has no image", artist.Name)
	}

	resp, err := c.web.R().SetContext(ctx).Get(artist.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching artist image: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching artist image: HTTP %s", resp.Status())
	}
	return resp.Body(), nil
}
