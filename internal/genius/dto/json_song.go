// Package dto contains the JSON structures returned by the Genius API,
// separate from the domain models in internal/model.
package dto

import "github.com/handiism/lyrics-corpus/internal/model"

// JSONSong mirrors a song object from the Genius API (only fields we need).
type JSONSong struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	URL           string     `json:"url"`
	LyricsState   string     `json:"lyrics_state"`
	PrimaryArtist JSONArtist `json:"primary_artist"`
}

// IsComplete reports whether Genius considers the song's lyrics finished.
// Entries like tracklists or booklets carry a different lyrics_state.
func (s JSONSong) IsComplete() bool {
	return s.LyricsState == "complete"
}

// ToSong converts the API object to the domain model. Lyrics are not part
// of the API response; they are scraped from the song page afterwards.
func (s JSONSong) ToSong() *model.Song {
	return &model.Song{
		Title:  s.Title,
		Artist: s.PrimaryArtist.Name,
		URL:    s.URL,
	}
}

// JSONArtist mirrors an artist object from the Genius API.
type JSONArtist struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// ToArtist converts the API object to the domain model.
func (a JSONArtist) ToArtist() *model.Artist {
	return &model.Artist{
		ID:       a.ID,
		Name:     a.Name,
		ImageURL: a.ImageURL,
	}
}

// JSONSearchResponse mirrors the /search endpoint envelope.
type JSONSearchResponse struct {
	Response struct {
		Hits []JSONHit `json:"hits"`
	} `json:"response"`
}

// JSONHit is one search hit; Genius wraps every result in a typed hit.
type JSONHit struct {
	Type   string   `json:"type"`
	Result JSONSong `json:"result"`
}

// JSONSongsResponse mirrors the /artists/:id/songs endpoint envelope.
// NextPage is null on the last page.
type JSONSongsResponse struct {
	Response struct {
		Songs    []JSONSong `json:"songs"`
		NextPage *int       `json:"next_page"`
	} `json:"response"`
}
