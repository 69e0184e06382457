package model

// Artist represents a Genius artist as returned by the search endpoint.
//
// Artist carries the identifiers needed to page through the artist's songs
// plus the optional image URL used when saving the artist image into the
// lyrics folder.
type Artist struct {
	// ID is the Genius artist ID used by the songs endpoint.
	ID int

	// Name is the artist name as Genius spells it.
	Name string

	// ImageURL points at the artist image on Genius.
	// Empty string if no image is available.
	ImageURL string
}

// HasImage returns true if the artist has an image available for download.
func (a *Artist) HasImage() bool {
	return a.ImageURL != ""
}

// Song represents a single song with its fetched lyrics.
//
// Songs are produced by the retrieval client and consumed once by the
// download manager: the lyrics are sanitized, written to disk, and the Song
// itself is discarded.
type Song struct {
	// Title is the song title.
	Title string

	// Artist is the primary artist name.
	Artist string

	// URL is the Genius song page the lyrics were scraped from.
	URL string

	// Lyrics contains the raw scraped lyrics.
	// Empty string if no lyrics could be fetched.
	Lyrics string
}

// HasLyrics returns true if the song has a non-empty lyrics body.
func (s *Song) HasLyrics() bool {
	return s.Lyrics != ""
}
