// Package model defines the core data structures shared across the
// lyrics-corpus application.
//
// # Artist
//
// Artist identifies a Genius artist and carries the optional image URL:
//
//	artist := &model.Artist{ID: 45, Name: "Eminem", ImageURL: imgURL}
//	if artist.HasImage() { ... }
//
// # Song
//
// Song is one song with its raw scraped lyrics. Songs flow from the Genius
// client to the download manager, which sanitizes the lyrics and writes one
// text file per song:
//
//	song := &model.Song{Title: "Lose Yourself", Artist: "Eminem", Lyrics: raw}
//	if !song.HasLyrics() {
//	    // skipped, no file is written
//	}
//
// Both types are plain immutable data; file path computation lives with the
// download manager because it depends on the filename sanitizer.
package model
