// Package ioutils provides file system and image utilities for
// lyrics-corpus.
//
// This package contains:
//   - WriteText / ReadText: UTF-8 text file round-trips for lyrics and the
//     corpus file
//   - EnsureDir: recursive, idempotent directory creation for artist folders
//   - ImageService: resizing and JPEG conversion for the optional artist
//     folder image
//
// All file operations create-or-overwrite; nothing here is transactional.
package ioutils
