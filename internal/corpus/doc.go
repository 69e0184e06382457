// Package corpus assembles the per-artist corpus file from individual
// lyrics files.
//
// Build reads every written lyrics file in sorted path order and joins them
// into one text blob, one newline after each file:
//
//	path, combined, err := corpus.Build(writtenFiles, artistDir)
//	if err != nil {
//	    return err
//	}
//	stats := text.CalculateWordStats(combined, text.DefaultStopwords)
//
// The returned combined text is byte-identical to the written corpus.txt.
package corpus
