// Package fileutil lists directories and reads the text inputs of a comparison.
//
// # Listing
//
// ListFiles returns the names of the regular files directly inside a
// directory, sorted ascending by name. Subdirectories are excluded; symlinks
// are included when they resolve to a regular file. The order is the one used
// for 1-based selection indices.
//
//	files, err := fileutil.ListFiles("/data/incoming")
//
// # Text input
//
// ReadText loads a whole file as a UTF-8 string. Files starting with a UTF-8
// or UTF-16 byte order mark are decoded; anything that is still not valid
// UTF-8 is rejected with a DecodeError.
//
// ReadTerms loads a newline-delimited terms file: each line is stripped of
// surrounding whitespace and blank lines are dropped. Duplicate lines are kept.
package fileutil
