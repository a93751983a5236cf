// Package matcher decides whether search terms are present in a haystack.
//
// Two haystack shapes are supported:
//
//   - Text: the whole content of a file. A term is present when it occurs as
//     a literal, case-insensitive substring. No pattern syntax is interpreted.
//   - List: an exact listing of names. A term is present only when it equals
//     an entry, ignoring case.
//
// Both shapes retry with the term's basename when the full term is absent.
// Basenames treat '/' and '\' as path separators regardless of platform.
//
// Comparison is performed on NFC-normalised, case-folded text.
package matcher
