// Package language normalizes the language tags ffprobe reports on streams.
//
// Containers tag streams with ISO 639-2 codes ("eng", "fre"), ISO 639-1
// codes, IETF tags or plain words, under several key spellings. This package
// extracts the tag, maps it onto one table of known languages, and falls back
// to golang.org/x/text display names for anything outside the table.
package language
