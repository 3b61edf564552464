package ffprobe

import (
	"strings"
	"unicode/utf8"
)

// Repair converts the escaped single-line dialect captured from an embedded
// ffmpeg session into well-formed JSON.
//
// From:
//
//	{\n    \"streams\": [...], \"format\": {...}}
//
// To:
//
//	{
//	    "streams": [...], "format": {...}}
//
// Only the `\n` and `\"` escapes are rewritten, in that order. Text without
// them passes through unchanged. The result is UTF-8; when it is not valid
// UTF-8 Repair reports false and the input should be dropped.
func Repair(raw string) ([]byte, bool) {
	converted := strings.ReplaceAll(raw, `\n`, "\n")
	converted = strings.ReplaceAll(converted, `\"`, `"`)
	if !utf8.ValidString(converted) {
		return nil, false
	}
	return []byte(converted), true
}

// Parse repairs raw captured output and decodes it. A repair failure returns
// ErrRepair; decode failures return a *DecodeError.
func Parse(raw string) (MediaMetadata, error) {
	data, ok := Repair(raw)
	if !ok {
		return MediaMetadata{}, ErrRepair
	}
	return Decode(data)
}
