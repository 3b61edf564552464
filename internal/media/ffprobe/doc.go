// Package ffprobe turns ffprobe media descriptions into a typed model.
//
// ffprobe output reaches this package in one of two shapes. Output captured
// from an embedded ffmpeg session arrives as a single line in which every
// newline is written as `\n` and every structural quote as `\"`; Repair undoes
// exactly those two escapes. Output read straight from the ffprobe binary is
// already well-formed JSON and goes to Decode directly.
//
// Key types:
//   - MediaMetadata: container format plus the ordered stream list
//   - Format: container-level metadata (file name, duration, size, bitrate)
//   - Stream: one stream with a kind-specific attribute record
//   - Seconds, Integer: lenient decoders for fields ffprobe emits either as
//     numbers or as numeric strings
//
// Primary entry points:
//   - Parse: Repair followed by Decode
//   - Decode: decodes well-formed JSON
//   - Inspector.Inspect: runs ffprobe against a file and decodes the result
//   - Placeholder: the bundled sample used by debug views
//
// MediaMetadata equality is keyed on Format.FileName alone. Two decodes of
// the same file compare equal even when their streams differ.
package ffprobe
