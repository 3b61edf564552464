package inspect

import "mediameta/internal/media/ffprobe"

// Summary condenses a batch into counts plus the distinct decoded files.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	// Unique holds successful metadata deduplicated by file name, first wins.
	Unique []ffprobe.MediaMetadata
}

// Summarize counts results and deduplicates successful ones by identity.
func Summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}
	decoded := make([]ffprobe.MediaMetadata, 0, len(results))
	for _, result := range results {
		if !result.OK() {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		decoded = append(decoded, result.Metadata)
	}
	summary.Unique = ffprobe.Dedupe(decoded)
	return summary
}

// Failures returns the failed results in input order.
func Failures(results []Result) []Result {
	var out []Result
	for _, result := range results {
		if !result.OK() {
			out = append(out, result)
		}
	}
	return out
}
