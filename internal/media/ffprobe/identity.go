package ffprobe

// MediaMetadata identity is deliberately narrow: two values describe the
// same entity when their Format.FileName matches, whatever their streams or
// other format fields say. Do not widen Equal into a structural comparison.

// Key returns the identity key of m. Equal values always share a key, so
// Key is suitable for map keys and deduplication.
func (m MediaMetadata) Key() string {
	return m.Format.FileName
}

// Equal reports whether m and other describe the same file.
func (m MediaMetadata) Equal(other MediaMetadata) bool {
	return m.Format.FileName == other.Format.FileName
}

// Dedupe drops later entries whose identity key was already seen, keeping
// the first occurrence of each file.
func Dedupe(items []MediaMetadata) []MediaMetadata {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]MediaMetadata, 0, len(items))
	for _, item := range items {
		key := item.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
