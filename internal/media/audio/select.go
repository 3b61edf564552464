package audio

import (
	"strconv"
	"strings"

	"mediameta/internal/language"
	"mediameta/internal/media/ffprobe"
)

// Traits are the derived properties used to rank an audio stream.
type Traits struct {
	Language string
	Channels int
	Lossless bool
	Spatial  bool
}

// Analyze derives the ranking traits of stream. Non-audio streams yield the
// zero value.
func Analyze(stream ffprobe.Stream) Traits {
	if stream.Audio == nil {
		return Traits{}
	}
	return Traits{
		Language: language.ToISO3(stream.Language()),
		Channels: channelCount(stream.Audio),
		Lossless: detectLossless(stream),
		Spatial:  detectSpatial(stream),
	}
}

// Primary returns the best audio stream for a viewer preferring the given
// language code (any ISO 639 form or IETF tag). It reports false when the
// metadata has no audio.
func Primary(streams []ffprobe.Stream, preferred string) (ffprobe.Stream, bool) {
	candidates := buildCandidates(streams)
	if len(candidates) == 0 {
		return ffprobe.Stream{}, false
	}

	want := language.ToISO3(preferred)
	pool := candidates
	if want != language.Undetermined {
		if matching := candidates.inLanguage(want); len(matching) > 0 {
			pool = matching
		}
	}
	return choosePrimary(pool).stream, true
}

// Describe returns a short human-readable summary such as
// "eng | Dolby TrueHD | 8ch | lossless | spatial".
func Describe(stream ffprobe.Stream) string {
	traits := Analyze(stream)
	parts := make([]string, 0, 5)
	if traits.Language != "" && traits.Language != language.Undetermined {
		parts = append(parts, traits.Language)
	}
	codec := stream.CodecLongName
	if codec == "" {
		codec = stream.CodecName
	}
	if codec != "" {
		parts = append(parts, codec)
	}
	if traits.Channels > 0 {
		parts = append(parts, strconv.Itoa(traits.Channels)+"ch")
	}
	if traits.Lossless {
		parts = append(parts, "lossless")
	}
	if traits.Spatial {
		parts = append(parts, "spatial")
	}
	if len(parts) == 0 {
		return "audio"
	}
	return strings.Join(parts, " | ")
}

type candidate struct {
	stream ffprobe.Stream
	order  int
	traits Traits
}

type candidateList []candidate

func (c candidateList) inLanguage(code string) candidateList {
	result := make(candidateList, 0, len(c))
	for _, cand := range c {
		if cand.traits.Language == code {
			result = append(result, cand)
		}
	}
	return result
}

func choosePrimary(candidates candidateList) candidate {
	best := candidates[0]
	bestScore := scorePrimary(best)
	for _, cand := range candidates[1:] {
		if score := scorePrimary(cand); score > bestScore {
			best = cand
			bestScore = score
		}
	}
	return best
}

func scorePrimary(cand candidate) float64 {
	score := 0.0

	switch channels := cand.traits.Channels; {
	case channels >= 8:
		score += 1000
	case channels >= 6:
		score += 800
	case channels >= 4:
		score += 600
	case channels >= 2:
		score += 400
	default:
		score += 200
	}

	if cand.traits.Lossless {
		score += 100
	} else {
		score += 50
	}

	if cand.stream.IsDefault() {
		score += 5
	}

	// earlier tracks win ties
	score -= float64(cand.order) * 0.1

	return score
}

func buildCandidates(streams []ffprobe.Stream) candidateList {
	result := make(candidateList, 0)
	for _, stream := range streams {
		if stream.Audio == nil {
			continue
		}
		result = append(result, candidate{
			stream: stream,
			order:  len(result),
			traits: Analyze(stream),
		})
	}
	return result
}

func channelCount(attrs *ffprobe.AudioAttributes) int {
	if attrs.Channels > 0 {
		return attrs.Channels
	}
	layout := strings.ToLower(strings.TrimSpace(attrs.ChannelLayout))
	switch {
	case layout == "":
		return 0
	case layout == "mono":
		return 1
	case layout == "stereo":
		return 2
	case strings.HasPrefix(layout, "7.1"):
		return 8
	case strings.HasPrefix(layout, "6.1"):
		return 7
	case strings.HasPrefix(layout, "5.1"):
		return 6
	case strings.HasPrefix(layout, "4.0"), strings.HasPrefix(layout, "quad"):
		return 4
	case strings.HasPrefix(layout, "2.1"):
		return 3
	}
	total := 0
	for _, part := range strings.Split(layout, ".") {
		part = strings.Trim(part, "abcdefghijklmnopqrstuvwxyz ()")
		if n, err := strconv.Atoi(part); err == nil {
			total += n
		}
	}
	return total
}

var spatialKeywords = []string{
	"atmos",
	"dts:x",
	"dtsx",
	"dts-x",
	"auro-3d",
	"imax enhanced",
}

func detectSpatial(stream ffprobe.Stream) bool {
	combined := strings.ToLower(strings.Join([]string{
		stream.CodecLongName,
		stream.Profile,
		stream.CodecName,
		stream.Tags["title"],
		stream.Tags["TITLE"],
	}, " "))
	for _, keyword := range spatialKeywords {
		if strings.Contains(combined, keyword) {
			return true
		}
	}
	return false
}

var losslessCodecs = map[string]bool{
	"truehd":     true,
	"flac":       true,
	"mlp":        true,
	"alac":       true,
	"pcm_s16le":  true,
	"pcm_s24le":  true,
	"pcm_s32le":  true,
	"pcm_bluray": true,
	"pcm_s24be":  true,
	"pcm_s16be":  true,
}

func detectLossless(stream ffprobe.Stream) bool {
	if losslessCodecs[strings.ToLower(stream.CodecName)] {
		return true
	}
	combined := strings.ToLower(stream.CodecLongName + " " + stream.Profile)
	for _, marker := range []string{"lossless", "master audio", "dts-hd ma"} {
		if strings.Contains(combined, marker) {
			return true
		}
	}
	return false
}
