package ffprobe

import (
	"strconv"
	"strings"
	"time"

	"mediameta/internal/language"
)

// MediaMetadata is the decoded description of a single media file.
type MediaMetadata struct {
	// Streams lists video, audio, subtitle and data streams in ffprobe index order.
	Streams []Stream
	// Format holds container properties such as name, stream count, duration, size and bitrate.
	Format Format
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	FileName       string
	NbStreams      int
	NbPrograms     int
	FormatName     string
	FormatLongName string
	StartTime      *time.Duration
	Duration       *time.Duration
	Size           *int64
	BitRate        *int64
	ProbeScore     int
	Tags           map[string]string
}

// Kind is the ffprobe codec_type of a stream.
type Kind string

const (
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindSubtitle Kind = "subtitle"
	KindData     Kind = "data"
)

// Stream describes a single stream in the media container. Exactly one of
// Video, Audio, Subtitle or Data is set for the four known kinds; streams of
// any other kind (ffprobe also reports attachments) carry none.
type Stream struct {
	Index          int
	Kind           Kind
	CodecName      string
	CodecLongName  string
	CodecTagString string
	Profile        string
	TimeBase       string
	StartTime      *time.Duration
	Duration       *time.Duration
	BitRate        *int64
	NbFrames       *int64
	Disposition    map[string]int
	Tags           map[string]string

	Video    *VideoAttributes
	Audio    *AudioAttributes
	Subtitle *SubtitleAttributes
	Data     *DataAttributes
}

// VideoAttributes holds the video-only properties of a stream.
type VideoAttributes struct {
	Width              int
	Height             int
	CodedWidth         int
	CodedHeight        int
	PixFmt             string
	Level              int
	FieldOrder         string
	ColorRange         string
	ColorSpace         string
	ColorTransfer      string
	ColorPrimaries     string
	SampleAspectRatio  string
	DisplayAspectRatio string
	RFrameRate         string
	AvgFrameRate       string
	HasBFrames         int
	BitsPerRawSample   *int64
}

// AudioAttributes holds the audio-only properties of a stream.
type AudioAttributes struct {
	SampleFmt     string
	SampleRate    *int64
	Channels      int
	ChannelLayout string
	BitsPerSample int
}

// SubtitleAttributes holds the subtitle-only properties of a stream.
// Width and Height are only reported for bitmap subtitles.
type SubtitleAttributes struct {
	Width    int
	Height   int
	IsBitmap bool
}

// DataAttributes marks a data stream. ffprobe reports nothing kind-specific for them.
type DataAttributes struct{}

var bitmapSubtitleCodecs = map[string]bool{
	"hdmv_pgs_subtitle": true,
	"dvd_subtitle":      true,
	"dvb_subtitle":      true,
	"xsub":              true,
}

// Language returns the normalized language tag of the stream, or "" when untagged.
func (s Stream) Language() string {
	return language.ExtractFromTags(s.Tags)
}

// DisplayLanguage returns a human-readable language name for the stream.
func (s Stream) DisplayLanguage() string {
	return language.DisplayName(s.Language())
}

// IsDefault reports whether the stream carries the default disposition.
func (s Stream) IsDefault() bool {
	return s.Disposition["default"] == 1
}

// IsAttachedPic reports whether a video stream is embedded cover art.
func (s Stream) IsAttachedPic() bool {
	return s.Disposition["attached_pic"] == 1
}

// FrameRate returns the average frame rate of a video stream in frames per
// second, falling back to r_frame_rate. It returns 0 when neither parses.
func (s Stream) FrameRate() float64 {
	if s.Video == nil {
		return 0
	}
	if rate := parseRational(s.Video.AvgFrameRate); rate > 0 {
		return rate
	}
	return parseRational(s.Video.RFrameRate)
}

func parseRational(value string) float64 {
	num, den, found := strings.Cut(strings.TrimSpace(value), "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if !found {
		return n
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}

// StreamsOfKind returns the streams of the given kind in index order.
func (m MediaMetadata) StreamsOfKind(kind Kind) []Stream {
	var out []Stream
	for _, stream := range m.Streams {
		if stream.Kind == kind {
			out = append(out, stream)
		}
	}
	return out
}

// PrimaryVideo returns the first video stream that is not cover art.
func (m MediaMetadata) PrimaryVideo() (Stream, bool) {
	for _, stream := range m.Streams {
		if stream.Kind == KindVideo && !stream.IsAttachedPic() {
			return stream, true
		}
	}
	return Stream{}, false
}
