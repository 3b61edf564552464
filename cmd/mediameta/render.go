package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mediameta/internal/locale"
	"mediameta/internal/media/audio"
	"mediameta/internal/media/ffprobe"
	"mediameta/internal/units"
)

const unknownValue = "-"

type displayOptions struct {
	Locale   locale.Provider
	Rounding units.Rounding
	SizeUnit units.Unit
}

// preferredLanguage is the base language of the display locale, used to
// pick the primary audio stream.
func (o displayOptions) preferredLanguage() string {
	base, _ := o.tag().Base()
	return base.String()
}

func (o displayOptions) tag() language.Tag {
	if o.Locale == nil {
		return locale.Default.Tag()
	}
	return o.Locale.Current().Tag()
}

func kindLabel(kind ffprobe.Kind) string {
	if kind == "" {
		return unknownValue
	}
	return cases.Title(language.English).String(string(kind))
}

func renderMetadata(w io.Writer, md ffprobe.MediaMetadata, opts displayOptions, colorize bool) {
	tag := opts.tag()
	format := md.Format

	for _, line := range renderSectionHeader(format.FileName, colorize) {
		fmt.Fprintln(w, line)
	}
	name := format.FormatName
	if format.FormatLongName != "" {
		name = fmt.Sprintf("%s (%s)", format.FormatName, format.FormatLongName)
	}
	fmt.Fprintln(w, renderField("Format", orUnknown(name)))
	fmt.Fprintln(w, renderField("Duration", formatDuration(format.Duration)))
	size, ok := units.FormatFileSize(format.Size, opts.SizeUnit, opts.Rounding, tag)
	if !ok {
		size = unknownValue
	}
	fmt.Fprintln(w, renderField("Size", size))
	bitRate := unknownValue
	if format.BitRate != nil {
		bitRate = units.FormatBitRate(*format.BitRate, tag)
	}
	fmt.Fprintln(w, renderField("Bit rate", bitRate))
	fmt.Fprintln(w, renderField("Streams", strconv.Itoa(len(md.Streams))))
	primary, hasPrimary := audio.Primary(md.Streams, opts.preferredLanguage())
	if hasPrimary {
		fmt.Fprintln(w, renderField("Primary audio", audio.Describe(primary)))
	}

	if len(md.Streams) == 0 {
		return
	}
	rows := make([][]string, 0, len(md.Streams))
	for _, stream := range md.Streams {
		details := streamDetails(stream, opts)
		if hasPrimary && stream.Audio != nil && stream.Index == primary.Index {
			details = joinDetails(details, "primary")
		}
		rows = append(rows, []string{
			strconv.Itoa(stream.Index),
			kindLabel(stream.Kind),
			orUnknown(stream.CodecName),
			stream.DisplayLanguage(),
			details,
		})
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, renderTable(
		[]string{"#", "Kind", "Codec", "Language", "Details"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
	))
}

func streamDetails(stream ffprobe.Stream, opts displayOptions) string {
	var parts []string
	switch {
	case stream.Video != nil:
		v := stream.Video
		if v.Width > 0 && v.Height > 0 {
			parts = append(parts, fmt.Sprintf("%dx%d", v.Width, v.Height))
		}
		if rate := stream.FrameRate(); rate > 0 {
			parts = append(parts, strconv.FormatFloat(rate, 'f', 3, 64)+" fps")
		}
		parts = append(parts, v.PixFmt)
		if stream.IsAttachedPic() {
			parts = append(parts, "cover art")
		}
	case stream.Audio != nil:
		a := stream.Audio
		if a.SampleRate != nil {
			parts = append(parts, units.FormatHertz(*a.SampleRate, opts.Locale))
		}
		if a.Channels > 0 {
			parts = append(parts, fmt.Sprintf("%d ch", a.Channels))
		}
		parts = append(parts, a.ChannelLayout)
		if traits := audio.Analyze(stream); traits.Spatial {
			parts = append(parts, "spatial")
		}
	case stream.Subtitle != nil:
		if stream.Subtitle.IsBitmap {
			parts = append(parts, "bitmap")
		} else {
			parts = append(parts, "text")
		}
	}
	if stream.IsDefault() {
		parts = append(parts, "default")
	}

	return joinDetails(parts...)
}

func joinDetails(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, ", ")
}

func formatDuration(d *time.Duration) string {
	if d == nil {
		return unknownValue
	}
	return d.Round(time.Millisecond).String()
}

func orUnknown(value string) string {
	if strings.TrimSpace(value) == "" {
		return unknownValue
	}
	return value
}
