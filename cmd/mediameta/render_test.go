package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"mediameta/internal/locale"
	"mediameta/internal/media/ffprobe"
	"mediameta/internal/units"
)

func TestKindLabel(t *testing.T) {
	tests := map[ffprobe.Kind]string{
		ffprobe.KindVideo:    "Video",
		ffprobe.KindSubtitle: "Subtitle",
		"attachment":         "Attachment",
		"":                   "-",
	}
	for kind, want := range tests {
		if got := kindLabel(kind); got != want {
			t.Fatalf("kindLabel(%q) = %q, want %q", kind, got, want)
		}
	}
}

func TestStreamDetails(t *testing.T) {
	rate := int64(44100)
	opts := displayOptions{Locale: locale.Static(locale.Default)}
	tests := []struct {
		name   string
		stream ffprobe.Stream
		want   string
	}{
		{
			name: "video",
			stream: ffprobe.Stream{
				Video:       &ffprobe.VideoAttributes{Width: 1280, Height: 720, AvgFrameRate: "25/1", PixFmt: "yuv420p"},
				Disposition: map[string]int{"default": 1},
			},
			want: "1280x720, 25.000 fps, yuv420p, default",
		},
		{
			name:   "audio",
			stream: ffprobe.Stream{Audio: &ffprobe.AudioAttributes{SampleRate: &rate, Channels: 6, ChannelLayout: "5.1"}},
			want:   "44,100 Hz, 6 ch, 5.1",
		},
		{
			name:   "audio without rate",
			stream: ffprobe.Stream{Audio: &ffprobe.AudioAttributes{}},
			want:   "",
		},
		{
			name:   "bitmap subtitle",
			stream: ffprobe.Stream{Subtitle: &ffprobe.SubtitleAttributes{IsBitmap: true}},
			want:   "bitmap",
		},
		{
			name:   "attachment",
			stream: ffprobe.Stream{Kind: "attachment"},
			want:   "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := streamDetails(tc.stream, opts); got != tc.want {
				t.Fatalf("streamDetails = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderMetadataHandlesUnknownValues(t *testing.T) {
	var buf bytes.Buffer
	renderMetadata(&buf, ffprobe.MediaMetadata{Format: ffprobe.Format{FileName: "x.ts"}}, displayOptions{}, false)

	out := buf.String()
	if !strings.Contains(out, "== x.ts ==") {
		t.Fatalf("missing header: %q", out)
	}
	if strings.Count(out, " -\n") < 4 {
		t.Fatalf("expected unknown markers for format, duration, size and bit rate: %q", out)
	}
	if strings.Contains(out, "╭") {
		t.Fatalf("expected no stream table without streams: %q", out)
	}
}

func TestRenderMetadataAppliesRounding(t *testing.T) {
	size := int64(1_610_612_736)
	duration := 90 * time.Minute
	md := ffprobe.MediaMetadata{Format: ffprobe.Format{FileName: "movie.mkv", Size: &size, Duration: &duration}}
	opts := displayOptions{
		Locale:   locale.Static(locale.New(language.German)),
		Rounding: units.RoundUp,
		SizeUnit: units.Byte,
	}

	var buf bytes.Buffer
	renderMetadata(&buf, md, opts, false)
	out := buf.String()
	if !strings.Contains(out, "2 GB") {
		t.Fatalf("expected 1.5 GB rounded up to 2 GB, got %q", out)
	}
	if !strings.Contains(out, "1h30m0s") {
		t.Fatalf("expected duration, got %q", out)
	}
}

func TestRenderStatusLine(t *testing.T) {
	line := renderStatusLine("FFprobe", statusOK, "/usr/bin/ffprobe", false)
	if line != "  FFprobe:       [OK] /usr/bin/ffprobe" {
		t.Fatalf("unexpected status line %q", line)
	}
	colored := renderStatusLine("FFprobe", statusError, "", true)
	if !strings.HasPrefix(colored, ansiRed) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected colored line, got %q", colored)
	}
}
