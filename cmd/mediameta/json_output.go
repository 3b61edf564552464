package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"mediameta/internal/media/audio"
	"mediameta/internal/media/ffprobe"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// The JSON views keep ffprobe's field names and report durations in seconds.

type metadataView struct {
	Format  formatView   `json:"format"`
	Streams []streamView `json:"streams"`
}

type formatView struct {
	Filename       string            `json:"filename"`
	NbStreams      int               `json:"nb_streams"`
	NbPrograms     int               `json:"nb_programs"`
	FormatName     string            `json:"format_name,omitempty"`
	FormatLongName string            `json:"format_long_name,omitempty"`
	StartTime      *float64          `json:"start_time,omitempty"`
	Duration       *float64          `json:"duration,omitempty"`
	Size           *int64            `json:"size,omitempty"`
	BitRate        *int64            `json:"bit_rate,omitempty"`
	ProbeScore     int               `json:"probe_score,omitempty"`
	Tags           map[string]string `json:"tags,omitempty"`
}

type streamView struct {
	Index          int               `json:"index"`
	CodecType      string            `json:"codec_type"`
	CodecName      string            `json:"codec_name,omitempty"`
	CodecLongName  string            `json:"codec_long_name,omitempty"`
	CodecTagString string            `json:"codec_tag_string,omitempty"`
	Profile        string            `json:"profile,omitempty"`
	TimeBase       string            `json:"time_base,omitempty"`
	StartTime      *float64          `json:"start_time,omitempty"`
	Duration       *float64          `json:"duration,omitempty"`
	BitRate        *int64            `json:"bit_rate,omitempty"`
	NbFrames       *int64            `json:"nb_frames,omitempty"`
	Language       string            `json:"language,omitempty"`
	Disposition    map[string]int    `json:"disposition,omitempty"`
	Tags           map[string]string `json:"tags,omitempty"`
	Video          *videoView        `json:"video,omitempty"`
	Audio          *audioView        `json:"audio,omitempty"`
	Subtitle       *subtitleView     `json:"subtitle,omitempty"`
	Data           *struct{}         `json:"data,omitempty"`
}

type videoView struct {
	Width              int     `json:"width"`
	Height             int     `json:"height"`
	PixFmt             string  `json:"pix_fmt,omitempty"`
	FieldOrder         string  `json:"field_order,omitempty"`
	ColorSpace         string  `json:"color_space,omitempty"`
	ColorTransfer      string  `json:"color_transfer,omitempty"`
	ColorPrimaries     string  `json:"color_primaries,omitempty"`
	DisplayAspectRatio string  `json:"display_aspect_ratio,omitempty"`
	AvgFrameRate       string  `json:"avg_frame_rate,omitempty"`
	FrameRate          float64 `json:"frame_rate,omitempty"`
	BitsPerRawSample   *int64  `json:"bits_per_raw_sample,omitempty"`
}

type audioView struct {
	SampleFmt     string `json:"sample_fmt,omitempty"`
	SampleRate    *int64 `json:"sample_rate,omitempty"`
	Channels      int    `json:"channels"`
	ChannelLayout string `json:"channel_layout,omitempty"`
	Lossless      bool   `json:"lossless"`
	Spatial       bool   `json:"spatial"`
}

type subtitleView struct {
	Width    int  `json:"width,omitempty"`
	Height   int  `json:"height,omitempty"`
	IsBitmap bool `json:"is_bitmap"`
}

func newMetadataView(md ffprobe.MediaMetadata) metadataView {
	f := md.Format
	view := metadataView{
		Format: formatView{
			Filename:       f.FileName,
			NbStreams:      f.NbStreams,
			NbPrograms:     f.NbPrograms,
			FormatName:     f.FormatName,
			FormatLongName: f.FormatLongName,
			StartTime:      seconds(f.StartTime),
			Duration:       seconds(f.Duration),
			Size:           f.Size,
			BitRate:        f.BitRate,
			ProbeScore:     f.ProbeScore,
			Tags:           f.Tags,
		},
		Streams: make([]streamView, 0, len(md.Streams)),
	}
	for _, s := range md.Streams {
		view.Streams = append(view.Streams, newStreamView(s))
	}
	return view
}

func newStreamView(s ffprobe.Stream) streamView {
	view := streamView{
		Index:          s.Index,
		CodecType:      string(s.Kind),
		CodecName:      s.CodecName,
		CodecLongName:  s.CodecLongName,
		CodecTagString: s.CodecTagString,
		Profile:        s.Profile,
		TimeBase:       s.TimeBase,
		StartTime:      seconds(s.StartTime),
		Duration:       seconds(s.Duration),
		BitRate:        s.BitRate,
		NbFrames:       s.NbFrames,
		Language:       s.Language(),
		Disposition:    s.Disposition,
		Tags:           s.Tags,
	}
	if v := s.Video; v != nil {
		view.Video = &videoView{
			Width:              v.Width,
			Height:             v.Height,
			PixFmt:             v.PixFmt,
			FieldOrder:         v.FieldOrder,
			ColorSpace:         v.ColorSpace,
			ColorTransfer:      v.ColorTransfer,
			ColorPrimaries:     v.ColorPrimaries,
			DisplayAspectRatio: v.DisplayAspectRatio,
			AvgFrameRate:       v.AvgFrameRate,
			FrameRate:          s.FrameRate(),
			BitsPerRawSample:   v.BitsPerRawSample,
		}
	}
	if a := s.Audio; a != nil {
		traits := audio.Analyze(s)
		view.Audio = &audioView{
			SampleFmt:     a.SampleFmt,
			SampleRate:    a.SampleRate,
			Channels:      a.Channels,
			ChannelLayout: a.ChannelLayout,
			Lossless:      traits.Lossless,
			Spatial:       traits.Spatial,
		}
	}
	if sub := s.Subtitle; sub != nil {
		view.Subtitle = &subtitleView{Width: sub.Width, Height: sub.Height, IsBitmap: sub.IsBitmap}
	}
	if s.Data != nil {
		view.Data = &struct{}{}
	}
	return view
}

func seconds(d *time.Duration) *float64 {
	if d == nil {
		return nil
	}
	v := d.Seconds()
	return &v
}
