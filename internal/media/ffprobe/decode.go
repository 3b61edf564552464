package ffprobe

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Decode parses well-formed ffprobe JSON (-show_format -show_streams) into a
// MediaMetadata. Quirky numeric fields resolve to nil when absent or
// unparsable; every other problem is returned as a *DecodeError.
func Decode(data []byte) (MediaMetadata, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return MediaMetadata{}, decodeFailure(err)
	}
	if raw.Format == nil {
		return MediaMetadata{}, &DecodeError{Field: "format", Err: ErrMissingField}
	}
	if raw.Format.Filename == nil {
		return MediaMetadata{}, &DecodeError{Field: "format.filename", Err: ErrMissingField}
	}
	if raw.Streams == nil {
		return MediaMetadata{}, &DecodeError{Field: "streams", Err: ErrMissingField}
	}

	streams := make([]Stream, 0, len(*raw.Streams))
	for i := range *raw.Streams {
		s := &(*raw.Streams)[i]
		if s.CodecType == nil {
			return MediaMetadata{}, &DecodeError{Field: fmt.Sprintf("streams[%d].codec_type", i), Err: ErrMissingField}
		}
		streams = append(streams, convertStream(s))
	}

	return MediaMetadata{
		Streams: streams,
		Format:  convertFormat(raw.Format),
	}, nil
}

func decodeFailure(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{Field: typeErr.Field, Err: err}
	}
	return &DecodeError{Err: err}
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Streams *[]ffprobeStream `json:"streams"`
	Format  *ffprobeFormat   `json:"format"`
}

type ffprobeFormat struct {
	Filename       *string           `json:"filename"`
	NbStreams      int               `json:"nb_streams"`
	NbPrograms     int               `json:"nb_programs"`
	FormatName     string            `json:"format_name"`
	FormatLongName string            `json:"format_long_name"`
	StartTime      Seconds           `json:"start_time"`
	Duration       Seconds           `json:"duration"`
	Size           Integer           `json:"size"`
	BitRate        Integer           `json:"bit_rate"`
	ProbeScore     int               `json:"probe_score"`
	Tags           map[string]string `json:"tags"`
}

type ffprobeStream struct {
	Index          int               `json:"index"`
	CodecName      string            `json:"codec_name"`
	CodecLongName  string            `json:"codec_long_name"`
	CodecType      *string           `json:"codec_type"`
	CodecTagString string            `json:"codec_tag_string"`
	Profile        string            `json:"profile"`
	TimeBase       string            `json:"time_base"`
	StartTime      Seconds           `json:"start_time"`
	Duration       Seconds           `json:"duration"`
	BitRate        Integer           `json:"bit_rate"`
	NbFrames       Integer           `json:"nb_frames"`
	Disposition    map[string]int    `json:"disposition"`
	Tags           map[string]string `json:"tags"`

	// video
	Width              int     `json:"width"`
	Height             int     `json:"height"`
	CodedWidth         int     `json:"coded_width"`
	CodedHeight        int     `json:"coded_height"`
	PixFmt             string  `json:"pix_fmt"`
	Level              int     `json:"level"`
	FieldOrder         string  `json:"field_order"`
	ColorRange         string  `json:"color_range"`
	ColorSpace         string  `json:"color_space"`
	ColorTransfer      string  `json:"color_transfer"`
	ColorPrimaries     string  `json:"color_primaries"`
	SampleAspectRatio  string  `json:"sample_aspect_ratio"`
	DisplayAspectRatio string  `json:"display_aspect_ratio"`
	RFrameRate         string  `json:"r_frame_rate"`
	AvgFrameRate       string  `json:"avg_frame_rate"`
	HasBFrames         int     `json:"has_b_frames"`
	BitsPerRawSample   Integer `json:"bits_per_raw_sample"`

	// audio
	SampleFmt     string  `json:"sample_fmt"`
	SampleRate    Integer `json:"sample_rate"`
	Channels      int     `json:"channels"`
	ChannelLayout string  `json:"channel_layout"`
	BitsPerSample int     `json:"bits_per_sample"`
}

// --- Conversion from wire types to domain types ---

func convertFormat(f *ffprobeFormat) Format {
	return Format{
		FileName:       *f.Filename,
		NbStreams:      f.NbStreams,
		NbPrograms:     f.NbPrograms,
		FormatName:     f.FormatName,
		FormatLongName: f.FormatLongName,
		StartTime:      f.StartTime.Ptr(),
		Duration:       f.Duration.Ptr(),
		Size:           f.Size.Ptr(),
		BitRate:        f.BitRate.Ptr(),
		ProbeScore:     f.ProbeScore,
		Tags:           f.Tags,
	}
}

func convertStream(s *ffprobeStream) Stream {
	out := Stream{
		Index:          s.Index,
		Kind:           Kind(*s.CodecType),
		CodecName:      s.CodecName,
		CodecLongName:  s.CodecLongName,
		CodecTagString: s.CodecTagString,
		Profile:        s.Profile,
		TimeBase:       s.TimeBase,
		StartTime:      s.StartTime.Ptr(),
		Duration:       s.Duration.Ptr(),
		BitRate:        s.BitRate.Ptr(),
		NbFrames:       s.NbFrames.Ptr(),
		Disposition:    s.Disposition,
		Tags:           s.Tags,
	}

	switch out.Kind {
	case KindVideo:
		out.Video = &VideoAttributes{
			Width:              s.Width,
			Height:             s.Height,
			CodedWidth:         s.CodedWidth,
			CodedHeight:        s.CodedHeight,
			PixFmt:             s.PixFmt,
			Level:              s.Level,
			FieldOrder:         s.FieldOrder,
			ColorRange:         s.ColorRange,
			ColorSpace:         s.ColorSpace,
			ColorTransfer:      s.ColorTransfer,
			ColorPrimaries:     s.ColorPrimaries,
			SampleAspectRatio:  s.SampleAspectRatio,
			DisplayAspectRatio: s.DisplayAspectRatio,
			RFrameRate:         s.RFrameRate,
			AvgFrameRate:       s.AvgFrameRate,
			HasBFrames:         s.HasBFrames,
			BitsPerRawSample:   s.BitsPerRawSample.Ptr(),
		}
	case KindAudio:
		out.Audio = &AudioAttributes{
			SampleFmt:     s.SampleFmt,
			SampleRate:    s.SampleRate.Ptr(),
			Channels:      s.Channels,
			ChannelLayout: s.ChannelLayout,
			BitsPerSample: s.BitsPerSample,
		}
	case KindSubtitle:
		out.Subtitle = &SubtitleAttributes{
			Width:    s.Width,
			Height:   s.Height,
			IsBitmap: bitmapSubtitleCodecs[s.CodecName],
		}
	case KindData:
		out.Data = &DataAttributes{}
	}
	return out
}
