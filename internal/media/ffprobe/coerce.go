package ffprobe

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// ffprobe emits several numeric fields as numbers or as numeric strings
// depending on the field and on how the binary was built. Seconds and
// Integer accept both forms. Their UnmarshalJSON never fails: absent, null
// and unparsable values leave the field unknown.

var jsonNull = []byte("null")

// Seconds is a time interval reported in seconds.
type Seconds struct {
	value time.Duration
	known bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Seconds) UnmarshalJSON(data []byte) error {
	*s = Seconds{}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	var native float64
	if err := json.Unmarshal(data, &native); err == nil {
		s.value, s.known = secondsToDuration(native)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		s.value, s.known = ParseSeconds(text)
	}
	return nil
}

// Value returns the interval and whether it is known.
func (s Seconds) Value() (time.Duration, bool) {
	return s.value, s.known
}

// Ptr returns the interval, or nil when unknown.
func (s Seconds) Ptr() *time.Duration {
	if !s.known {
		return nil
	}
	v := s.value
	return &v
}

// Integer is an integer that may arrive quoted.
type Integer struct {
	value int64
	known bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Integer) UnmarshalJSON(data []byte) error {
	*i = Integer{}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	var native int64
	if err := json.Unmarshal(data, &native); err == nil {
		i.value, i.known = native, true
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		i.value, i.known = ParseInteger(text)
	}
	return nil
}

// Value returns the integer and whether it is known.
func (i Integer) Value() (int64, bool) {
	return i.value, i.known
}

// Ptr returns the integer, or nil when unknown.
func (i Integer) Ptr() *int64 {
	if !i.known {
		return nil
	}
	v := i.value
	return &v
}

// ParseSeconds parses a decimal number of seconds such as "12.500000".
// ffprobe's "N/A" and non-finite values report false.
func ParseSeconds(text string) (time.Duration, bool) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, false
	}
	return secondsToDuration(parsed)
}

// ParseInteger parses a base-10 integer such as "1048576".
func ParseInteger(text string) (int64, bool) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func secondsToDuration(seconds float64) (time.Duration, bool) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, false
	}
	nanos := math.Round(seconds * float64(time.Second))
	if nanos >= math.MaxInt64 || nanos < math.MinInt64 {
		return 0, false
	}
	return time.Duration(nanos), true
}
