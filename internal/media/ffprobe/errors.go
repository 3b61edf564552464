package ffprobe

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRepair reports captured output that cannot be represented as UTF-8 after repair.
	ErrRepair = errors.New("ffprobe repair: output is not valid UTF-8")
	// ErrDecode matches every *DecodeError via errors.Is.
	ErrDecode = errors.New("ffprobe decode failed")
	// ErrMissingField is wrapped by a *DecodeError when a required field is absent or null.
	ErrMissingField = errors.New("required field missing")
)

// DecodeError is a structural decode failure: malformed JSON, a missing
// required field, or a wrong type on a field that has no lenient decoding.
type DecodeError struct {
	// Field is the dotted path of the offending field, empty when unknown.
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("ffprobe decode %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("ffprobe decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// ProbeError reports a failed ffprobe invocation.
type ProbeError struct {
	Path   string
	Err    error
	Stderr string
}

func (e *ProbeError) Error() string {
	msg := fmt.Sprintf("ffprobe inspect %q: %v", e.Path, e.Err)
	if detail := strings.TrimSpace(e.Stderr); detail != "" {
		msg += ": " + detail
	}
	return msg
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}
