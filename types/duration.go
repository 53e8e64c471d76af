package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/divadao/divagov/internal/utils/safecast"
)

// Duration wraps time.Duration with support for JSON encoding. Delays, voting windows and grace
// periods are expressed with it in configuration files, e.g. "144h".
type Duration struct {
	time.Duration
}

// NewDuration wraps a time.Duration with a Duration.
func NewDuration(d time.Duration) Duration {
	return Duration{Duration: d}
}

// DurationFromSeconds converts a whole number of seconds, the unit used by calldata arguments,
// into a Duration.
func DurationFromSeconds(seconds uint64) (Duration, error) {
	secs, err := safecast.Uint64ToInt64(seconds)
	if err != nil || secs > maxDurationSeconds {
		return Duration{}, fmt.Errorf("duration of %d seconds overflows", seconds)
	}

	return NewDuration(time.Duration(secs) * time.Second), nil
}

const maxDurationSeconds = int64(1<<63-1) / int64(time.Second)

// ParseDuration parses a duration string in the time.Duration format.
func ParseDuration(s string) (Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return Duration{}, err
	}

	return NewDuration(d), nil
}

// MustParseDuration parses a duration string in the time.Duration format.
// Panics if the string is invalid.
//
// Useful for tests, but should be avoided in production code.
func MustParseDuration(s string) Duration {
	d, err := ParseDuration(s)
	if err != nil {
		panic(err)
	}

	return d
}

// String returns a string representing the duration in the form "72h3m0.5s".
func (d Duration) String() string {
	return d.Duration.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts either a duration string or a number of seconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		var err error
		if d.Duration, err = time.ParseDuration(value); err != nil {
			return err
		}

		return nil
	case float64:
		if value < 0 || value != float64(uint64(value)) {
			return fmt.Errorf("invalid duration seconds: %v", value)
		}
		parsed, err := DurationFromSeconds(uint64(value))
		if err != nil {
			return err
		}
		*d = parsed

		return nil
	default:
		return fmt.Errorf("invalid duration type: %T", v)
	}
}
