package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    Duration
		wantErr string
	}{
		{
			name: "success",
			give: "144h",
			want: NewDuration(144 * time.Hour),
		},
		{
			name:    "invalid duration string",
			give:    "a",
			wantErr: "time: invalid duration \"a\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			actual, err := ParseDuration(tt.give)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, actual)
			}
		})
	}
}

func Test_MustParseDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NewDuration(10*time.Minute), MustParseDuration("10m"))
	assert.Panics(t, func() { MustParseDuration("ten minutes") })
}

func Test_DurationFromSeconds(t *testing.T) {
	t.Parallel()

	d, err := DurationFromSeconds(600)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, d.Duration)

	_, err = DurationFromSeconds(1 << 62)
	require.Error(t, err)
}

func Test_Duration_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    Duration
		wantErr bool
	}{
		{name: "string", give: `"2h"`, want: NewDuration(2 * time.Hour)},
		{name: "seconds", give: `7200`, want: NewDuration(2 * time.Hour)},
		{name: "negative seconds", give: `-1`, wantErr: true},
		{name: "fractional seconds", give: `1.5`, wantErr: true},
		{name: "bool", give: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d Duration
			err := json.Unmarshal([]byte(tt.give), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}

	b, err := json.Marshal(NewDuration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
