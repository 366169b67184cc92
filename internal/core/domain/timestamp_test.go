package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "microsecond precision",
			input: "2024-01-01T00:00:00.123456Z",
			want:  time.Date(2024, 1, 1, 0, 0, 0, 123456000, time.UTC),
		},
		{
			name:  "nanosecond digits are truncated, not rounded",
			input: "2024-01-01T00:00:00.123456789Z",
			want:  time.Date(2024, 1, 1, 0, 0, 0, 123456000, time.UTC),
		},
		{
			name:  "short fraction is zero-padded",
			input: "2024-01-01T00:00:00.5Z",
			want:  time.Date(2024, 1, 1, 0, 0, 0, 500000000, time.UTC),
		},
		{
			name:  "no fractional part",
			input: "2024-01-01T00:00:01Z",
			want:  time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC),
		},
		{
			name:  "truncation rounds down even when next digit is high",
			input: "2024-06-15T12:30:45.999999999Z",
			want:  time.Date(2024, 6, 15, 12, 30, 45, 999999000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseTimestamp_NanosEquivalentToMicros(t *testing.T) {
	nanos, err := ParseTimestamp("2024-01-01T00:00:00.123456789Z")
	require.NoError(t, err)
	micros, err := ParseTimestamp("2024-01-01T00:00:00.123456Z")
	require.NoError(t, err)

	assert.True(t, nanos.Equal(micros))
}

func TestParseTimestamp_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing trailing Z", input: "2024-01-01T00:00:00.123456"},
		{name: "not a timestamp", input: "yesterday"},
		{name: "empty string", input: ""},
		{name: "non-digit fraction", input: "2024-01-01T00:00:00.12ab56Z"},
		{name: "date only", input: "2024-01-01Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimestamp(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadTimestamp)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "zero microseconds omit the fraction",
			in:   time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC),
			want: "2024-01-01 00:00:01",
		},
		{
			name: "non-zero microseconds render six digits",
			in:   time.Date(2024, 1, 1, 0, 0, 0, 123456000, time.UTC),
			want: "2024-01-01 00:00:00.123456",
		},
		{
			name: "leading zeros are kept",
			in:   time.Date(2024, 1, 1, 0, 0, 0, 5000, time.UTC),
			want: "2024-01-01 00:00:00.000005",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.in))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	got, err := ParseTimestamp("2024-03-07T08:15:30.000042Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-07 08:15:30.000042", FormatTimestamp(got))
}
