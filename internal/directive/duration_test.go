package directive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogDurationForms(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2h", 2.0},
		{"1.5h", 1.5},
		{"0.25h", 0.25},
		{"1:30", 1.5},
		{"0:45", 0.75},
		{"12:05", 12 + 5.0/60},
		{"90m", 1.5},
		{"45m", 0.75},
		{"60m", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			hours, date, err := parseLogValue(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, hours, 1e-9)
			assert.Nil(t, date)
		})
	}
}

func TestParseLogEquivalentForms(t *testing.T) {
	// 90m, 1:30 and 1.5h are interchangeable spellings of the same duration
	for _, input := range []string{"90m", "1:30", "1.5h"} {
		hours, _, err := parseLogValue(input)
		require.NoError(t, err)
		assert.Equal(t, 1.5, hours, "input: %s", input)
	}
}

func TestParseLogInlineDate(t *testing.T) {
	hours, date, err := parseLogValue("2h@2025-10-01")
	require.NoError(t, err)
	assert.Equal(t, 2.0, hours)
	require.NotNil(t, date)
	assert.Equal(t, "2025-10-01", *date)
}

func TestParseLogMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare number", "2", "LOG must be 2h@YYYY-MM-DD, 1.5h, 1:30, or 90m."},
		{"unknown unit", "2d", "LOG must be 2h@YYYY-MM-DD, 1.5h, 1:30, or 90m."},
		{"decimal minutes", "1.5m", "LOG must be 2h@YYYY-MM-DD, 1.5h, 1:30, or 90m."},
		{"three-digit minutes", "1:300", "LOG must be 2h@YYYY-MM-DD, 1.5h, 1:30, or 90m."},
		{"minutes overflow", "1:75", "LOG minutes must be < 60 for h:mm"},
		{"minutes exactly 60", "1:60", "LOG minutes must be < 60 for h:mm"},
		{"zero hours", "0h", "LOG hours must be a positive number."},
		{"zero minutes", "0m", "LOG hours must be a positive number."},
		{"zero h:mm", "0:00", "LOG hours must be a positive number."},
		{"empty", "", "LOG must be 2h@YYYY-MM-DD, 1.5h, 1:30, or 90m."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseLogValue(tt.input)
			require.Error(t, err)

			var fe *FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.want, fe.Reason)
		})
	}
}

func TestParseLogDateValidation(t *testing.T) {
	t.Run("wrong separator is a format error", func(t *testing.T) {
		_, _, err := parseLogValue("1h@2025/01/01")

		var fe *FormatError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "date must be yyyy-mm-dd", fe.Reason)
	})

	t.Run("short year is a format error", func(t *testing.T) {
		_, _, err := parseLogValue("1h@25-01-01")

		var fe *FormatError
		require.True(t, errors.As(err, &fe))
	})

	t.Run("nonexistent date is a calendar error", func(t *testing.T) {
		_, _, err := parseLogValue("1h@2025-02-30")

		var ce *CalendarError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "LOG date must be a valid calendar date", ce.Reason)
	})

	t.Run("month thirteen is a calendar error", func(t *testing.T) {
		_, _, err := parseLogValue("1h@2025-13-01")

		var ce *CalendarError
		require.True(t, errors.As(err, &ce))
	})

	t.Run("leap day on leap year is valid", func(t *testing.T) {
		_, date, err := parseLogValue("1h@2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", *date)
	})

	t.Run("leap day on non-leap year is a calendar error", func(t *testing.T) {
		_, _, err := parseLogValue("1h@2025-02-29")

		var ce *CalendarError
		require.True(t, errors.As(err, &ce))
	})
}

func TestParseLogThroughParser(t *testing.T) {
	t.Run("calendar error surfaces", func(t *testing.T) {
		_, err := Parse("ABC-1 LOG:1h@2025-02-30")

		var ce *CalendarError
		require.True(t, errors.As(err, &ce))
	})

	t.Run("format error surfaces", func(t *testing.T) {
		_, err := Parse("ABC-1 LOG:1h@2025/01/01")

		var fe *FormatError
		require.True(t, errors.As(err, &fe))
	})
}
