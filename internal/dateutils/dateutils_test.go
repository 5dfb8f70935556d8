package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseStatementDate(t *testing.T) {
	tests := []struct {
		name     string
		dateStr  string
		expected time.Time
		hasError bool
	}{
		{"Valid date", "15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"With surrounding spaces", " 01/01/2024 ", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"ISO format rejected", "2024-03-15", time.Time{}, true},
		{"US format rejected", "03/15/2024", time.Time{}, true},
		{"Nonsense", "not a date", time.Time{}, true},
		{"Empty", "", time.Time{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseStatementDate(tc.dateStr)

			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(result))
			}
		})
	}
}

func TestWeekdayName(t *testing.T) {
	// 15/03/2024 was a Friday.
	friday := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sexta-feira", WeekdayName(friday))

	sunday := time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Domingo", WeekdayName(sunday))
}

func TestWeekdayOrderCoversAllNames(t *testing.T) {
	assert.Len(t, WeekdayOrder, 7)
	seen := make(map[string]bool)
	for _, name := range weekdayNames {
		seen[name] = true
	}
	for _, name := range WeekdayOrder {
		assert.True(t, seen[name], "weekday %s missing from localization map", name)
	}
}

func TestDayKey(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15", DayKey(date))
}
