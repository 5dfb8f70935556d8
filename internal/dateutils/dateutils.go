// Package dateutils provides date parsing and weekday localization for
// Brazilian bank statements.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutStatement is the single date format accepted in statement rows.
const DateLayoutStatement = "02/01/2006"

// weekdayNames maps Go weekdays to their Portuguese names as rendered in
// the insight output.
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// WeekdayOrder lists the localized weekday names in Monday-first order.
// Iterating this fixed order keeps weekday max/min selection deterministic.
var WeekdayOrder = []string{
	"Segunda-feira", "Terça-feira", "Quarta-feira", "Quinta-feira",
	"Sexta-feira", "Sábado", "Domingo",
}

// ParseStatementDate parses a dd/mm/yyyy date string. Any other format is
// an error; the row is then excluded from date-based aggregates.
func ParseStatementDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	t, err := time.Parse(DateLayoutStatement, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date '%s': expected %s", dateStr, DateLayoutStatement)
	}
	return t, nil
}

// WeekdayName returns the localized weekday name for a date.
func WeekdayName(date time.Time) string {
	return weekdayNames[date.Weekday()]
}

// DayKey returns a calendar-day key (midnight UTC truncation is enough
// because statement dates carry no time-of-day).
func DayKey(date time.Time) string {
	return date.Format("2006-01-02")
}
