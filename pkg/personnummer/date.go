package personnummer

import (
	"time"

	dErrors "personnummer/pkg/domain-errors"
)

const (
	// MinYear and MaxYear bound the years time.Time can represent as dates.
	MinYear = 1
	MaxYear = 9999

	// CoordinationOffset is added to the day of month in coordination numbers.
	CoordinationOffset = 60
)

// dayForm restricts how the written day of month may be interpreted.
type dayForm int

const (
	anyDay          dayForm = iota // calendar day or coordination day
	calendarDay                    // calendar day only
	coordinationDay                // calendar day plus 60 only
)

// validateDate checks year, month and the day as written, in that order, and
// returns the calendar day together with whether the coordination form was used.
// Years after ref's year are rejected. A written day that form does not allow
// is reported as an invalid day of month.
func validateDate(year, month, writtenDay int, ref time.Time, form dayForm) (int, bool, error) {
	if year < MinYear || year > MaxYear || year > ref.Year() {
		return 0, false, invalid(dErrors.CodeInvalidYear, "Invalid year. %d is outside %d-%d.", year, MinYear, min(MaxYear, ref.Year()))
	}
	if month < 1 || month > 12 {
		return 0, false, invalid(dErrors.CodeInvalidMonth, "Invalid month. %d is outside 1-12.", month)
	}

	day, coordination := writtenDay, writtenDay > CoordinationOffset
	switch {
	case coordination && form == calendarDay:
		return 0, false, invalid(dErrors.CodeInvalidDay, "Invalid day of month. %d is a coordination number day.", writtenDay)
	case !coordination && form == coordinationDay:
		return 0, false, invalid(dErrors.CodeInvalidDay, "Invalid day of month. %d is not a coordination number day.", writtenDay)
	case coordination:
		day -= CoordinationOffset
	}

	if day < 1 || day > daysIn(year, time.Month(month)) {
		return 0, false, invalid(dErrors.CodeInvalidDay, "Invalid day of month. %04d-%02d has no day %d.", year, month, day)
	}
	return day, coordination, nil
}

// daysIn returns the number of days in month of the proleptic Gregorian year.
func daysIn(year int, month time.Month) int {
	// Day 0 of the following month normalises to the last day of month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// writtenDay returns day as it appears in the number's digits.
func writtenDay(day int, coordination bool) int {
	if coordination {
		return day + CoordinationOffset
	}
	return day
}
