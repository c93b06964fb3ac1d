package personnummer

import "time"

// Separator is the character between the date and serial groups of the short form.
type Separator byte

const (
	// SeparatorUnder100 marks a bearer younger than a hundred years at the reference date.
	SeparatorUnder100 Separator = '-'
	// SeparatorOver100 marks a bearer who is at least a hundred years old.
	SeparatorOver100 Separator = '+'
)

func (s Separator) String() string {
	return string(rune(s))
}

// ResolveYear expands a two digit year to a full year relative to ref.
//
// With '-' the result is the latest year ending in year2 whose date
// (month, day) is not after ref. With '+' it is the year a century before that.
// day is the calendar day; coordination offsets must be stripped by the caller.
// Any separator other than '+' is treated as '-'.
func ResolveYear(year2, month, day int, sep Separator, ref time.Time) int {
	refYear, refMonth, refDay := ref.Date()

	year := refYear - refYear%100 + year2
	if after(year, month, day, refYear, int(refMonth), refDay) {
		year -= 100
	}
	if sep == SeparatorOver100 {
		year -= 100
	}
	return year
}

// after reports whether the date (y1, m1, d1) falls after (y2, m2, d2).
// The tuples are compared field by field, so neither needs to be a real date.
func after(y1, m1, d1, y2, m2, d2 int) bool {
	if y1 != y2 {
		return y1 > y2
	}
	if m1 != m2 {
		return m1 > m2
	}
	return d1 > d2
}
