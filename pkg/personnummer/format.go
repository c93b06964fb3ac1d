package personnummer

import (
	"fmt"
	"time"
)

// String returns the long form, see LongString.
func (n Number) String() string {
	return n.LongString()
}

// LongString returns the twelve digit form YYYYMMDDNNNK.
func (n Number) LongString() string {
	return fmt.Sprintf("%04d%02d%02d%03d%d",
		n.year, n.month, writtenDay(n.day, n.coordination), n.serial, n.checksum)
}

// ShortString returns the short form using the current date as reference.
func (n Number) ShortString() string {
	return n.ShortStringAt(time.Now())
}

// ShortStringAt returns the form YYMMDD-NNNK, with '+' instead of '-' when
// the bearer is at least a hundred years old at ref. Parsing the result with
// the same ref yields n again for bearers younger than two hundred years.
func (n Number) ShortStringAt(ref time.Time) string {
	return fmt.Sprintf("%02d%02d%02d%s%03d%d",
		n.year%100, n.month, writtenDay(n.day, n.coordination), n.SeparatorAt(ref), n.serial, n.checksum)
}

// SeparatorAt returns the short-form separator for the bearer's age at ref.
// A ref before the date of birth yields '-'.
func (n Number) SeparatorAt(ref time.Time) Separator {
	if age, err := n.AgeHintAt(ref); err == nil && age >= 100 {
		return SeparatorOver100
	}
	return SeparatorUnder100
}
