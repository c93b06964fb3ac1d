package personnummer

import (
	"time"

	dErrors "personnummer/pkg/domain-errors"
)

// Number is a validated Swedish personal identity number.
//
// Invariants:
//   - (year, month, day) is a real Gregorian calendar date
//   - day is the calendar day, also for coordination numbers
//   - serial is within 1-999
//   - checksum is the Luhn digit over YYMMDD(as written)NNN
//
// Number is comparable; two values are equal when they denote the same number.
// The zero value is not a valid number, see IsZero.
type Number struct {
	year         int
	month        int
	day          int
	serial       int
	checksum     int
	coordination bool
}

// Create builds a Number from its components, using the current date as
// reference for the year bound. day is the calendar day of birth.
func Create(year, month, day, serialNumber, checksum int) (Number, error) {
	return CreateAt(time.Now(), year, month, day, serialNumber, checksum)
}

// CreateAt builds a Number from its components. Years after ref's year are
// rejected. A day above 60 is reported as an invalid day of month; use
// CreateCoordinationNumberAt for coordination numbers.
func CreateAt(ref time.Time, year, month, day, serialNumber, checksum int) (Number, error) {
	return newNumber(ref, year, month, day, serialNumber, checksum, calendarDay)
}

// CreateCoordinationNumber builds a coordination number, see CreateCoordinationNumberAt.
func CreateCoordinationNumber(year, month, writtenDay, serialNumber, checksum int) (Number, error) {
	return CreateCoordinationNumberAt(time.Now(), year, month, writtenDay, serialNumber, checksum)
}

// CreateCoordinationNumberAt builds a coordination number. writtenDay is the
// day as it appears in the number, i.e. the calendar day plus 60.
func CreateCoordinationNumberAt(ref time.Time, year, month, writtenDay, serialNumber, checksum int) (Number, error) {
	return newNumber(ref, year, month, writtenDay, serialNumber, checksum, coordinationDay)
}

func newNumber(ref time.Time, year, month, writtenDay, serial, checksum int, form dayForm) (Number, error) {
	day, coordination, err := validateDate(year, month, writtenDay, ref, form)
	if err != nil {
		return Number{}, err
	}
	if serial < 1 || serial > 999 {
		return Number{}, invalid(dErrors.CodeInvalidSerialNumber, "Invalid serial number. %d is outside 1-999.", serial)
	}
	if checksum < 0 || checksum > 9 {
		return Number{}, invalid(dErrors.CodeInvalidChecksum, "Invalid checksum. %d is not a single digit.", checksum)
	}
	if want := checksumFor(year, month, writtenDay, serial); checksum != want {
		return Number{}, invalid(dErrors.CodeInvalidChecksum, "Invalid checksum. Got %d, expected %d.", checksum, want)
	}

	return Number{
		year:         year,
		month:        month,
		day:          day,
		serial:       serial,
		checksum:     checksum,
		coordination: coordination,
	}, nil
}

// Year returns the full year of birth.
func (n Number) Year() int { return n.year }

// Month returns the month of birth, 1-12.
func (n Number) Month() int { return n.month }

// Day returns the calendar day of birth. For coordination numbers this is the
// written day minus 60.
func (n Number) Day() int { return n.day }

// SerialNumber returns the three digit birth number, 1-999.
func (n Number) SerialNumber() int { return n.serial }

// Checksum returns the check digit.
func (n Number) Checksum() int { return n.checksum }

// IsCoordinationNumber reports whether the number was written with day+60.
func (n Number) IsCoordinationNumber() bool { return n.coordination }

// IsZero returns true if this is the zero value (uninitialized).
func (n Number) IsZero() bool { return n == Number{} }
