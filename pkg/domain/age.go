// Package domain provides calendar helpers shared by identity number hints and
// the lookup service.
package domain

import (
	"time"

	dErrors "personnummer/pkg/domain-errors"
)

// ErrNotYetBorn is returned by AgeAt when the as-of date precedes the birth date.
var ErrNotYetBorn = dErrors.New(dErrors.CodeNegativeAge, "The person is not yet born.")

// AgeAt returns the number of completed years between birthDate and asOf.
// Only the calendar dates matter, each read in its own location; the clock
// part is ignored. A person born on Feb 29 completes a year on Mar 1 in common years.
//
// Example:
//
//	birthDate := time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC)
//	asOf := time.Date(2018, 1, 14, 0, 0, 0, 0, time.UTC)
//	AgeAt(birthDate, asOf) // returns 17, nil
func AgeAt(birthDate, asOf time.Time) (int, error) {
	by, bm, bd := birthDate.Date()
	ay, am, ad := asOf.Date()

	age := ay - by
	if am < bm || (am == bm && ad < bd) {
		age--
	}
	if age < 0 {
		return 0, ErrNotYetBorn
	}
	return age, nil
}

// IsOver18 reports whether the person born on birthDate has completed 18
// years at now. Like AgeAt it compares calendar dates, each in its own location.
//
// Example:
//
//	birthDate := time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC)
//	now := time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC) // Exactly 18th birthday
//	IsOver18(birthDate, now) // returns true
func IsOver18(birthDate, now time.Time) bool {
	age, err := AgeAt(birthDate, now)
	return err == nil && age >= 18
}
