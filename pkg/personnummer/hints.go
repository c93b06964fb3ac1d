package personnummer

import (
	"time"

	"personnummer/pkg/domain"
	dErrors "personnummer/pkg/domain-errors"
)

// Gender is the statistical gender hint carried by the serial number.
// It is not authoritative.
type Gender int

const (
	GenderFemale Gender = iota
	GenderMale
)

func (g Gender) String() string {
	switch g {
	case GenderFemale:
		return "female"
	case GenderMale:
		return "male"
	default:
		return "unknown"
	}
}

// DateOfBirthHint returns the date of birth at UTC midnight. For coordination
// numbers the date is the one the number was issued for, which need not be
// the true date of birth.
func (n Number) DateOfBirthHint() time.Time {
	return time.Date(n.year, time.Month(n.month), n.day, 0, 0, 0, 0, time.UTC)
}

// AgeHint returns the age in completed years today, see AgeHintAt.
func (n Number) AgeHint() (int, error) {
	return n.AgeHintAt(time.Now())
}

// AgeHintAt returns the age in completed years at asOf.
// An asOf before the date of birth fails with ErrNegativeAge.
func (n Number) AgeHintAt(asOf time.Time) (int, error) {
	age, err := domain.AgeAt(n.DateOfBirthHint(), asOf)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeNegativeAge, "The person is not yet born.")
	}
	return age, nil
}

// GenderHint returns GenderMale for an odd last serial digit and GenderFemale
// for an even one.
func (n Number) GenderHint() Gender {
	if n.serial%2 == 1 {
		return GenderMale
	}
	return GenderFemale
}
