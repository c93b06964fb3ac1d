package personnummer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "personnummer/pkg/domain-errors"
)

// CreateSuite tests the component factory.
//
// Justification: Create is one of the two ways into a Number, so every rule
// must fail with its own error kind, and accepted values must keep their
// components exactly. Vectors are official test numbers from Skatteverket.
type CreateSuite struct {
	suite.Suite
	ref time.Time
}

func TestCreateSuite(t *testing.T) {
	suite.Run(t, new(CreateSuite))
}

func (s *CreateSuite) SetupTest() {
	s.ref = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
}

func (s *CreateSuite) assertCode(code dErrors.Code, year, month, day, serial, checksum int) {
	n, err := CreateAt(s.ref, year, month, day, serial, checksum)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, code), "got %v", err)
	s.True(n.IsZero())
}

func (s *CreateSuite) TestInvalidYear() {
	s.Run("negative year", func() {
		s.assertCode(dErrors.CodeInvalidYear, -1, 1, 1, 239, 2)
	})
	s.Run("max int", func() {
		s.assertCode(dErrors.CodeInvalidYear, math.MaxInt, 1, 1, 239, 2)
	})
	s.Run("after reference year", func() {
		s.assertCode(dErrors.CodeInvalidYear, 2027, 1, 1, 239, 2)
	})
	s.Run("message follows original wording", func() {
		_, err := CreateAt(s.ref, -1, 1, 1, 239, 2)
		s.Contains(err.Error(), "Invalid year.")
		s.ErrorIs(err, ErrInvalidYear)
	})
}

func (s *CreateSuite) TestInvalidMonth() {
	s.assertCode(dErrors.CodeInvalidMonth, 2018, 0, 1, 239, 2)
	s.assertCode(dErrors.CodeInvalidMonth, 2018, 13, 1, 239, 2)

	_, err := CreateAt(s.ref, 2018, 0, 1, 239, 2)
	s.Contains(err.Error(), "Invalid month.")
}

func (s *CreateSuite) TestInvalidDay() {
	s.Run("zero", func() {
		s.assertCode(dErrors.CodeInvalidDay, 2018, 1, 0, 239, 2)
	})
	s.Run("32", func() {
		s.assertCode(dErrors.CodeInvalidDay, 2018, 1, 32, 239, 2)
	})
	s.Run("Feb 30", func() {
		s.assertCode(dErrors.CodeInvalidDay, 2018, 2, 30, 239, 2)
	})
	s.Run("Feb 29 in a common year", func() {
		s.assertCode(dErrors.CodeInvalidDay, 2018, 2, 29, 239, 2)
	})
	s.Run("possible coordination number", func() {
		s.assertCode(dErrors.CodeInvalidDay, 2018, 1, 61, 239, 2)
	})
	s.Run("message follows original wording", func() {
		_, err := CreateAt(s.ref, 2018, 1, 61, 239, 2)
		s.Contains(err.Error(), "Invalid day of month.")
	})
}

func (s *CreateSuite) TestInvalidSerialNumber() {
	s.assertCode(dErrors.CodeInvalidSerialNumber, 2018, 1, 1, 0, 2)
	s.assertCode(dErrors.CodeInvalidSerialNumber, 2018, 1, 1, 1000, 2)
	s.assertCode(dErrors.CodeInvalidSerialNumber, 2018, 1, 1, -5, 2)
}

func (s *CreateSuite) TestInvalidChecksum() {
	s.assertCode(dErrors.CodeInvalidChecksum, 2018, 1, 1, 239, 3)
	s.assertCode(dErrors.CodeInvalidChecksum, 2018, 1, 1, 239, 4)
	s.assertCode(dErrors.CodeInvalidChecksum, 2018, 1, 1, 239, 12)
	s.assertCode(dErrors.CodeInvalidChecksum, 2018, 1, 1, 239, -2)

	_, err := CreateAt(s.ref, 2018, 1, 1, 239, 3)
	s.ErrorIs(err, ErrInvalidChecksum)
	s.Contains(err.Error(), "Invalid checksum.")
}

func (s *CreateSuite) TestFirstViolatedRuleWins() {
	s.Run("year before month", func() {
		s.assertCode(dErrors.CodeInvalidYear, 0, 0, 0, 0, 0)
	})
	s.Run("month before day", func() {
		s.assertCode(dErrors.CodeInvalidMonth, 2018, 13, 40, 0, 0)
	})
	s.Run("day before serial", func() {
		s.assertCode(dErrors.CodeInvalidDay, 2018, 1, 40, 0, 0)
	})
	s.Run("serial before checksum", func() {
		s.assertCode(dErrors.CodeInvalidSerialNumber, 2018, 1, 1, 0, 0)
	})
}

func (s *CreateSuite) TestAcceptsValidNumbers() {
	vectors := []struct{ year, month, day, serial, checksum int }{
		{1899, 9, 13, 980, 1},
		{1999, 8, 7, 239, 1},
		{2000, 1, 2, 239, 1},
		{2018, 1, 1, 239, 2},
	}

	for _, v := range vectors {
		n, err := CreateAt(s.ref, v.year, v.month, v.day, v.serial, v.checksum)
		s.Require().NoError(err)
		s.Equal(v.year, n.Year())
		s.Equal(v.month, n.Month())
		s.Equal(v.day, n.Day())
		s.Equal(v.serial, n.SerialNumber())
		s.Equal(v.checksum, n.Checksum())
		s.False(n.IsCoordinationNumber())
		s.False(n.IsZero())
	}
}

func (s *CreateSuite) TestCreateUsesCurrentDate() {
	n, err := Create(2018, 1, 1, 239, 2)
	s.Require().NoError(err)
	s.Equal(2018, n.Year())

	_, err = Create(time.Now().Year()+1, 1, 1, 239, 2)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidYear))
}

func (s *CreateSuite) TestCoordinationNumbers() {
	s.Run("written day is normalised to the calendar day", func() {
		n, err := CreateCoordinationNumberAt(s.ref, 2018, 1, 61, 239, 9)
		s.Require().NoError(err)
		s.Equal(1, n.Day())
		s.True(n.IsCoordinationNumber())
	})

	s.Run("checksum covers the written day", func() {
		_, err := CreateCoordinationNumberAt(s.ref, 2018, 1, 61, 239, 2)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidChecksum))
	})

	s.Run("calendar day is rejected", func() {
		_, err := CreateCoordinationNumberAt(s.ref, 2018, 1, 1, 239, 2)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidDay))
	})

	s.Run("offset day outside the month is rejected", func() {
		_, err := CreateCoordinationNumberAt(s.ref, 2018, 2, 89, 239, 0)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidDay))
	})

	s.Run("differs from the personal number of the same date", func() {
		coordination, err := CreateCoordinationNumberAt(s.ref, 2018, 1, 61, 239, 9)
		s.Require().NoError(err)
		personal, err := CreateAt(s.ref, 2018, 1, 1, 239, 2)
		s.Require().NoError(err)
		s.NotEqual(personal, coordination)
		s.Equal(personal.DateOfBirthHint(), coordination.DateOfBirthHint())
	})

	s.Run("wall clock variant", func() {
		n, err := CreateCoordinationNumber(2018, 1, 61, 239, 9)
		s.Require().NoError(err)
		s.True(n.IsCoordinationNumber())
	})
}

func (s *CreateSuite) TestLeapDay() {
	n, err := CreateAt(s.ref, 2000, 2, 29, 239, checksumFor(2000, 2, 29, 239))
	s.Require().NoError(err)
	s.Equal(29, n.Day())

	s.assertCode(dErrors.CodeInvalidDay, 1900, 2, 29, 239, checksumFor(1900, 2, 29, 239))
}

func (s *CreateSuite) TestZeroValue() {
	var n Number
	s.True(n.IsZero())
}
