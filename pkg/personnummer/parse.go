package personnummer

import (
	"strings"
	"time"

	dErrors "personnummer/pkg/domain-errors"
)

// components are the raw digit groups of a written number.
type components struct {
	century    int
	hasCentury bool
	year2      int
	month      int
	day        int // as written, coordination offset included
	serial     int
	checksum   int
	sep        Separator
}

// Parse parses s using the current date as reference. See ParseAt.
func Parse(s string) (Number, error) {
	return ParseAt(s, time.Now())
}

// ParseAt parses a personal identity number written as YYYYMMDDNNNK,
// YYMMDD-NNNK, YYMMDD+NNNK or YYMMDDNNNK. Surrounding whitespace is ignored.
// Short forms are expanded to a full year relative to ref; a missing separator
// counts as '-'.
func ParseAt(s string, ref time.Time) (Number, error) {
	c, err := tokenize(strings.TrimSpace(s))
	if err != nil {
		return Number{}, err
	}

	year := c.century*100 + c.year2
	if !c.hasCentury {
		day := c.day
		if day > CoordinationOffset {
			day -= CoordinationOffset
		}
		year = ResolveYear(c.year2, c.month, day, c.sep, ref)
	}
	return newNumber(ref, year, c.month, c.day, c.serial, c.checksum, anyDay)
}

// TryParse reports whether s is a valid number using the current date as reference.
func TryParse(s string) (Number, bool) {
	return TryParseAt(s, time.Now())
}

// TryParseAt is ParseAt without the failure detail. Callers needing the reason
// use ParseAt.
func TryParseAt(s string, ref time.Time) (Number, bool) {
	n, err := ParseAt(s, ref)
	if err != nil {
		return Number{}, false
	}
	return n, true
}

// MustParse parses s, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func tokenize(s string) (components, error) {
	var c components
	var digits string

	switch len(s) {
	case 12:
		c.hasCentury = true
		digits = s
	case 11:
		c.sep = Separator(s[6])
		if c.sep != SeparatorUnder100 && c.sep != SeparatorOver100 {
			return components{}, invalid(dErrors.CodeMalformedInput,
				"Malformed personal identity number. Separator %q must be '-' or '+'.", rune(s[6]))
		}
		digits = s[:6] + s[7:]
	case 10:
		c.sep = SeparatorUnder100
		digits = s
	default:
		return components{}, invalid(dErrors.CodeMalformedInput,
			"Malformed personal identity number. Expected 10, 11 or 12 characters, got %d.", len(s))
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return components{}, invalid(dErrors.CodeMalformedInput,
				"Malformed personal identity number. %q is not a digit.", rune(digits[i]))
		}
	}

	if c.hasCentury {
		c.century = number(digits[0:2])
		digits = digits[2:]
	}
	c.year2 = number(digits[0:2])
	c.month = number(digits[2:4])
	c.day = number(digits[4:6])
	c.serial = number(digits[6:9])
	c.checksum = number(digits[9:10])
	return c, nil
}

// number converts a run of ASCII digits already checked by tokenize.
func number(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n
}
