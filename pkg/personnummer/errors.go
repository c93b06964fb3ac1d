package personnummer

import (
	"fmt"

	dErrors "personnummer/pkg/domain-errors"
)

// Sentinels for errors.Is. Errors returned by this package match these by code,
// whatever their message.
var (
	ErrInvalidYear         = dErrors.New(dErrors.CodeInvalidYear, "Invalid year.")
	ErrInvalidMonth        = dErrors.New(dErrors.CodeInvalidMonth, "Invalid month.")
	ErrInvalidDay          = dErrors.New(dErrors.CodeInvalidDay, "Invalid day of month.")
	ErrInvalidSerialNumber = dErrors.New(dErrors.CodeInvalidSerialNumber, "Invalid serial number.")
	ErrInvalidChecksum     = dErrors.New(dErrors.CodeInvalidChecksum, "Invalid checksum.")
	ErrMalformedInput      = dErrors.New(dErrors.CodeMalformedInput, "Malformed personal identity number.")
	ErrNegativeAge         = dErrors.New(dErrors.CodeNegativeAge, "The person is not yet born.")
)

func invalid(code dErrors.Code, format string, args ...any) error {
	return dErrors.New(code, fmt.Sprintf(format, args...))
}
