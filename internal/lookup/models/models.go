package models

import (
	"time"

	"personnummer/pkg/validation"
)

// Details is everything derivable from a valid identity number at a
// reference date.
type Details struct {
	Short              string `json:"short"`
	Long               string `json:"long"`
	Year               int    `json:"year"`
	Month              int    `json:"month"`
	Day                int    `json:"day"`
	SerialNumber       int    `json:"serial_number"`
	Checksum           int    `json:"checksum"`
	CoordinationNumber bool   `json:"coordination_number"`
	DateOfBirth        string `json:"date_of_birth"`
	Age                int    `json:"age"`
	Gender             string `json:"gender"`
	Adult              bool   `json:"adult"`
	ReferenceDate      string `json:"reference_date"`
}

// CreateRequest is the body of POST /pins. Pointers distinguish an omitted
// field from a zero. Day is always the calendar day; for coordination
// numbers the 60 offset is applied by the service.
type CreateRequest struct {
	Year         *int `json:"year" validate:"required"`
	Month        *int `json:"month" validate:"required"`
	Day          *int `json:"day" validate:"required"`
	SerialNumber *int `json:"serial_number" validate:"required"`
	Checksum     *int `json:"checksum" validate:"required"`
	Coordination bool `json:"coordination"`
}

func (r *CreateRequest) Validate() error {
	return validation.Validate(r)
}

// Command converts a validated request. Call only after Validate succeeded.
func (r *CreateRequest) Command() CreateCommand {
	return CreateCommand{
		Year:         *r.Year,
		Month:        *r.Month,
		Day:          *r.Day,
		SerialNumber: *r.SerialNumber,
		Checksum:     *r.Checksum,
		Coordination: r.Coordination,
	}
}

// CreateCommand carries the components of a number to build.
type CreateCommand struct {
	Year         int
	Month        int
	Day          int
	SerialNumber int
	Checksum     int
	Coordination bool
}

// ValidateRequest is the body of POST /pins/validate.
type ValidateRequest struct {
	PIN string `json:"pin" validate:"required,max=64"`
}

func (r *ValidateRequest) Validate() error {
	return validation.Validate(r)
}

// ValidationResult answers whether a string is a valid identity number.
// The failing rule is deliberately not reported.
type ValidationResult struct {
	Valid bool `json:"valid"`
}

// DateLayout formats DateOfBirth and ReferenceDate.
const DateLayout = time.DateOnly
