package e2e

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/cucumber/godog"
)

// RegisterSteps registers all step definitions.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	ctx.Step(`^the service runs with reference date "([^"]*)"$`, tc.serviceRunsWithReferenceDate)

	ctx.Step(`^I look up "([^"]*)"$`, tc.lookUp)
	ctx.Step(`^I validate "([^"]*)"$`, tc.validate)
	ctx.Step(`^I create a number from year (-?\d+) month (-?\d+) day (-?\d+) serial (-?\d+) checksum (-?\d+)$`, tc.createNumber)
	ctx.Step(`^I create a coordination number from year (-?\d+) month (-?\d+) day (-?\d+) serial (-?\d+) checksum (-?\d+)$`, tc.createCoordinationNumber)
	ctx.Step(`^I POST to "([^"]*)" with body '([^']*)'$`, tc.POSTRaw)
	ctx.Step(`^I GET "([^"]*)"$`, tc.GET)

	ctx.Step(`^the response status should be (\d+)$`, tc.responseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should equal "([^"]*)"$`, tc.responseFieldShouldEqual)
	ctx.Step(`^the error should be "([^"]*)"$`, tc.errorShouldBe)
}

func (tc *TestContext) serviceRunsWithReferenceDate(ctx context.Context, date string) error {
	ref, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return err
	}
	tc.Start(ref)
	return nil
}

func (tc *TestContext) lookUp(ctx context.Context, pin string) error {
	return tc.GET("/pins/" + url.PathEscape(pin))
}

func (tc *TestContext) validate(ctx context.Context, pin string) error {
	return tc.POST("/pins/validate", map[string]string{"pin": pin})
}

func (tc *TestContext) createNumber(ctx context.Context, year, month, day, serial, checksum int) error {
	return tc.create(year, month, day, serial, checksum, false)
}

func (tc *TestContext) createCoordinationNumber(ctx context.Context, year, month, day, serial, checksum int) error {
	return tc.create(year, month, day, serial, checksum, true)
}

func (tc *TestContext) create(year, month, day, serial, checksum int, coordination bool) error {
	return tc.POST("/pins", map[string]any{
		"year":          year,
		"month":         month,
		"day":           day,
		"serial_number": serial,
		"checksum":      checksum,
		"coordination":  coordination,
	})
}

func (tc *TestContext) responseStatusShouldBe(ctx context.Context, expected int) error {
	if got := tc.GetLastResponseStatus(); got != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, got, tc.LastResponseBody)
	}
	return nil
}

// responseFieldShouldEqual compares the JSON rendering of a field, so
// numbers and booleans are written as they appear in the response.
func (tc *TestContext) responseFieldShouldEqual(ctx context.Context, field, expected string) error {
	value, err := tc.GetResponseField(field)
	if err != nil {
		return err
	}

	var got string
	switch v := value.(type) {
	case string:
		got = v
	case float64:
		got = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		got = strconv.FormatBool(v)
	default:
		got = fmt.Sprint(v)
	}
	if got != expected {
		return fmt.Errorf("expected %s to be %q, got %q", field, expected, got)
	}
	return nil
}

func (tc *TestContext) errorShouldBe(ctx context.Context, code string) error {
	return tc.responseFieldShouldEqual(ctx, "error", code)
}
