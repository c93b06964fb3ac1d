package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"personnummer/internal/lookup/metrics"
	"personnummer/internal/lookup/models"
	"personnummer/internal/lookup/tracer"
	"personnummer/internal/platform/privacy"
	"personnummer/pkg/domain"
	dErrors "personnummer/pkg/domain-errors"
	"personnummer/pkg/personnummer"
)

// Service answers identity number questions relative to its clock.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	clock        Clock
	metrics      *metrics.Metrics
	tracer       tracer.Tracer
	logger       *slog.Logger
	pseudonymKey []byte
}

// Option configures the Service.
type Option func(*Service)

// WithClock sets the source of the reference date.
func WithClock(c Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithMetrics records operation counts and durations on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer opens a span per operation on t.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithPseudonymKey sets the key identity numbers are pseudonymized with
// before they reach logs or spans.
func WithPseudonymKey(key []byte) Option {
	return func(s *Service) {
		s.pseudonymKey = key
	}
}

// New creates a Service. Without options it uses the system clock, a no-op
// tracer and no metrics.
func New(logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		clock:  SystemClock{},
		tracer: tracer.NewNoop(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup parses raw in any accepted form and describes the number.
func (s *Service) Lookup(ctx context.Context, raw string) (*models.Details, error) {
	start := time.Now()
	ref := s.clock.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanLookup,
		tracer.String(tracer.AttrReferenceDate, ref.Format(models.DateLayout)))

	n, err := personnummer.ParseAt(raw, ref)
	if err != nil {
		s.fail(ctx, span, metrics.OperationLookup, strings.TrimSpace(raw), start, err)
		return nil, err
	}
	span.AddEvent(tracer.EventParsed)

	details, err := s.describe(n, ref)
	if err != nil {
		s.fail(ctx, span, metrics.OperationLookup, n.LongString(), start, err)
		return nil, err
	}
	s.succeed(ctx, span, metrics.OperationLookup, n, start)
	return details, nil
}

// Create builds a number from components. cmd.Day is the calendar day for
// both plain and coordination numbers.
func (s *Service) Create(ctx context.Context, cmd models.CreateCommand) (*models.Details, error) {
	start := time.Now()
	ref := s.clock.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanCreate,
		tracer.String(tracer.AttrReferenceDate, ref.Format(models.DateLayout)),
		tracer.Bool(tracer.AttrCoordination, cmd.Coordination))

	var (
		n   personnummer.Number
		err error
	)
	if cmd.Coordination {
		n, err = personnummer.CreateCoordinationNumberAt(ref, cmd.Year, cmd.Month, cmd.Day+personnummer.CoordinationOffset, cmd.SerialNumber, cmd.Checksum)
	} else {
		n, err = personnummer.CreateAt(ref, cmd.Year, cmd.Month, cmd.Day, cmd.SerialNumber, cmd.Checksum)
	}
	if err != nil {
		s.fail(ctx, span, metrics.OperationCreate, "", start, err)
		return nil, err
	}

	details, err := s.describe(n, ref)
	if err != nil {
		s.fail(ctx, span, metrics.OperationCreate, n.LongString(), start, err)
		return nil, err
	}
	s.succeed(ctx, span, metrics.OperationCreate, n, start)
	return details, nil
}

// Validate reports whether raw is a valid identity number without saying
// which rule failed.
func (s *Service) Validate(ctx context.Context, raw string) models.ValidationResult {
	start := time.Now()
	ref := s.clock.Now()
	_, span := s.tracer.Start(ctx, tracer.SpanValidate,
		tracer.String(tracer.AttrReferenceDate, ref.Format(models.DateLayout)))

	n, ok := personnummer.TryParseAt(raw, ref)
	pseudonym := s.pseudonym(strings.TrimSpace(raw))
	if ok {
		pseudonym = s.pseudonym(n.LongString())
	}
	span.SetAttributes(tracer.String(tracer.AttrPINPseudonym, pseudonym), tracer.Bool(tracer.AttrValid, ok))
	span.End(nil)

	outcome := "invalid"
	if ok {
		outcome = "valid"
	}
	s.record(metrics.OperationValidate, outcome, start)
	s.logger.DebugContext(ctx, "pin validated", "pin", pseudonym, "valid", ok)

	return models.ValidationResult{Valid: ok}
}

func (s *Service) describe(n personnummer.Number, ref time.Time) (*models.Details, error) {
	age, err := n.AgeHintAt(ref)
	if err != nil {
		return nil, err
	}
	dob := n.DateOfBirthHint()
	return &models.Details{
		Short:              n.ShortStringAt(ref),
		Long:               n.LongString(),
		Year:               n.Year(),
		Month:              n.Month(),
		Day:                n.Day(),
		SerialNumber:       n.SerialNumber(),
		Checksum:           n.Checksum(),
		CoordinationNumber: n.IsCoordinationNumber(),
		DateOfBirth:        dob.Format(models.DateLayout),
		Age:                age,
		Gender:             n.GenderHint().String(),
		Adult:              domain.IsOver18(dob, ref),
		ReferenceDate:      ref.Format(models.DateLayout),
	}, nil
}

func (s *Service) succeed(ctx context.Context, span tracer.Span, operation string, n personnummer.Number, start time.Time) {
	pseudonym := s.pseudonym(n.LongString())
	span.SetAttributes(
		tracer.String(tracer.AttrPINPseudonym, pseudonym),
		tracer.Bool(tracer.AttrCoordination, n.IsCoordinationNumber()),
	)
	span.End(nil)

	s.record(operation, metrics.OutcomeOK, start)
	if s.metrics != nil && n.IsCoordinationNumber() {
		s.metrics.RecordCoordinationNumber()
	}
	s.logger.InfoContext(ctx, "pin "+operation,
		"pin", pseudonym,
		"coordination_number", n.IsCoordinationNumber(),
		"trace_id", traceID(ctx),
	)
}

// fail records a rejected operation. pin is pseudonymized; "" omits it.
func (s *Service) fail(ctx context.Context, span tracer.Span, operation, pin string, start time.Time, err error) {
	code := dErrors.CodeOf(err)
	attrs := []tracer.Attribute{tracer.String(tracer.AttrErrorCode, string(code))}
	logAttrs := []any{"code", code, "error", err, "trace_id", traceID(ctx)}
	if pin != "" {
		pseudonym := s.pseudonym(pin)
		attrs = append(attrs, tracer.String(tracer.AttrPINPseudonym, pseudonym))
		logAttrs = append(logAttrs, "pin", pseudonym)
	}
	span.SetAttributes(attrs...)
	span.End(err)

	s.record(operation, string(code), start)

	// Invalid input is an expected answer, not a service fault.
	level := slog.LevelWarn
	if dErrors.IsValidity(code) {
		level = slog.LevelInfo
	}
	s.logger.Log(ctx, level, "pin "+operation+" rejected", logAttrs...)
}

func (s *Service) record(operation, outcome string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordOperation(operation, outcome, time.Since(start).Seconds())
}

func (s *Service) pseudonym(pin string) string {
	return privacy.PseudonymizePIN(s.pseudonymKey, pin)
}

// traceID returns the active OpenTelemetry trace ID, or "" without one.
func traceID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return ""
}
