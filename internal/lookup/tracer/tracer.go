// Package tracer is a small tracing facade over OpenTelemetry for the lookup
// service. Identity numbers must only ever be attached as pseudonyms.
//
// Implementations:
//   - NoopTracer: tests and disabled tracing
//   - OTelTracer: OpenTelemetry adapter
package tracer

import "context"

// Span represents an active trace span.
type Span interface {
	// End completes the span. A non-nil err marks the span as failed.
	// End must be called exactly once.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute    { return Attribute{Key: key, Value: value} }
func Bool(key string, value bool) Attribute { return Attribute{Key: key, Value: value} }
func Int(key string, value int) Attribute   { return Attribute{Key: key, Value: value} }

// Span names.
const (
	SpanLookup   = "pnr.lookup"
	SpanCreate   = "pnr.create"
	SpanValidate = "pnr.validate"
)

// Attribute keys.
const (
	AttrPINPseudonym  = "pnr.pseudonym"
	AttrCoordination  = "pnr.coordination_number"
	AttrErrorCode     = "pnr.error_code"
	AttrReferenceDate = "pnr.reference_date"
	AttrValid         = "pnr.valid"
)

// EventParsed marks the point where raw input became a validated number.
const EventParsed = "pnr.parsed"
