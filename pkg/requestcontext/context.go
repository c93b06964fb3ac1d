// Package requestcontext carries per-request metadata through context.Context.
package requestcontext

import "context"

type contextKey string

const (
	keyRequestID   contextKey = "request_id"
	keyClientIP    contextKey = "client_ip"
	keyUserAgent   contextKey = "user_agent"
	keyClientClass contextKey = "client_class"
)

// WithRequestID returns a context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// RequestID returns the request ID, or "" when none was set.
func RequestID(ctx context.Context) string {
	return stringValue(ctx, keyRequestID)
}

// WithClientMetadata returns a context carrying the client address, the raw
// User-Agent and its coarse classification.
func WithClientMetadata(ctx context.Context, clientIP, userAgent, clientClass string) context.Context {
	ctx = context.WithValue(ctx, keyClientIP, clientIP)
	ctx = context.WithValue(ctx, keyUserAgent, userAgent)
	return context.WithValue(ctx, keyClientClass, clientClass)
}

func ClientIP(ctx context.Context) string    { return stringValue(ctx, keyClientIP) }
func UserAgent(ctx context.Context) string   { return stringValue(ctx, keyUserAgent) }
func ClientClass(ctx context.Context) string { return stringValue(ctx, keyClientClass) }

func stringValue(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
