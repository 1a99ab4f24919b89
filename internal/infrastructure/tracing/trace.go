package tracing

import (
	"context"
	"net/http"

	"github.com/GriffinCanCode/rustenberg/internal/shared/id"
	"go.uber.org/zap"
)

// HeaderRequestID is the header carrying the request identifier
const HeaderRequestID = "X-Request-ID"

// Context keys for request propagation
type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID returns a context carrying requestID. An empty requestID
// leaves ctx unchanged.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// Ensure returns ctx with a request ID attached, generating one if the
// context does not carry any yet.
func Ensure(ctx context.Context) (context.Context, string) {
	if requestID := GetRequestID(ctx); requestID != "" {
		return ctx, requestID
	}
	requestID := id.NewRequestID().String()
	return WithRequestID(ctx, requestID), requestID
}

// Inject writes the context's request ID into headers
func Inject(ctx context.Context, headers http.Header) {
	if requestID := GetRequestID(ctx); requestID != "" {
		headers.Set(HeaderRequestID, requestID)
	}
}

// Field returns the request ID as a log field
func Field(ctx context.Context) zap.Field {
	return zap.String("request_id", GetRequestID(ctx))
}
