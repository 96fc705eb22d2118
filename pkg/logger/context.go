package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type (
	requestIDKey struct{}
	localeKey    struct{}
)

// WithRequestID stores a request ID in ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// WithLocale stores the resolved locale tag in ctx.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// Locale returns the locale stored in ctx, if any.
func Locale(ctx context.Context) string {
	v, _ := ctx.Value(localeKey{}).(string)
	return v
}

// RequestIDExtractor adds "request_id" to every record logged with a context
// carrying one.
func RequestIDExtractor() ContextExtractor {
	return stringExtractor("request_id", RequestID)
}

// LocaleExtractor adds "locale" to every record logged with a context carrying one.
func LocaleExtractor() ContextExtractor {
	return stringExtractor("locale", Locale)
}

func stringExtractor(key string, get func(context.Context) string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := get(ctx); v != "" {
			return slog.String(key, v), true
		}
		return slog.Attr{}, false
	}
}
