package requestctx

import (
	"context"

	"woonlasten/internal/domain/auth"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	callerKey    ctxKey = "caller"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}

func WithCaller(ctx context.Context, caller auth.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

func GetCaller(ctx context.Context) (auth.Caller, bool) {
	caller, ok := ctx.Value(callerKey).(auth.Caller)
	return caller, ok
}
