package cctx

import (
	"context"

	"go.uber.org/zap"
)

// WithValues attaches key/value pairs to parent. Keys must be ContextKey.
func WithValues(parent context.Context, values ...interface{}) (ctx context.Context) {
	if len(values)%2 != 0 {
		panic("cctx: odd number of key/value arguments")
	}

	ctx = parent
	for i := 0; i < len(values); i += 2 {
		ctx = context.WithValue(ctx, values[i].(ContextKey), values[i+1])
	}
	return
}

// Logger returns the global logger tagged with the run id carried by ctx.
func Logger(ctx context.Context) *zap.Logger {
	if id, ok := ctx.Value(RunID).(string); ok && id != "" {
		return zap.L().With(zap.String("run_id", id))
	}
	return zap.L()
}
