package logger

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ctxKey struct{}

// ContextWithLogger stores l in ctx.
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// Attach derives a logger from base with fields and makes it the logger of
// the request behind c.
func Attach(c *gin.Context, base *zap.Logger, fields ...zap.Field) *zap.Logger {
	l := base.With(fields...)
	c.Request = c.Request.WithContext(ContextWithLogger(c.Request.Context(), l))
	return l
}

// FromGin returns the logger attached to the request behind c.
func FromGin(c *gin.Context) *zap.Logger {
	return FromContext(c.Request.Context())
}

// RouteDebug sends gin's debug-mode route table through l instead of stdout.
func RouteDebug(l *zap.Logger) {
	gin.DebugPrintRouteFunc = func(method, path, handler string, handlers int) {
		l.Debug("route",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("handler", handler),
			zap.Int("handlers", handlers),
		)
	}
}
