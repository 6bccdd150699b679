package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
)

// requestLogger returns the request-scoped logger if available, otherwise fallback.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}
