package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/biztime-api/internal/events"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
)

// emit publishes a change event. Failures are logged and swallowed: the
// mutation has already been committed.
func emit(
	ctx context.Context,
	emitter events.EventEmitter,
	fallback *slog.Logger,
	eventType, entity, key string,
	payload interface{},
) {
	log := logger.FromContextOrDefault(ctx, fallback)

	event, err := events.NewEntityEvent(eventType, entity, key, payload)
	if err != nil {
		log.Error("failed to build change event",
			slog.String("error", err.Error()),
			slog.String("event_type", eventType),
			slog.String("key", key))
		return
	}

	if err := emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("change event not fully delivered",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", eventType))
	}
}
