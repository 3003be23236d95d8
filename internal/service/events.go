package service

import (
	"context"
	"log/slog"

	"corkboard.app/api/common/logger"
	"corkboard.app/api/internal/model"
)

// Publisher fans an encoded event out to every live subscriber of a
// workspace. Satisfied by *hub.Hub.
type Publisher interface {
	Publish(ctx context.Context, workspaceID int64, msg []byte)
}

// broadcast encodes the event and publishes it. Called only after the
// mutation has been committed, so subscribers never observe state that
// was rolled back. Encoding failures are logged and swallowed since
// delivery is best effort.
func broadcast(ctx context.Context, pub Publisher, workspaceID int64, eventType model.EventType, payload any) {
	event := model.Event{Type: eventType, Payload: payload}
	data, err := event.Encode()
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode broadcast event",
			"error", err,
			"event_type", string(eventType),
			"workspace_id", workspaceID,
		)
		return
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID: logger.Ptr(workspaceID),
		EventType:   logger.Ptr(string(eventType)),
	})
	pub.Publish(ctx, workspaceID, data)
}
