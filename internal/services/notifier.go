package services

import (
	"context"

	"menageBack/internal/models"
)

// Notifier delivers a notification to a user over whatever channels are
// configured (push, websocket). Implementations must not block on slow
// receivers; services call Notify inline.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}
