package ports

import (
	"context"

	"github.com/wesamghrayeb/crm-app/internal/domain"
)

// Mailer delivers one email. Failures are logged by implementations and must
// never fail the operation that triggered the send.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// AdminNotifier pushes booking activity to the administrator's channel.
type AdminNotifier interface {
	NotifyBooked(ctx context.Context, client *domain.Client, slot *domain.Slot)
	NotifyCanceled(ctx context.Context, client *domain.Client, slot *domain.Slot)
}
