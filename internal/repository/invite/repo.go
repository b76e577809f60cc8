package invite

import (
	"context"
	"time"

	"github.com/crypt0g30rgy/anony/internal/model"
)

type Repository interface {
	AddInvite(ctx context.Context, inv model.Invite) error
	GetInvite(ctx context.Context, id string) (*model.Invite, error)
	FindByEmail(ctx context.Context, email string) (*model.Invite, error)
	MarkSubmitted(ctx context.Context, id string) error
	MarkReminded(ctx context.Context, id string, at time.Time) error
	DeleteInvite(ctx context.Context, id string) error
	PendingOlderThan(ctx context.Context, cutoff time.Time) ([]model.Invite, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
