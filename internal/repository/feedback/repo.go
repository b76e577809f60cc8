package feedback

import (
	"context"

	"github.com/crypt0g30rgy/anony/internal/model"
)

type Repository interface {
	AddFeedback(ctx context.Context, feedback model.Feedback) error
	AllFeedback(ctx context.Context) ([]model.Feedback, error)
}
