package token

import (
	"context"

	"github.com/crypt0g30rgy/anony/internal/model"
)

type Repository interface {
	SaveToken(ctx context.Context, uid string, refreshToken string) error
	RemoveToken(ctx context.Context, refreshToken string) error
	FindToken(ctx context.Context, token string) (*model.Token, error)
}
