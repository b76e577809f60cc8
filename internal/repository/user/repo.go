package user

import (
	"context"

	"github.com/crypt0g30rgy/anony/internal/model"
)

type Repository interface {
	InsertUser(ctx context.Context, user model.User) error
	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	IsUserAlreadyExist(ctx context.Context, email string) bool
}
