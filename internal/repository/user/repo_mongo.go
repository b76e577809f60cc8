package user

import (
	"context"
	"errors"
	"time"

	"github.com/crypt0g30rgy/anony/internal/model"
	"github.com/crypt0g30rgy/anony/internal/mongodb"
	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type userRepository struct {
	col *mongo.Collection
}

func NewUserRepository(client *mongodb.Client) Repository {
	return &userRepository{
		col: client.GetCollection(mongodb.Users),
	}
}

func (r *userRepository) InsertUser(ctx context.Context, user model.User) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.col.InsertOne(ctx, user)
	if err != nil {
		log.Error("Error while inserting user:", err)
		return err
	}
	return nil
}

func (r *userRepository) GetUser(ctx context.Context, id string) (model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var user model.User
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return user, err
	}

	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	return user, err
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var user model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func (r *userRepository) IsUserAlreadyExist(ctx context.Context, email string) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	candidate := r.col.FindOne(ctx, bson.M{"email": email})
	return !errors.Is(candidate.Err(), mongo.ErrNoDocuments)
}
