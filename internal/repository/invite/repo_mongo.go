package invite

import (
	"context"
	"time"

	"github.com/crypt0g30rgy/anony/internal/model"
	"github.com/crypt0g30rgy/anony/internal/mongodb"
	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type inviteRepository struct {
	col *mongo.Collection
}

func NewInviteRepository(client *mongodb.Client) Repository {
	return &inviteRepository{
		col: client.GetCollection(mongodb.Invites),
	}
}

func (r *inviteRepository) AddInvite(ctx context.Context, inv model.Invite) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.col.InsertOne(ctx, inv)
	if err != nil {
		log.Error("Error while inserting invite:", err)
		return err
	}
	return nil
}

func (r *inviteRepository) GetInvite(ctx context.Context, id string) (*model.Invite, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var inv model.Invite
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&inv)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inviteRepository) FindByEmail(ctx context.Context, email string) (*model.Invite, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var inv model.Invite
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&inv)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inviteRepository) MarkSubmitted(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"submitted": true}})
	if err != nil {
		log.Error("Error while marking invite submitted:", err)
		return err
	}
	return nil
}

func (r *inviteRepository) MarkReminded(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"remindedAt": at}})
	if err != nil {
		log.Error("Error while marking invite reminded:", err)
		return err
	}
	return nil
}

func (r *inviteRepository) DeleteInvite(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Error("Error while deleting invite:", err)
		return err
	}
	return nil
}

func (r *inviteRepository) PendingOlderThan(ctx context.Context, cutoff time.Time) ([]model.Invite, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	filter := bson.M{
		"submitted": false,
		"invitedAt": bson.M{"$lt": cutoff},
		"$or": bson.A{
			bson.M{"remindedAt": bson.M{"$exists": false}},
			bson.M{"remindedAt": time.Time{}},
		},
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		log.Error("Error while querying pending invites:", err)
		return nil, err
	}

	var invites []model.Invite
	if err := cursor.All(ctx, &invites); err != nil {
		log.Error("Error while decoding pending invites:", err)
		return nil, err
	}
	return invites, nil
}

func (r *inviteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{
		"submitted": false,
		"expiresAt": bson.M{"$lt": now},
	})
	if err != nil {
		log.Error("Error while deleting expired invites:", err)
		return 0, err
	}
	return res.DeletedCount, nil
}
