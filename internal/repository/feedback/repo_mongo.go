package feedback

import (
	"context"
	"time"

	"github.com/crypt0g30rgy/anony/internal/model"
	"github.com/crypt0g30rgy/anony/internal/mongodb"
	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type feedbackRepository struct {
	col *mongo.Collection
}

func NewFeedbackRepository(client *mongodb.Client) Repository {
	return &feedbackRepository{
		col: client.GetCollection(mongodb.Feedback),
	}
}

func (r *feedbackRepository) AddFeedback(ctx context.Context, feedback model.Feedback) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.col.InsertOne(ctx, feedback)
	if err != nil {
		log.Error("Error while inserting feedback:", err)
		return err
	}
	return nil
}

func (r *feedbackRepository) AllFeedback(ctx context.Context) ([]model.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}}))
	if err != nil {
		log.Error("Error while querying feedback:", err)
		return nil, err
	}

	var feedbacks []model.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		log.Error("Error while decoding feedback:", err)
		return nil, err
	}
	return feedbacks, nil
}
