package mongodb

import "go.mongodb.org/mongo-driver/v2/mongo"

type CollectionName string

const (
	Users    CollectionName = "Users"
	Tokens                  = "Tokens"
	Invites                 = "Invites"
	Feedback                = "Feedback"
)

func (c *Client) GetCollection(col CollectionName) *mongo.Collection {
	return c.client.Database(c.database).Collection(string(col))
}
