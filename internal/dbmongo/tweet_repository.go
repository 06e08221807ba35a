package dbmongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gotube/internal/common"
)

type TweetRepository struct {
	coll *mongo.Collection
}

func NewTweetRepository(mc *MongoClient) *TweetRepository {
	return &TweetRepository{coll: mc.Database.Collection(tweetsCollection)}
}

func (r *TweetRepository) Create(ctx context.Context, t *Tweet) error {
	now := time.Now().UTC()
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	t.CreatedAt, t.UpdatedAt = now, now
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return common.Internal("failed to create tweet", err)
	}
	return nil
}

func (r *TweetRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return exists(ctx, r.coll, bson.M{"_id": id})
}

func (r *TweetRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]TweetView, error) {
	return aggregateAll[TweetView](ctx, r.coll, pipeline(
		stage("$match", bson.M{"owner": owner}),
		stage("$sort", bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}),
		embedOwner(),
	), "tweets")
}

func (r *TweetRepository) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*Tweet, error) {
	return setOwned[Tweet](ctx, r.coll, id, owner, bson.M{"content": content}, "tweet")
}

func (r *TweetRepository) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*Tweet, error) {
	return deleteOwned[Tweet](ctx, r.coll, id, owner, "tweet")
}
