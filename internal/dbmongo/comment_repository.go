package dbmongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gotube/internal/common"
)

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(mc *MongoClient) *CommentRepository {
	return &CommentRepository{coll: mc.Database.Collection(commentsCollection)}
}

func (r *CommentRepository) Create(ctx context.Context, c *Comment) error {
	now := time.Now().UTC()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	c.CreatedAt, c.UpdatedAt = now, now
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return common.Internal("failed to create comment", err)
	}
	return nil
}

func (r *CommentRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return exists(ctx, r.coll, bson.M{"_id": id})
}

// ListByVideo pages through a video's comments, newest first, with the
// author profile embedded.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID primitive.ObjectID, page common.PageRequest) ([]CommentView, error) {
	return aggregateAll[CommentView](ctx, r.coll, pipeline(
		stage("$match", bson.M{"video": videoID}),
		stage("$sort", bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}),
		paginate(page),
		embedOwner(),
		stage("$project", bson.D{
			{Key: "content", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "owner", Value: 1},
		}),
	), "comments")
}

func (r *CommentRepository) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*Comment, error) {
	return setOwned[Comment](ctx, r.coll, id, owner, bson.M{"content": content}, "comment")
}

func (r *CommentRepository) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*Comment, error) {
	return deleteOwned[Comment](ctx, r.coll, id, owner, "comment")
}

// DeleteByVideo removes every comment on a video.
func (r *CommentRepository) DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"video": videoID})
	if err != nil {
		return 0, common.Internal("failed to delete video comments", err)
	}
	return res.DeletedCount, nil
}
