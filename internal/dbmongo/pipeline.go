package dbmongo

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gotube/internal/common"
)

var profileProjection = bson.D{
	{Key: "username", Value: 1},
	{Key: "fullName", Value: 1},
	{Key: "avatar", Value: 1},
}

// embedOwner replaces the owner id with the owner's public profile, or null
// when the user is gone. The outer document is always kept.
func embedOwner() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "ownerProfile"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: profileProjection}},
			}},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$ifNull", Value: bson.A{
				bson.D{{Key: "$arrayElemAt", Value: bson.A{"$ownerProfile", 0}}},
				nil,
			}}}},
		}}},
		{{Key: "$unset", Value: "ownerProfile"}},
	}
}

func paginate(p common.PageRequest) []bson.D {
	return []bson.D{
		{{Key: "$skip", Value: p.Skip()}},
		{{Key: "$limit", Value: int64(p.Limit)}},
	}
}

// visibleTo matches published videos plus the viewer's own drafts. A zero
// viewer sees published videos only.
func visibleTo(viewer primitive.ObjectID) bson.M {
	if viewer.IsZero() {
		return bson.M{"isPublished": true}
	}
	return bson.M{"$or": bson.A{
		bson.M{"isPublished": true},
		bson.M{"owner": viewer},
	}}
}

// titleFilter matches the query as a case-insensitive substring.
func titleFilter(query string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
}

func pipeline(stages ...[]bson.D) mongo.Pipeline {
	var p mongo.Pipeline
	for _, group := range stages {
		p = append(p, group...)
	}
	return p
}

func stage(key string, value interface{}) []bson.D {
	return []bson.D{{{Key: key, Value: value}}}
}

func aggregateAll[T any](ctx context.Context, coll *mongo.Collection, p mongo.Pipeline, what string) ([]T, error) {
	cursor, err := coll.Aggregate(ctx, p)
	if err != nil {
		return nil, common.Internal("failed to load "+what, err)
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, common.Internal("failed to decode "+what, err)
	}
	return out, nil
}

func exists(ctx context.Context, coll *mongo.Collection, filter interface{}) (bool, error) {
	n, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.Internal("failed to look up "+coll.Name(), err)
	}
	return n > 0, nil
}
