package dbmongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gotube/internal/common"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(mc *MongoClient) *UserRepository {
	return &UserRepository{coll: mc.Database.Collection(usersCollection)}
}

func (r *UserRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return exists(ctx, r.coll, bson.M{"_id": id})
}

// ProfilesByIDs loads public profiles keyed by id. Unknown ids are absent
// from the map.
func (r *UserRepository) ProfilesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]Profile, error) {
	out := make(map[primitive.ObjectID]Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	opts := options.Find().SetProjection(profileProjection)
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, common.Internal("failed to load profiles", err)
	}
	defer cursor.Close(ctx)

	var profiles []Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, common.Internal("failed to decode profiles", err)
	}
	for _, p := range profiles {
		out[p.ID] = p
	}
	return out, nil
}
