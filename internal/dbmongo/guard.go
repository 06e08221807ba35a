package dbmongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gotube/internal/common"
)

// Owner-scoped mutations run as one server-side filter-and-mutate on
// {_id, owner}. A document owned by someone else matches nothing, so the
// caller gets the same NotFound as for a missing id.

func ownedBy(id, owner primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "owner": owner}
}

func guardErr(err error, what string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.NotFound(what + " not found")
	}
	return common.Internal("failed to modify "+what, err)
}

// updateOwned applies update to the document when owner owns it and
// returns the updated document.
func updateOwned[T any](ctx context.Context, coll *mongo.Collection, id, owner primitive.ObjectID, update interface{}, what string) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc T
	if err := coll.FindOneAndUpdate(ctx, ownedBy(id, owner), update, opts).Decode(&doc); err != nil {
		return nil, guardErr(err, what)
	}
	return &doc, nil
}

// setOwned is updateOwned with a $set that also bumps updatedAt.
func setOwned[T any](ctx context.Context, coll *mongo.Collection, id, owner primitive.ObjectID, fields bson.M, what string) (*T, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	return updateOwned[T](ctx, coll, id, owner, bson.M{"$set": set}, what)
}

func deleteOwned[T any](ctx context.Context, coll *mongo.Collection, id, owner primitive.ObjectID, what string) (*T, error) {
	var doc T
	if err := coll.FindOneAndDelete(ctx, ownedBy(id, owner)).Decode(&doc); err != nil {
		return nil, guardErr(err, what)
	}
	return &doc, nil
}
