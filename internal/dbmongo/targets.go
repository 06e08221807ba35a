package dbmongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gotube/internal/common"
)

// TargetIndex answers whether a likeable target exists.
type TargetIndex struct {
	colls map[common.TargetKind]*mongo.Collection
}

func NewTargetIndex(mc *MongoClient) *TargetIndex {
	return &TargetIndex{colls: map[common.TargetKind]*mongo.Collection{
		common.TargetVideo:   mc.Database.Collection(videosCollection),
		common.TargetComment: mc.Database.Collection(commentsCollection),
		common.TargetTweet:   mc.Database.Collection(tweetsCollection),
	}}
}

// Exists reports whether viewer can see the target. Videos follow the
// publish rule; comments and tweets are always visible.
func (t *TargetIndex) Exists(ctx context.Context, kind common.TargetKind, id, viewer primitive.ObjectID) (bool, error) {
	coll, ok := t.colls[kind]
	if !ok {
		return false, common.InvalidArgument("unknown target kind " + string(kind))
	}
	return exists(ctx, coll, targetFilter(kind, id, viewer))
}

func targetFilter(kind common.TargetKind, id, viewer primitive.ObjectID) bson.M {
	if kind != common.TargetVideo {
		return bson.M{"_id": id}
	}
	filter := visibleTo(viewer)
	filter["_id"] = id
	return filter
}
