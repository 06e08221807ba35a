package dbmongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gotube/internal/common"
)

type PlaylistRepository struct {
	coll *mongo.Collection
}

func NewPlaylistRepository(mc *MongoClient) *PlaylistRepository {
	return &PlaylistRepository{coll: mc.Database.Collection(playlistsCollection)}
}

func (r *PlaylistRepository) Create(ctx context.Context, p *Playlist) error {
	now := time.Now().UTC()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Videos == nil {
		p.Videos = []primitive.ObjectID{}
	}
	p.CreatedAt, p.UpdatedAt = now, now
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return common.Internal("failed to create playlist", err)
	}
	return nil
}

// joinVideos embeds the listed videos viewer may see. Drafts of other users
// are left out of the view but stay in the stored id list.
func joinVideos(viewer primitive.ObjectID) []bson.D {
	return stage("$lookup", bson.D{
		{Key: "from", Value: videosCollection},
		{Key: "localField", Value: "videos"},
		{Key: "foreignField", Value: "_id"},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$match", Value: visibleTo(viewer)}},
		}},
		{Key: "as", Value: "playlistVideos"},
	})
}

func (r *PlaylistRepository) FindView(ctx context.Context, id, viewer primitive.ObjectID) (*PlaylistView, error) {
	views, err := aggregateAll[PlaylistView](ctx, r.coll, pipeline(
		stage("$match", bson.M{"_id": id}),
		joinVideos(viewer),
	), "playlist")
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, common.NotFound("playlist not found")
	}
	views[0].orderVideos()
	return &views[0], nil
}

func (r *PlaylistRepository) ListViewsByOwner(ctx context.Context, owner, viewer primitive.ObjectID) ([]PlaylistView, error) {
	views, err := aggregateAll[PlaylistView](ctx, r.coll, pipeline(
		stage("$match", bson.M{"owner": owner}),
		stage("$sort", bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}),
		joinVideos(viewer),
	), "playlists")
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].orderVideos()
	}
	return views, nil
}

// AddVideoOwned appends videoID unless it is already present.
func (r *PlaylistRepository) AddVideoOwned(ctx context.Context, id, owner, videoID primitive.ObjectID) (*Playlist, error) {
	update := bson.M{
		"$addToSet": bson.M{"videos": videoID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}
	return updateOwned[Playlist](ctx, r.coll, id, owner, update, "playlist")
}

// RemoveVideoOwned removes videoID. Removing an absent id is not an error.
func (r *PlaylistRepository) RemoveVideoOwned(ctx context.Context, id, owner, videoID primitive.ObjectID) (*Playlist, error) {
	update := bson.M{
		"$pull": bson.M{"videos": videoID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	return updateOwned[Playlist](ctx, r.coll, id, owner, update, "playlist")
}

func (r *PlaylistRepository) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, fields bson.M) (*Playlist, error) {
	return setOwned[Playlist](ctx, r.coll, id, owner, fields, "playlist")
}

func (r *PlaylistRepository) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*Playlist, error) {
	return deleteOwned[Playlist](ctx, r.coll, id, owner, "playlist")
}

// PullVideoEverywhere drops a deleted video from every playlist.
func (r *PlaylistRepository) PullVideoEverywhere(ctx context.Context, videoID primitive.ObjectID) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"videos": videoID},
		bson.M{"$pull": bson.M{"videos": videoID}},
	)
	if err != nil {
		return 0, common.Internal("failed to detach video from playlists", err)
	}
	return res.ModifiedCount, nil
}
