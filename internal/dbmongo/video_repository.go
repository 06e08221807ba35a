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

// VideoFilter narrows the discovery feed.
type VideoFilter struct {
	Title         string
	Owner         *primitive.ObjectID
	PublishedOnly bool
}

func (f VideoFilter) match() bson.M {
	m := bson.M{}
	if f.Title != "" {
		m["title"] = titleFilter(f.Title)
	}
	if f.Owner != nil {
		m["owner"] = *f.Owner
	}
	if f.PublishedOnly {
		m["isPublished"] = true
	}
	return m
}

type VideoRepository struct {
	coll *mongo.Collection
}

func NewVideoRepository(mc *MongoClient) *VideoRepository {
	return &VideoRepository{coll: mc.Database.Collection(videosCollection)}
}

func (r *VideoRepository) Create(ctx context.Context, v *Video) error {
	now := time.Now().UTC()
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	v.CreatedAt, v.UpdatedAt = now, now
	if _, err := r.coll.InsertOne(ctx, v); err != nil {
		return common.Internal("failed to create video", err)
	}
	return nil
}

// VisibleTo reports whether the video exists and viewer may see it. Another
// user's draft reads as missing.
func (r *VideoRepository) VisibleTo(ctx context.Context, id, viewer primitive.ObjectID) (bool, error) {
	filter := visibleTo(viewer)
	filter["_id"] = id
	return exists(ctx, r.coll, filter)
}

func (r *VideoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Video, error) {
	var v Video
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NotFound("video not found")
		}
		return nil, common.Internal("failed to load video", err)
	}
	return &v, nil
}

// FindCard returns the video with its owner profile embedded.
func (r *VideoRepository) FindCard(ctx context.Context, id primitive.ObjectID) (*VideoCard, error) {
	cards, err := aggregateAll[VideoCard](ctx, r.coll, pipeline(
		stage("$match", bson.M{"_id": id}),
		embedOwner(),
	), "video")
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, common.NotFound("video not found")
	}
	return &cards[0], nil
}

// Discover is the paginated discovery feed. _id breaks sort ties so pages
// never overlap.
func (r *VideoRepository) Discover(ctx context.Context, f VideoFilter, sort common.SortSpec, page common.PageRequest) ([]VideoCard, error) {
	return aggregateAll[VideoCard](ctx, r.coll, pipeline(
		stage("$match", f.match()),
		stage("$sort", bson.D{{Key: sort.Field, Value: sort.Order()}, {Key: "_id", Value: sort.Order()}}),
		paginate(page),
		embedOwner(),
	), "videos")
}

// CardsByIDs loads the liked-videos projection for ids, in no particular
// order. Missing ids are skipped.
func (r *VideoRepository) CardsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]VideoCard, error) {
	if len(ids) == 0 {
		return []VideoCard{}, nil
	}
	return aggregateAll[VideoCard](ctx, r.coll, pipeline(
		stage("$match", bson.M{"_id": bson.M{"$in": ids}}),
		stage("$project", bson.D{
			{Key: "videoFile", Value: 1},
			{Key: "thumbnail", Value: 1},
			{Key: "title", Value: 1},
			{Key: "duration", Value: 1},
			{Key: "views", Value: 1},
			{Key: "isPublished", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "owner", Value: 1},
		}),
		embedOwner(),
	), "liked videos")
}

// ListByOwner pages through a channel's videos, newest first.
func (r *VideoRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID, includeUnpublished bool, page common.PageRequest) ([]Video, error) {
	filter := bson.M{"owner": owner}
	if !includeUnpublished {
		filter["isPublished"] = true
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.Internal("failed to list channel videos", err)
	}
	defer cursor.Close(ctx)

	videos := make([]Video, 0)
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, common.Internal("failed to decode channel videos", err)
	}
	return videos, nil
}

func (r *VideoRepository) CountByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"owner": owner})
	if err != nil {
		return 0, common.Internal("failed to count videos", err)
	}
	return n, nil
}

func (r *VideoRepository) SumViewsByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	type total struct {
		Views int64 `bson:"views"`
	}
	rows, err := aggregateAll[total](ctx, r.coll, pipeline(
		stage("$match", bson.M{"owner": owner}),
		stage("$group", bson.D{
			{Key: "_id", Value: nil},
			{Key: "views", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		}),
	), "view totals")
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Views, nil
}

func (r *VideoRepository) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, fields bson.M) (*Video, error) {
	return setOwned[Video](ctx, r.coll, id, owner, fields, "video")
}

// TogglePublishOwned flips isPublished server-side.
func (r *VideoRepository) TogglePublishOwned(ctx context.Context, id, owner primitive.ObjectID) (*Video, error) {
	update := bson.A{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: bson.D{{Key: "$not", Value: bson.A{"$isPublished"}}}},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
	}
	return updateOwned[Video](ctx, r.coll, id, owner, update, "video")
}

func (r *VideoRepository) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*Video, error) {
	return deleteOwned[Video](ctx, r.coll, id, owner, "video")
}
