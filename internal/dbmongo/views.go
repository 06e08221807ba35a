package dbmongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the public slice of a user embedded into views.
type Profile struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Username string             `bson:"username" json:"username"`
	FullName string             `bson:"fullName" json:"fullName"`
	Avatar   string             `bson:"avatar" json:"avatar"`
}

// Owner is nil when the referenced user no longer exists.
type CommentView struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Owner     *Profile           `bson:"owner" json:"owner"`
}

type VideoCard struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	VideoFile   string             `bson:"videoFile" json:"videoFile"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	Owner       *Profile           `bson:"owner" json:"owner"`
}

type TweetView struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
	Owner     *Profile           `bson:"owner" json:"owner"`
}

// PlaylistView carries the referenced videos in playlist order. Ids whose
// video was deleted or is hidden from the viewer are skipped.
type PlaylistView struct {
	ID             primitive.ObjectID   `bson:"_id" json:"_id"`
	Name           string               `bson:"name" json:"name"`
	Description    string               `bson:"description" json:"description"`
	Owner          primitive.ObjectID   `bson:"owner" json:"owner"`
	VideoIDs       []primitive.ObjectID `bson:"videos" json:"videoIds"`
	PlaylistVideos []Video              `bson:"playlistVideos" json:"videos"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// orderVideos rearranges the joined videos to follow VideoIDs and drops
// ids that did not resolve.
func (p *PlaylistView) orderVideos() {
	byID := make(map[primitive.ObjectID]Video, len(p.PlaylistVideos))
	for _, v := range p.PlaylistVideos {
		byID[v.ID] = v
	}
	ordered := make([]Video, 0, len(p.PlaylistVideos))
	ids := make([]primitive.ObjectID, 0, len(p.PlaylistVideos))
	for _, id := range p.VideoIDs {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
			ids = append(ids, id)
		}
	}
	p.PlaylistVideos = ordered
	p.VideoIDs = ids
}
