package playlist

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=playlist

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gotube/internal/common"
	"gotube/internal/dbmongo"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
)

type PlaylistStore interface {
	Create(ctx context.Context, p *dbmongo.Playlist) error
	FindView(ctx context.Context, id, viewer primitive.ObjectID) (*dbmongo.PlaylistView, error)
	ListViewsByOwner(ctx context.Context, owner, viewer primitive.ObjectID) ([]dbmongo.PlaylistView, error)
	AddVideoOwned(ctx context.Context, id, owner, videoID primitive.ObjectID) (*dbmongo.Playlist, error)
	RemoveVideoOwned(ctx context.Context, id, owner, videoID primitive.ObjectID) (*dbmongo.Playlist, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, fields bson.M) (*dbmongo.Playlist, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*dbmongo.Playlist, error)
}

type Lookup interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// VideoLookup treats another user's unpublished video as missing.
type VideoLookup interface {
	VisibleTo(ctx context.Context, id, viewer primitive.ObjectID) (bool, error)
}

// UpdateFields are the optional playlist attributes; nil leaves a field
// untouched.
type UpdateFields struct {
	Name        *string
	Description *string
}

type PlaylistService interface {
	CreatePlaylist(ctx context.Context, actorID primitive.ObjectID, name, description string) (*dbmongo.Playlist, error)
	UserPlaylists(ctx context.Context, requesterID primitive.ObjectID, rawUserID string) ([]dbmongo.PlaylistView, error)
	PlaylistByID(ctx context.Context, requesterID primitive.ObjectID, rawPlaylistID string) (*dbmongo.PlaylistView, error)
	AddVideo(ctx context.Context, actorID primitive.ObjectID, rawPlaylistID, rawVideoID string) (*dbmongo.Playlist, error)
	RemoveVideo(ctx context.Context, actorID primitive.ObjectID, rawPlaylistID, rawVideoID string) (*dbmongo.Playlist, error)
	UpdatePlaylist(ctx context.Context, actorID primitive.ObjectID, rawPlaylistID string, fields UpdateFields) (*dbmongo.Playlist, error)
	DeletePlaylist(ctx context.Context, actorID primitive.ObjectID, rawPlaylistID string) error
}

type playlistService struct {
	playlists PlaylistStore
	users     Lookup
	videos    VideoLookup
}

func NewPlaylistService(playlists PlaylistStore, users Lookup, videos VideoLookup) PlaylistService {
	return &playlistService{playlists: playlists, users: users, videos: videos}
}

func (s *playlistService) CreatePlaylist(ctx context.Context, actorID primitive.ObjectID, name, description string) (*dbmongo.Playlist, error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}
	name, err := common.ValidateText(name, "name", maxNameLength)
	if err != nil {
		return nil, err
	}
	if len([]rune(description)) > maxDescriptionLength {
		return nil, common.InvalidArgument("description is too long")
	}

	p := &dbmongo.Playlist{Name: name, Description: description, Owner: actorID}
	if err := s.playlists.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UserPlaylists embeds only the videos requesterID may see.
func (s *playlistService) UserPlaylists(ctx context.Context, requesterID primitive.ObjectID, rawUserID string) ([]dbmongo.PlaylistView, error) {
	userID, err := common.ParseID(rawUserID, "userId")
	if err != nil {
		return nil, err
	}
	found, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, common.NotFound("user not found")
	}

	playlists, err := s.playlists.ListViewsByOwner(ctx, userID, requesterID)
	if err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []dbmongo.PlaylistView{}
	}
	return playlists, nil
}

func (s *playlistService) PlaylistByID(ctx context.Context, requesterID primitive.ObjectID, rawPlaylistID string) (*dbmongo.PlaylistView, error) {
	playlistID, err := common.ParseID(rawPlaylistID, "playlistId")
	if err != nil {
		return nil, err
	}
	return s.playlists.FindView(ctx, playlistID, requesterID)
}

// membership validates the ids shared by add and remove.
func (s *playlistService) membership(actorID primitive.ObjectID, rawPlaylistID, rawVideoID string) (primitive.ObjectID, primitive.ObjectID, error) {
	if err := common.RequireActor(actorID); err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	playlistID, err := common.ParseID(rawPlaylistID, "playlistId")
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	videoID, err := common.ParseID(rawVideoID, "videoId")
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	return playlistID, videoID, nil
}

// AddVideo is idempotent: adding a video that is already listed leaves the
// playlist unchanged. Another user's draft is NotFound.
func (s *playlistService) AddVideo(ctx context.Context, actorID primitive.ObjectID, rawPlaylistID, rawVideoID string) (*dbmongo.Playlist, error) {
	playlistID, videoID, err := s.membership(actorID, rawPlaylistID, rawVideoID)
	if err != nil {
		return nil, err
	}
	found, err := s.videos.VisibleTo(ctx, videoID, actorID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, common.NotFound("video not found")
	}
	return s.playlists.AddVideoOwned(ctx, playlistID, actorID, videoID)
}

func (s *playlistService) RemoveVideo(ctx context.Context, actorID primitive.ObjectID, rawPlaylistID, rawVideoID string) (*dbmongo.Playlist, error) {
	playlistID, videoID, err := s.membership(actorID, rawPlaylistID, rawVideoID)
	if err != nil {
		return nil, err
	}
	return s.playlists.RemoveVideoOwned(ctx, playlistID, actorID, videoID)
}

func (s *playlistService) UpdatePlaylist(ctx context.Context, actorID primitive.ObjectID, rawPlaylistID string, fields UpdateFields) (*dbmongo.Playlist, error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}
	playlistID, err := common.ParseID(rawPlaylistID, "playlistId")
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if fields.Name != nil {
		name, err := common.ValidateText(*fields.Name, "name", maxNameLength)
		if err != nil {
			return nil, err
		}
		set["name"] = name
	}
	if fields.Description != nil {
		if len([]rune(*fields.Description)) > maxDescriptionLength {
			return nil, common.InvalidArgument("description is too long")
		}
		set["description"] = *fields.Description
	}
	if len(set) == 0 {
		return nil, common.InvalidArgument("name or description is required")
	}
	return s.playlists.UpdateOwned(ctx, playlistID, actorID, set)
}

func (s *playlistService) DeletePlaylist(ctx context.Context, actorID primitive.ObjectID, rawPlaylistID string) error {
	if err := common.RequireActor(actorID); err != nil {
		return err
	}
	playlistID, err := common.ParseID(rawPlaylistID, "playlistId")
	if err != nil {
		return err
	}
	_, err = s.playlists.DeleteOwned(ctx, playlistID, actorID)
	return err
}
