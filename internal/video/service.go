package video

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=video

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gotube/internal/common"
	"gotube/internal/dbmongo"
	"gotube/internal/logging"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// sortFields maps public sortBy keys to stored fields.
var sortFields = map[string]string{
	"createdAt": "createdAt",
	"views":     "views",
	"duration":  "duration",
	"title":     "title",
}

type VideoStore interface {
	Create(ctx context.Context, v *dbmongo.Video) error
	FindCard(ctx context.Context, id primitive.ObjectID) (*dbmongo.VideoCard, error)
	Discover(ctx context.Context, f dbmongo.VideoFilter, sort common.SortSpec, page common.PageRequest) ([]dbmongo.VideoCard, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, fields bson.M) (*dbmongo.Video, error)
	TogglePublishOwned(ctx context.Context, id, owner primitive.ObjectID) (*dbmongo.Video, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*dbmongo.Video, error)
}

type MediaUploader interface {
	StoreFile(ctx context.Context, localPath, uploaderID string, duration float64) (*dbmongo.MediaFile, error)
	DeleteFile(ctx context.Context, fileID string) error
	FileIDFromURL(url string) (string, bool)
}

type PlaylistDetacher interface {
	PullVideoEverywhere(ctx context.Context, videoID primitive.ObjectID) (int64, error)
}

type CommentPurger interface {
	DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) (int64, error)
}

type DiscoverQuery struct {
	Query    string
	UserID   string
	SortBy   string
	SortType string
	Page     common.PageRequest
}

type PublishInput struct {
	Title         string
	Description   string
	VideoFilePath string
	ThumbnailPath string
	Duration      float64
}

// UpdateInput leaves nil fields and an empty ThumbnailPath untouched.
type UpdateInput struct {
	Title         *string
	Description   *string
	ThumbnailPath string
}

type VideoService interface {
	Discover(ctx context.Context, requesterID primitive.ObjectID, q DiscoverQuery) ([]dbmongo.VideoCard, error)
	GetVideoByID(ctx context.Context, requesterID primitive.ObjectID, rawVideoID string) (*dbmongo.VideoCard, error)
	PublishVideo(ctx context.Context, actorID primitive.ObjectID, in PublishInput) (*dbmongo.Video, error)
	UpdateVideo(ctx context.Context, actorID primitive.ObjectID, rawVideoID string, in UpdateInput) (*dbmongo.Video, error)
	DeleteVideo(ctx context.Context, actorID primitive.ObjectID, rawVideoID string) error
	TogglePublishStatus(ctx context.Context, actorID primitive.ObjectID, rawVideoID string) (*dbmongo.Video, error)
}

type videoService struct {
	videos    VideoStore
	media     MediaUploader
	playlists PlaylistDetacher
	comments  CommentPurger
	events    common.EventSink
}

func NewVideoService(videos VideoStore, media MediaUploader, playlists PlaylistDetacher, comments CommentPurger, events common.EventSink) VideoService {
	return &videoService{
		videos:    videos,
		media:     media,
		playlists: playlists,
		comments:  comments,
		events:    events,
	}
}

// Discover serves the discovery feed. Drafts are only listed when a channel
// asks for its own videos.
func (s *videoService) Discover(ctx context.Context, requesterID primitive.ObjectID, q DiscoverQuery) ([]dbmongo.VideoCard, error) {
	sort, err := common.ParseSort(q.SortBy, q.SortType, sortFields)
	if err != nil {
		return nil, err
	}

	filter := dbmongo.VideoFilter{Title: q.Query, PublishedOnly: true}
	if q.UserID != "" {
		owner, err := common.ParseID(q.UserID, "userId")
		if err != nil {
			return nil, err
		}
		filter.Owner = &owner
		if !requesterID.IsZero() && owner == requesterID {
			filter.PublishedOnly = false
		}
	}

	cards, err := s.videos.Discover(ctx, filter, sort, q.Page)
	if err != nil {
		return nil, err
	}
	if err := common.RequireFound(len(cards), q.Page, "videos"); err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *videoService) GetVideoByID(ctx context.Context, requesterID primitive.ObjectID, rawVideoID string) (*dbmongo.VideoCard, error) {
	videoID, err := common.ParseID(rawVideoID, "videoId")
	if err != nil {
		return nil, err
	}
	card, err := s.videos.FindCard(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !card.IsPublished && (card.Owner == nil || requesterID.IsZero() || card.Owner.ID != requesterID) {
		return nil, common.NotFound("video not found")
	}
	return card, nil
}

func validateTitle(title string) (string, error) {
	return common.ValidateText(title, "title", maxTitleLength)
}

func validateDescription(description string) (string, error) {
	return common.ValidateText(description, "description", maxDescriptionLength)
}

// upload stores one local file and checks it landed as the expected kind.
func (s *videoService) upload(ctx context.Context, path, field string, actorID primitive.ObjectID, duration float64, want common.MediaFileType) (*dbmongo.MediaFile, error) {
	if path == "" {
		return nil, common.InvalidArgument(field + " is required")
	}
	file, err := s.media.StoreFile(ctx, path, actorID.Hex(), duration)
	if err != nil {
		return nil, err
	}
	if file.FileType != want {
		s.discard(ctx, file.URL)
		return nil, common.InvalidArgument(field + " must be a " + want.String())
	}
	return file, nil
}

// discard removes a stored file this service created. Failures only log.
func (s *videoService) discard(ctx context.Context, url string) {
	fileID, ok := s.media.FileIDFromURL(url)
	if !ok {
		return
	}
	if err := s.media.DeleteFile(ctx, fileID); err != nil && !common.IsNotFound(err) {
		logging.Ctx(ctx).Warn().Err(err).Str("file_id", fileID).Msg("failed to remove media file")
	}
}

func (s *videoService) PublishVideo(ctx context.Context, actorID primitive.ObjectID, in PublishInput) (*dbmongo.Video, error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}
	title, err := validateTitle(in.Title)
	if err != nil {
		return nil, err
	}
	description, err := validateDescription(in.Description)
	if err != nil {
		return nil, err
	}
	if in.Duration < 0 {
		return nil, common.InvalidArgument("duration must not be negative")
	}

	videoFile, err := s.upload(ctx, in.VideoFilePath, "videoFile", actorID, in.Duration, common.MediaFileTypeVideo)
	if err != nil {
		return nil, err
	}
	thumbnail, err := s.upload(ctx, in.ThumbnailPath, "thumbnail", actorID, 0, common.MediaFileTypeImage)
	if err != nil {
		s.discard(ctx, videoFile.URL)
		return nil, err
	}

	v := &dbmongo.Video{
		VideoFile:   videoFile.URL,
		Thumbnail:   thumbnail.URL,
		Title:       title,
		Description: description,
		Duration:    videoFile.Duration,
		IsPublished: true,
		Owner:       actorID,
	}
	if err := s.videos.Create(ctx, v); err != nil {
		s.discard(ctx, videoFile.URL)
		s.discard(ctx, thumbnail.URL)
		return nil, err
	}

	s.events.Emit(common.EngagementEvent{
		Type:       common.VideoPublishedEvent,
		ActorID:    actorID.Hex(),
		TargetKind: common.TargetVideo.String(),
		TargetID:   v.ID.Hex(),
		OccurredAt: time.Now().UTC(),
		Metadata:   common.EventMetadata{"title": v.Title, "duration": v.Duration},
	})
	return v, nil
}

func (s *videoService) UpdateVideo(ctx context.Context, actorID primitive.ObjectID, rawVideoID string, in UpdateInput) (*dbmongo.Video, error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}
	videoID, err := common.ParseID(rawVideoID, "videoId")
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if in.Title != nil {
		title, err := validateTitle(*in.Title)
		if err != nil {
			return nil, err
		}
		set["title"] = title
	}
	if in.Description != nil {
		description, err := validateDescription(*in.Description)
		if err != nil {
			return nil, err
		}
		set["description"] = description
	}
	if len(set) == 0 && in.ThumbnailPath == "" {
		return nil, common.InvalidArgument("title, description or thumbnail is required")
	}

	var thumbnail *dbmongo.MediaFile
	if in.ThumbnailPath != "" {
		thumbnail, err = s.upload(ctx, in.ThumbnailPath, "thumbnail", actorID, 0, common.MediaFileTypeImage)
		if err != nil {
			return nil, err
		}
		set["thumbnail"] = thumbnail.URL
	}

	v, err := s.videos.UpdateOwned(ctx, videoID, actorID, set)
	if err != nil {
		if thumbnail != nil {
			s.discard(ctx, thumbnail.URL)
		}
		return nil, err
	}
	return v, nil
}

// DeleteVideo removes the video, then detaches it from playlists and drops
// its comments and media. The follow-up steps are best effort.
func (s *videoService) DeleteVideo(ctx context.Context, actorID primitive.ObjectID, rawVideoID string) error {
	if err := common.RequireActor(actorID); err != nil {
		return err
	}
	videoID, err := common.ParseID(rawVideoID, "videoId")
	if err != nil {
		return err
	}

	v, err := s.videos.DeleteOwned(ctx, videoID, actorID)
	if err != nil {
		return err
	}

	log := logging.Ctx(ctx)
	if n, err := s.playlists.PullVideoEverywhere(ctx, videoID); err != nil {
		log.Warn().Err(err).Str("video_id", videoID.Hex()).Msg("failed to detach video from playlists")
	} else if n > 0 {
		log.Debug().Int64("playlists", n).Str("video_id", videoID.Hex()).Msg("video detached from playlists")
	}
	if _, err := s.comments.DeleteByVideo(ctx, videoID); err != nil {
		log.Warn().Err(err).Str("video_id", videoID.Hex()).Msg("failed to delete video comments")
	}
	s.discard(ctx, v.VideoFile)
	s.discard(ctx, v.Thumbnail)
	return nil
}

func (s *videoService) TogglePublishStatus(ctx context.Context, actorID primitive.ObjectID, rawVideoID string) (*dbmongo.Video, error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}
	videoID, err := common.ParseID(rawVideoID, "videoId")
	if err != nil {
		return nil, err
	}
	return s.videos.TogglePublishOwned(ctx, videoID, actorID)
}
