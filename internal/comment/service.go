package comment

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=comment

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gotube/internal/common"
	"gotube/internal/dbmongo"
)

const maxCommentLength = 1000

type CommentStore interface {
	Create(ctx context.Context, c *dbmongo.Comment) error
	ListByVideo(ctx context.Context, videoID primitive.ObjectID, page common.PageRequest) ([]dbmongo.CommentView, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*dbmongo.Comment, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*dbmongo.Comment, error)
}

// VideoLookup treats another user's unpublished video as missing.
type VideoLookup interface {
	VisibleTo(ctx context.Context, id, viewer primitive.ObjectID) (bool, error)
}

type CommentService interface {
	VideoComments(ctx context.Context, requesterID primitive.ObjectID, rawVideoID string, page common.PageRequest) ([]dbmongo.CommentView, error)
	AddComment(ctx context.Context, actorID primitive.ObjectID, rawVideoID, content string) (*dbmongo.Comment, error)
	UpdateComment(ctx context.Context, actorID primitive.ObjectID, rawCommentID, content string) (*dbmongo.Comment, error)
	DeleteComment(ctx context.Context, actorID primitive.ObjectID, rawCommentID string) error
}

type commentService struct {
	comments CommentStore
	videos   VideoLookup
	events   common.EventSink
}

func NewCommentService(comments CommentStore, videos VideoLookup, events common.EventSink) CommentService {
	return &commentService{comments: comments, videos: videos, events: events}
}

func (s *commentService) requireVideo(ctx context.Context, viewer primitive.ObjectID, rawVideoID string) (primitive.ObjectID, error) {
	videoID, err := common.ParseID(rawVideoID, "videoId")
	if err != nil {
		return videoID, err
	}
	found, err := s.videos.VisibleTo(ctx, videoID, viewer)
	if err != nil {
		return videoID, err
	}
	if !found {
		return videoID, common.NotFound("video not found")
	}
	return videoID, nil
}

// VideoComments pages through a video's comments newest first. An empty
// first page is NotFound; pages past the end are empty.
func (s *commentService) VideoComments(ctx context.Context, requesterID primitive.ObjectID, rawVideoID string, page common.PageRequest) ([]dbmongo.CommentView, error) {
	videoID, err := s.requireVideo(ctx, requesterID, rawVideoID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByVideo(ctx, videoID, page)
	if err != nil {
		return nil, err
	}
	if err := common.RequireFound(len(comments), page, "comments"); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *commentService) AddComment(ctx context.Context, actorID primitive.ObjectID, rawVideoID, content string) (*dbmongo.Comment, error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}
	content, err := common.ValidateText(content, "content", maxCommentLength)
	if err != nil {
		return nil, err
	}
	videoID, err := s.requireVideo(ctx, actorID, rawVideoID)
	if err != nil {
		return nil, err
	}

	c := &dbmongo.Comment{Content: content, Video: videoID, Owner: actorID}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}

	s.events.Emit(common.EngagementEvent{
		Type:       common.CommentCreatedEvent,
		ActorID:    actorID.Hex(),
		TargetKind: common.TargetVideo.String(),
		TargetID:   videoID.Hex(),
		OccurredAt: time.Now().UTC(),
		Metadata:   common.EventMetadata{"comment_id": c.ID.Hex()},
	})
	return c, nil
}

func (s *commentService) UpdateComment(ctx context.Context, actorID primitive.ObjectID, rawCommentID, content string) (*dbmongo.Comment, error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}
	commentID, err := common.ParseID(rawCommentID, "commentId")
	if err != nil {
		return nil, err
	}
	content, err = common.ValidateText(content, "content", maxCommentLength)
	if err != nil {
		return nil, err
	}
	return s.comments.UpdateOwned(ctx, commentID, actorID, content)
}

func (s *commentService) DeleteComment(ctx context.Context, actorID primitive.ObjectID, rawCommentID string) error {
	if err := common.RequireActor(actorID); err != nil {
		return err
	}
	commentID, err := common.ParseID(rawCommentID, "commentId")
	if err != nil {
		return err
	}
	_, err = s.comments.DeleteOwned(ctx, commentID, actorID)
	return err
}
