package like

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=like

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gotube/internal/common"
	"gotube/internal/dbmongo"
	"gotube/internal/dbmysql"
	"gotube/internal/toggle"
)

type LikeStore interface {
	Insert(ctx context.Context, like *dbmysql.Like) error
	Delete(ctx context.Context, like *dbmysql.Like) (bool, error)
	ListByUser(ctx context.Context, userID string, kind common.TargetKind) ([]dbmysql.Like, error)
}

// TargetIndex reports whether viewer can see a target. Another user's
// unpublished video counts as missing.
type TargetIndex interface {
	Exists(ctx context.Context, kind common.TargetKind, id, viewer primitive.ObjectID) (bool, error)
}

type VideoCards interface {
	CardsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]dbmongo.VideoCard, error)
}

type LikeService interface {
	ToggleLike(ctx context.Context, actorID primitive.ObjectID, kind common.TargetKind, rawTargetID string) (*toggle.Result[dbmysql.Like], error)
	LikedVideos(ctx context.Context, actorID primitive.ObjectID) ([]dbmongo.VideoCard, error)
}

type likeService struct {
	likes   LikeStore
	targets TargetIndex
	videos  VideoCards
	engine  *toggle.Engine[dbmysql.Like]
	events  common.EventSink
}

func NewLikeService(likes LikeStore, targets TargetIndex, videos VideoCards, events common.EventSink) LikeService {
	return &likeService{
		likes:   likes,
		targets: targets,
		videos:  videos,
		engine:  toggle.NewEngine[dbmysql.Like]("like", likes),
		events:  events,
	}
}

func (s *likeService) ToggleLike(ctx context.Context, actorID primitive.ObjectID, kind common.TargetKind, rawTargetID string) (*toggle.Result[dbmysql.Like], error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, common.InvalidArgument("unknown like target " + kind.String())
	}
	targetID, err := common.ParseID(rawTargetID, kind.String()+"Id")
	if err != nil {
		return nil, err
	}

	found, err := s.targets.Exists(ctx, kind, targetID, actorID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, common.NotFound(kind.String() + " not found")
	}

	res, err := s.engine.Toggle(ctx, dbmysql.Like{
		UserID:     actorID.Hex(),
		TargetKind: kind,
		TargetID:   targetID.Hex(),
	})
	if err != nil {
		return nil, err
	}

	eventType := common.LikeAddedEvent
	if res.State == toggle.Removed {
		eventType = common.LikeRemovedEvent
	}
	s.events.Emit(common.EngagementEvent{
		Type:       eventType,
		ActorID:    actorID.Hex(),
		TargetKind: kind.String(),
		TargetID:   targetID.Hex(),
		OccurredAt: time.Now().UTC(),
	})
	return res, nil
}

// LikedVideos returns the actor's liked videos, most recently liked first.
// Likes whose video is gone, or no longer published by someone else, are
// skipped.
func (s *likeService) LikedVideos(ctx context.Context, actorID primitive.ObjectID) ([]dbmongo.VideoCard, error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}

	likes, err := s.likes.ListByUser(ctx, actorID.Hex(), common.TargetVideo)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(likes))
	for _, l := range likes {
		id, err := primitive.ObjectIDFromHex(l.TargetID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return []dbmongo.VideoCard{}, nil
	}

	cards, err := s.videos.CardsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]dbmongo.VideoCard, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}

	out := make([]dbmongo.VideoCard, 0, len(cards))
	for _, id := range ids {
		card, ok := byID[id]
		if !ok {
			continue
		}
		if !card.IsPublished && (card.Owner == nil || card.Owner.ID != actorID) {
			continue
		}
		out = append(out, card)
	}
	return out, nil
}
