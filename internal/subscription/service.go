package subscription

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=subscription

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gotube/internal/common"
	"gotube/internal/dbmongo"
	"gotube/internal/dbmysql"
	"gotube/internal/toggle"
)

type SubscriptionStore interface {
	Insert(ctx context.Context, sub *dbmysql.Subscription) error
	Delete(ctx context.Context, sub *dbmysql.Subscription) (bool, error)
	ListByChannel(ctx context.Context, channelID string) ([]dbmysql.Subscription, error)
	ListBySubscriber(ctx context.Context, subscriberID string) ([]dbmysql.Subscription, error)
}

type ProfileDirectory interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	ProfilesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]dbmongo.Profile, error)
}

// SubscriberList counts only subscribers whose profile still exists.
type SubscriberList struct {
	AllSubscribers   []dbmongo.Profile `json:"allSubscribers"`
	SubscribersCount int               `json:"subscribersCount"`
}

type SubscriptionService interface {
	ToggleSubscription(ctx context.Context, actorID primitive.ObjectID, rawChannelID string) (*toggle.Result[dbmysql.Subscription], error)
	ChannelSubscribers(ctx context.Context, rawChannelID string) (*SubscriberList, error)
	SubscribedChannels(ctx context.Context, actorID primitive.ObjectID) ([]dbmongo.Profile, error)
}

type subscriptionService struct {
	subs   SubscriptionStore
	users  ProfileDirectory
	engine *toggle.Engine[dbmysql.Subscription]
	events common.EventSink
}

func NewSubscriptionService(subs SubscriptionStore, users ProfileDirectory, events common.EventSink) SubscriptionService {
	return &subscriptionService{
		subs:   subs,
		users:  users,
		engine: toggle.NewEngine[dbmysql.Subscription]("subscription", subs),
		events: events,
	}
}

func (s *subscriptionService) ToggleSubscription(ctx context.Context, actorID primitive.ObjectID, rawChannelID string) (*toggle.Result[dbmysql.Subscription], error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}
	channelID, err := common.ParseID(rawChannelID, "channelId")
	if err != nil {
		return nil, err
	}
	if channelID == actorID {
		return nil, common.InvalidArgument("cannot subscribe to your own channel")
	}

	found, err := s.users.Exists(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, common.NotFound("channel not found")
	}

	res, err := s.engine.Toggle(ctx, dbmysql.Subscription{
		ChannelID:    channelID.Hex(),
		SubscriberID: actorID.Hex(),
	})
	if err != nil {
		return nil, err
	}

	eventType := common.SubscriptionAddedEvent
	if res.State == toggle.Removed {
		eventType = common.SubscriptionRemovedEvent
	}
	s.events.Emit(common.EngagementEvent{
		Type:       eventType,
		ActorID:    actorID.Hex(),
		TargetKind: "channel",
		TargetID:   channelID.Hex(),
		OccurredAt: time.Now().UTC(),
	})
	return res, nil
}

func (s *subscriptionService) ChannelSubscribers(ctx context.Context, rawChannelID string) (*SubscriberList, error) {
	channelID, err := common.ParseID(rawChannelID, "channelId")
	if err != nil {
		return nil, err
	}

	rows, err := s.subs.ListByChannel(ctx, channelID.Hex())
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		if id, err := primitive.ObjectIDFromHex(row.SubscriberID); err == nil {
			ids = append(ids, id)
		}
	}

	profiles, err := s.embed(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &SubscriberList{AllSubscribers: profiles, SubscribersCount: len(profiles)}, nil
}

func (s *subscriptionService) SubscribedChannels(ctx context.Context, actorID primitive.ObjectID) ([]dbmongo.Profile, error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}

	rows, err := s.subs.ListBySubscriber(ctx, actorID.Hex())
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		if id, err := primitive.ObjectIDFromHex(row.ChannelID); err == nil {
			ids = append(ids, id)
		}
	}
	return s.embed(ctx, ids)
}

// embed resolves ids to profiles in order, dropping users that are gone.
func (s *subscriptionService) embed(ctx context.Context, ids []primitive.ObjectID) ([]dbmongo.Profile, error) {
	out := make([]dbmongo.Profile, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	byID, err := s.users.ProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
