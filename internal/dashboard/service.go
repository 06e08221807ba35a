package dashboard

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=dashboard

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"gotube/internal/cache"
	"gotube/internal/common"
	"gotube/internal/dbmongo"
)

const statsNamespace = "channel-stats"

type SubscriberCounter interface {
	CountByChannel(ctx context.Context, channelID string) (int64, error)
}

type LikeCounter interface {
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type ChannelVideoStore interface {
	CountByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error)
	SumViewsByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID, includeUnpublished bool, page common.PageRequest) ([]dbmongo.Video, error)
}

type ChannelLookup interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type StatsCache interface {
	Get(ctx context.Context, key string, dst interface{}) bool
	Set(ctx context.Context, key string, v interface{})
}

// ChannelStats is an eventually consistent snapshot; the counts are read
// independently of each other and of concurrent toggles.
type ChannelStats struct {
	SubscriberCount int64 `json:"subscriberCount"`
	VideoCount      int64 `json:"videoCount"`
	LikeCount       int64 `json:"likeCount"`
	TotalViews      int64 `json:"totalViews"`
}

type DashboardService interface {
	ChannelStats(ctx context.Context, rawChannelID string) (*ChannelStats, error)
	ChannelVideos(ctx context.Context, requesterID primitive.ObjectID, rawChannelID string, page common.PageRequest) ([]dbmongo.Video, error)
}

type dashboardService struct {
	subscriptions SubscriberCounter
	likes         LikeCounter
	videos        ChannelVideoStore
	channels      ChannelLookup
	cache         StatsCache
}

func NewDashboardService(subscriptions SubscriberCounter, likes LikeCounter, videos ChannelVideoStore, channels ChannelLookup, statsCache StatsCache) DashboardService {
	return &dashboardService{
		subscriptions: subscriptions,
		likes:         likes,
		videos:        videos,
		channels:      channels,
		cache:         statsCache,
	}
}

func (s *dashboardService) requireChannel(ctx context.Context, rawChannelID string) (primitive.ObjectID, error) {
	channelID, err := common.ParseID(rawChannelID, "channelId")
	if err != nil {
		return channelID, err
	}
	found, err := s.channels.Exists(ctx, channelID)
	if err != nil {
		return channelID, err
	}
	if !found {
		return channelID, common.NotFound("channel not found")
	}
	return channelID, nil
}

func (s *dashboardService) ChannelStats(ctx context.Context, rawChannelID string) (*ChannelStats, error) {
	channelID, err := s.requireChannel(ctx, rawChannelID)
	if err != nil {
		return nil, err
	}

	key := cache.Key(statsNamespace, channelID.Hex())
	var cached ChannelStats
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	var stats ChannelStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.subscriptions.CountByChannel(gctx, channelID.Hex())
		stats.SubscriberCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.videos.CountByOwner(gctx, channelID)
		stats.VideoCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.likes.CountByUser(gctx, channelID.Hex())
		stats.LikeCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.videos.SumViewsByOwner(gctx, channelID)
		stats.TotalViews = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, common.Wrap(err, "failed to compute channel stats")
	}

	s.cache.Set(ctx, key, stats)
	return &stats, nil
}

// ChannelVideos pages through a channel newest first. Drafts are included
// only when the channel asks for itself.
func (s *dashboardService) ChannelVideos(ctx context.Context, requesterID primitive.ObjectID, rawChannelID string, page common.PageRequest) ([]dbmongo.Video, error) {
	channelID, err := s.requireChannel(ctx, rawChannelID)
	if err != nil {
		return nil, err
	}

	own := !requesterID.IsZero() && requesterID == channelID
	videos, err := s.videos.ListByOwner(ctx, channelID, own, page)
	if err != nil {
		return nil, err
	}
	if err := common.RequireFound(len(videos), page, "videos"); err != nil {
		return nil, err
	}
	return videos, nil
}
