package di

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"gotube/internal/cache"
	"gotube/internal/comment"
	"gotube/internal/common"
	"gotube/internal/config"
	"gotube/internal/dashboard"
	"gotube/internal/dbmongo"
	"gotube/internal/dbmysql"
	"gotube/internal/like"
	"gotube/internal/logging"
	"gotube/internal/media"
	"gotube/internal/messaging"
	"gotube/internal/playlist"
	"gotube/internal/subscription"
	"gotube/internal/tweet"
	"gotube/internal/video"
)

type Application struct {
	Config     *config.Config
	DB         *gorm.DB
	Mongo      *dbmongo.MongoClient
	Redis      *redis.Client
	NATS       *nats.Conn
	Dispatcher *messaging.Dispatcher
	Tokens     *common.TokenManager

	Likes         *like.Handler
	Subscriptions *subscription.Handler
	Comments      *comment.Handler
	Playlists     *playlist.Handler
	Videos        *video.Handler
	Tweets        *tweet.Handler
	Dashboard     *dashboard.Handler
	Media         *media.HTTPServer
}

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideTokenManager(cfg *config.Config) *common.TokenManager {
	return common.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
}

// ProvideRedisClient returns nil when the stats cache is disabled or redis
// is unreachable; the service then reads stats straight from the stores.
func ProvideRedisClient(cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}
	client, err := cache.NewRedisClient(cfg)
	if err != nil {
		logging.Warn().Err(err).Msg("redis unavailable, channel stats are not cached")
		return nil
	}
	return client
}

func ProvideSnapshotCache(cfg *config.Config, client *redis.Client) *cache.SnapshotCache {
	if client == nil {
		return cache.NewSnapshotCache(nil, cfg.Redis.StatsTTL)
	}
	return cache.NewSnapshotCache(client, cfg.Redis.StatsTTL)
}

func ProvideNATS(cfg *config.Config) (*nats.Conn, error) {
	if !cfg.NATS.Enabled {
		return nil, nil
	}
	return messaging.NewNATSConnection(cfg)
}

func ProvideDispatcher(cfg *config.Config, conn *nats.Conn) *messaging.Dispatcher {
	d := messaging.NewDispatcher(cfg.Events.Workers, cfg.Events.BufferSize)
	if conn != nil {
		d.Subscribe("nats", messaging.NewNATSPublisher(conn, cfg.NATS.SubjectPrefix))
	} else {
		d.Subscribe("nop", messaging.NopPublisher{})
	}
	return d
}

func ProvideMediaStorage(cfg *config.Config, mc *dbmongo.MongoClient) *dbmongo.MediaStorage {
	return dbmongo.NewMediaStorage(mc, cfg.Media.BaseURL)
}

func ProvideLikeService(likes *dbmysql.LikeRepository, targets *dbmongo.TargetIndex, videos *dbmongo.VideoRepository, events *messaging.Dispatcher) like.LikeService {
	return like.NewLikeService(likes, targets, videos, events)
}

func ProvideSubscriptionService(subs *dbmysql.SubscriptionRepository, users *dbmongo.UserRepository, events *messaging.Dispatcher) subscription.SubscriptionService {
	return subscription.NewSubscriptionService(subs, users, events)
}

func ProvideCommentService(comments *dbmongo.CommentRepository, videos *dbmongo.VideoRepository, events *messaging.Dispatcher) comment.CommentService {
	return comment.NewCommentService(comments, videos, events)
}

func ProvidePlaylistService(playlists *dbmongo.PlaylistRepository, users *dbmongo.UserRepository, videos *dbmongo.VideoRepository) playlist.PlaylistService {
	return playlist.NewPlaylistService(playlists, users, videos)
}

func ProvideTweetService(tweets *dbmongo.TweetRepository, users *dbmongo.UserRepository) tweet.TweetService {
	return tweet.NewTweetService(tweets, users)
}

func ProvideVideoService(videos *dbmongo.VideoRepository, storage *dbmongo.MediaStorage, playlists *dbmongo.PlaylistRepository, comments *dbmongo.CommentRepository, events *messaging.Dispatcher) video.VideoService {
	return video.NewVideoService(videos, storage, playlists, comments, events)
}

func ProvideDashboardService(subs *dbmysql.SubscriptionRepository, likes *dbmysql.LikeRepository, videos *dbmongo.VideoRepository, users *dbmongo.UserRepository, stats *cache.SnapshotCache) dashboard.DashboardService {
	return dashboard.NewDashboardService(subs, likes, videos, users, stats)
}

func ProvideMediaServer(storage *dbmongo.MediaStorage) *media.HTTPServer {
	return media.NewHTTPServer(storage)
}

// Close drains the dispatcher first so queued events still reach the
// broker, then releases the store connections.
func (a *Application) Close(ctx context.Context) {
	if a.Dispatcher != nil {
		a.Dispatcher.Shutdown()
	}
	if a.NATS != nil {
		if err := a.NATS.Drain(); err != nil {
			logging.Warn().Err(err).Msg("nats drain failed")
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logging.Warn().Err(err).Msg("redis close failed")
		}
	}
	if a.Mongo != nil {
		if err := a.Mongo.Close(ctx); err != nil {
			logging.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
