//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"gotube/internal/comment"
	"gotube/internal/dashboard"
	"gotube/internal/dbmongo"
	"gotube/internal/dbmysql"
	"gotube/internal/like"
	"gotube/internal/playlist"
	"gotube/internal/subscription"
	"gotube/internal/tweet"
	"gotube/internal/video"
)

var storeSet = wire.NewSet(
	dbmysql.NewMySQL,
	dbmysql.NewLikeRepository,
	dbmysql.NewSubscriptionRepository,
	dbmongo.NewMongoConnection,
	dbmongo.NewUserRepository,
	dbmongo.NewVideoRepository,
	dbmongo.NewCommentRepository,
	dbmongo.NewTweetRepository,
	dbmongo.NewPlaylistRepository,
	dbmongo.NewTargetIndex,
	ProvideMediaStorage,
	ProvideRedisClient,
	ProvideSnapshotCache,
)

var serviceSet = wire.NewSet(
	ProvideNATS,
	ProvideDispatcher,
	ProvideLikeService,
	ProvideSubscriptionService,
	ProvideCommentService,
	ProvidePlaylistService,
	ProvideTweetService,
	ProvideVideoService,
	ProvideDashboardService,
)

var handlerSet = wire.NewSet(
	like.NewHandler,
	subscription.NewHandler,
	comment.NewHandler,
	playlist.NewHandler,
	video.NewHandler,
	tweet.NewHandler,
	dashboard.NewHandler,
	ProvideMediaServer,
)

func InitializeApplication() (*Application, error) {
	wire.Build(
		ProvideConfig,
		ProvideTokenManager,
		storeSet,
		serviceSet,
		handlerSet,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
