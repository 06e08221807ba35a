package tweet

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=tweet

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gotube/internal/common"
	"gotube/internal/dbmongo"
)

const maxTweetLength = 280

type TweetStore interface {
	Create(ctx context.Context, t *dbmongo.Tweet) error
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]dbmongo.TweetView, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*dbmongo.Tweet, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*dbmongo.Tweet, error)
}

type UserLookup interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type TweetService interface {
	CreateTweet(ctx context.Context, actorID primitive.ObjectID, content string) (*dbmongo.Tweet, error)
	UserTweets(ctx context.Context, rawUserID string) ([]dbmongo.TweetView, error)
	UpdateTweet(ctx context.Context, actorID primitive.ObjectID, rawTweetID, content string) (*dbmongo.Tweet, error)
	DeleteTweet(ctx context.Context, actorID primitive.ObjectID, rawTweetID string) error
}

type tweetService struct {
	tweets TweetStore
	users  UserLookup
}

func NewTweetService(tweets TweetStore, users UserLookup) TweetService {
	return &tweetService{tweets: tweets, users: users}
}

func (s *tweetService) CreateTweet(ctx context.Context, actorID primitive.ObjectID, content string) (*dbmongo.Tweet, error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}
	content, err := common.ValidateText(content, "content", maxTweetLength)
	if err != nil {
		return nil, err
	}

	t := &dbmongo.Tweet{Content: content, Owner: actorID}
	if err := s.tweets.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UserTweets lists a user's tweets newest first. A user without tweets gets
// an empty list.
func (s *tweetService) UserTweets(ctx context.Context, rawUserID string) ([]dbmongo.TweetView, error) {
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

	tweets, err := s.tweets.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = []dbmongo.TweetView{}
	}
	return tweets, nil
}

func (s *tweetService) UpdateTweet(ctx context.Context, actorID primitive.ObjectID, rawTweetID, content string) (*dbmongo.Tweet, error) {
	if err := common.RequireActor(actorID); err != nil {
		return nil, err
	}
	tweetID, err := common.ParseID(rawTweetID, "tweetId")
	if err != nil {
		return nil, err
	}
	content, err = common.ValidateText(content, "content", maxTweetLength)
	if err != nil {
		return nil, err
	}
	return s.tweets.UpdateOwned(ctx, tweetID, actorID, content)
}

func (s *tweetService) DeleteTweet(ctx context.Context, actorID primitive.ObjectID, rawTweetID string) error {
	if err := common.RequireActor(actorID); err != nil {
		return err
	}
	tweetID, err := common.ParseID(rawTweetID, "tweetId")
	if err != nil {
		return err
	}
	_, err = s.tweets.DeleteOwned(ctx, tweetID, actorID)
	return err
}
