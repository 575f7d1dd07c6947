package graphclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"twitter-gateway/models/constants"
	"twitter-gateway/models/responses"
	"twitter-gateway/pkg/sources"

	twitter "github.com/anatolykoptev/go-twitter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// New builds the GraphQL-backed source. A failed client initialization does
// not abort the gateway; the namespace answers 503 until restart, the way the
// primary namespace keeps serving.
func New() *Impl {
	service := &Impl{
		tweetCount: viper.GetInt(constants.TwitterTweetCount),
	}

	accounts := twitter.ParseAccounts(viper.GetString(constants.TwitterAccounts))
	client, err := twitter.NewClient(twitter.ClientConfig{Accounts: accounts})
	if err != nil {
		log.Error().Err(err).Msgf("Cannot initialize GraphQL client, namespace stays unavailable")
		return service
	}

	service.client = client
	return service
}

func (service *Impl) Name() string {
	return sourceName
}

func (service *Impl) Ready() bool {
	return service.client != nil
}

func (service *Impl) LookupTweet(ctx context.Context, tweetID string, handle string, includeUserInfo bool) (*responses.Tweet, error) {
	log.Info().
		Str(constants.LogTweetID, tweetID).
		Str(constants.LogHandle, handle).
		Msgf("Fetching tweet over GraphQL...")

	user, err := service.client.GetUserByScreenName(ctx, handle)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to resolve %s: %w", handle, err))
	}

	timeline, err := service.client.GetUserTweets(ctx, user.ID, service.tweetCount)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeline of %s: %w", handle, err)
	}

	for _, tweet := range timeline {
		if tweet.ID != tweetID {
			continue
		}

		response := MapTweet(tweet, handle)
		if includeUserInfo {
			response.Author = MapAuthor(user)
		}
		return response, nil
	}

	return nil, sources.ErrNotFound
}

func (service *Impl) LookupUser(ctx context.Context, handle string) (*responses.UserInfo, error) {
	log.Info().Str(constants.LogHandle, handle).Msgf("Fetching user profile over GraphQL...")

	user, err := service.client.GetUserByScreenName(ctx, handle)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to fetch profile of %s: %w", handle, err))
	}

	return MapUser(user), nil
}

// classify folds the library's missing-entity errors into the gateway's
// not-found sentinel; everything else stays a source failure.
func classify(err error) error {
	if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "does not exist") {
		return sources.ErrNotFound
	}

	return err
}

func MapTweet(tweet *twitter.Tweet, handle string) *responses.Tweet {
	return &responses.Tweet{
		TweetID: tweet.ID,
		Content: tweet.Text,
		Author: responses.Author{
			Username: handle,
		},
		Engagement: responses.EngagementCounts{
			Likes:    tweet.Likes,
			Retweets: tweet.Retweets,
			// The GraphQL timeline carries no reply count.
		},
		CreatedAt: tweet.CreatedAt.UTC().Format(time.RFC3339),
		Source:    sourceName,
	}
}

func MapAuthor(user *twitter.TwitterUser) responses.Author {
	return responses.Author{
		Username:       user.Handle,
		DisplayName:    user.DisplayName,
		Verified:       user.IsVerified,
		FollowersCount: user.Followers,
		FollowingCount: user.Following,
	}
}

func MapUser(user *twitter.TwitterUser) *responses.UserInfo {
	response := &responses.UserInfo{
		Username:       user.Handle,
		DisplayName:    user.DisplayName,
		Bio:            user.Bio,
		FollowersCount: user.Followers,
		FollowingCount: user.Following,
		Verified:       user.IsVerified,
	}
	if !user.CreatedAt.IsZero() {
		response.JoinDate = user.CreatedAt.UTC().Format(time.RFC3339)
	}

	return response
}
