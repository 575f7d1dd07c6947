package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"twitter-gateway/models/constants"
	"twitter-gateway/models/responses"
	"twitter-gateway/pkg/sources"

	twitterscraper "github.com/imperatrona/twitter-scraper"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New() *Impl {
	service := &Impl{
		tweetCount: viper.GetInt(constants.TwitterTweetCount),
		scraper:    twitterscraper.New(),
	}

	authToken := viper.GetString(constants.TwitterAuthToken)
	csrfToken := viper.GetString(constants.TwitterCSRFToken)
	if authToken != "" && csrfToken != "" {
		service.scraper.SetAuthToken(twitterscraper.AuthToken{Token: authToken, CSRFToken: csrfToken})
	}

	return service
}

func (service *Impl) Name() string {
	return sourceName
}

func (service *Impl) Ready() bool {
	return service.scraper != nil
}

// LookupTweet scrapes the author's recent timeline and selects the requested
// tweet, the way the underlying library exposes single tweets.
func (service *Impl) LookupTweet(_ context.Context, tweetID string, handle string, includeUserInfo bool) (*responses.Tweet, error) {
	log.Info().
		Str(constants.LogTweetID, tweetID).
		Str(constants.LogHandle, handle).
		Msgf("Scraping tweet...")

	tweets, _, err := service.scraper.FetchTweets(handle, service.tweetCount, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeline of %s: %w", handle, err)
	}

	var match *twitterscraper.Tweet
	for _, tweet := range tweets {
		if tweet.ID == tweetID {
			match = tweet
			break
		}
	}

	if match == nil {
		return nil, sources.ErrNotFound
	}

	response := MapTweet(match)
	if includeUserInfo {
		profile, errProfile := service.scraper.GetProfile(handle)
		if errProfile != nil {
			log.Warn().Err(errProfile).
				Str(constants.LogHandle, handle).
				Msgf("Cannot retrieve author profile, author defaults kept")
		} else {
			response.Author = MapAuthor(profile)
		}
	}

	return response, nil
}

func (service *Impl) LookupUser(_ context.Context, handle string) (*responses.UserInfo, error) {
	log.Info().Str(constants.LogHandle, handle).Msgf("Scraping user profile...")

	profile, err := service.scraper.GetProfile(handle)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, sources.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile of %s: %w", handle, err)
	}

	response := &responses.UserInfo{
		Username:       profile.Username,
		DisplayName:    profile.Name,
		Bio:            profile.Biography,
		FollowersCount: profile.FollowersCount,
		FollowingCount: profile.FollowingCount,
		Verified:       profile.IsVerified,
		Location:       profile.Location,
		Website:        profile.Website,
	}
	if profile.Joined != nil {
		response.JoinDate = profile.Joined.UTC().Format(time.RFC3339)
	}

	return response, nil
}

func MapTweet(tweet *twitterscraper.Tweet) *responses.Tweet {
	return &responses.Tweet{
		TweetID: tweet.ID,
		Content: tweet.Text,
		Author: responses.Author{
			Username:    tweet.Username,
			DisplayName: tweet.Name,
		},
		Engagement: responses.EngagementCounts{
			Likes:    tweet.Likes,
			Retweets: tweet.Retweets,
			Replies:  tweet.Replies,
		},
		CreatedAt: tweet.TimeParsed.UTC().Format(time.RFC3339),
		Source:    sourceName,
	}
}

func MapAuthor(profile twitterscraper.Profile) responses.Author {
	return responses.Author{
		Username:       profile.Username,
		DisplayName:    profile.Name,
		Verified:       profile.IsVerified,
		FollowersCount: profile.FollowersCount,
		FollowingCount: profile.FollowingCount,
	}
}
