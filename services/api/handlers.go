package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"twitter-gateway/models/constants"
	"twitter-gateway/models/responses"
	"twitter-gateway/pkg/sources"
	"twitter-gateway/utils/urls"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	recentTweetsDefaultLimit = 20
	recentTweetsMaxLimit     = 100
)

func (service *Impl) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:       "healthy",
		Service:      serviceName,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		ScraperReady: service.primary.Ready(),
		ArchiveReady: service.archive.Ready(),
	})
}

func (service *Impl) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{
		ArchivedTweets: humanize.Comma(service.archive.Count()),
		Uptime:         time.Since(service.startedAt).Round(time.Second).String(),
	})
}

func (service *Impl) handleRecentTweets(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(recentTweetsDefaultLimit)))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}
	if limit > recentTweetsMaxLimit {
		limit = recentTweetsMaxLimit
	}

	archived, err := service.archive.Recent(limit)
	if err != nil {
		log.Error().Err(err).Msgf("Cannot read tweet archive")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read tweet archive"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tweets": archived, "count": len(archived)})
}

func (service *Impl) handleTweet(source sources.Source, keyspace string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request TweetRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		if !source.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "source not initialized"})
			return
		}

		tweetID, handle, err := urls.Parse(request.TweetURL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		includeUserInfo := request.IncludeUserInfo == nil || *request.IncludeUserInfo
		tweet, status := service.resolveTweet(c.Request.Context(), source, keyspace, tweetID, handle, includeUserInfo)
		if tweet == nil {
			c.JSON(status, gin.H{"error": tweetErrorMessage(status)})
			return
		}

		c.JSON(http.StatusOK, tweet)
	}
}

func (service *Impl) handleEngagement(source sources.Source, keyspace string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request EngagementRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		if !source.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "source not initialized"})
			return
		}

		tweetID, handle, err := urls.Parse(request.TweetURL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		key := keyspace + constants.CacheEngagementPrefix + tweetID

		var cached responses.Engagement
		if service.readCache(ctx, key, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}

		// Full resolution: the shared tweet entry this populates must carry
		// the author block a later tweet lookup expects.
		tweet, status := service.resolveTweet(ctx, source, keyspace, tweetID, handle, true)
		if tweet == nil {
			c.JSON(status, gin.H{"error": tweetErrorMessage(status)})
			return
		}

		engagement := responses.Engagement{
			Likes:     tweet.Engagement.Likes,
			Retweets:  tweet.Engagement.Retweets,
			Replies:   tweet.Engagement.Replies,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Source:    source.Name(),
		}
		service.writeCache(ctx, key, engagement, constants.CacheEngagementTTL)

		c.JSON(http.StatusOK, engagement)
	}
}

func (service *Impl) handleUser(source sources.Source, keyspace string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request UserInfoRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username required"})
			return
		}

		if !source.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "source not initialized"})
			return
		}

		ctx := c.Request.Context()
		key := keyspace + constants.CacheUserPrefix + request.Username

		var cached responses.UserInfo
		if service.readCache(ctx, key, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}

		user, err := source.LookupUser(ctx, request.Username)
		if err != nil {
			if errors.Is(err, sources.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}

			log.Error().Err(err).
				Str(constants.LogHandle, request.Username).
				Str(constants.LogSource, source.Name()).
				Msgf("Cannot retrieve user information")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user information"})
			return
		}

		service.writeCache(ctx, key, user, constants.CacheUserTTL)

		c.JSON(http.StatusOK, user)
	}
}

// resolveTweet is the cache-backed resolution flow every tweet-shaped lookup
// goes through: cache lookup, source call on miss, cache write, archive.
func (service *Impl) resolveTweet(ctx context.Context, source sources.Source, keyspace string,
	tweetID string, handle string, includeUserInfo bool) (*responses.Tweet, int) {
	key := keyspace + constants.CacheTweetPrefix + tweetID

	var cached responses.Tweet
	if service.readCache(ctx, key, &cached) {
		return &cached, http.StatusOK
	}

	tweet, err := source.LookupTweet(ctx, tweetID, handle, includeUserInfo)
	if err != nil {
		if errors.Is(err, sources.ErrNotFound) {
			return nil, http.StatusNotFound
		}

		log.Error().Err(err).
			Str(constants.LogTweetID, tweetID).
			Str(constants.LogSource, source.Name()).
			Msgf("Cannot retrieve tweet")
		return nil, http.StatusInternalServerError
	}

	tweet.IsCommunityPost = service.isCommunityPost(tweet.Content)
	service.writeCache(ctx, key, tweet, constants.CacheTweetTTL)
	service.archive.Record(tweet, handle)

	return tweet, http.StatusOK
}

func tweetErrorMessage(status int) string {
	if status == http.StatusNotFound {
		return "tweet not found"
	}

	return "failed to scrape tweet data"
}
