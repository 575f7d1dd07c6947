package api

import (
	"context"
	"net/http"
	"time"

	"twitter-gateway/pkg/sources"
	"twitter-gateway/services/archive"
	"twitter-gateway/utils/caches"
)

type Service interface {
	ListenAndServe()
	Shutdown(ctx context.Context) error
}

type Impl struct {
	primary   sources.Source
	secondary sources.Source
	cache     caches.KeyValue
	archive   archive.Service
	keywords  []string
	startedAt time.Time
	server    *http.Server
}

type TweetRequest struct {
	TweetURL string `json:"tweet_url" binding:"required"`
	// Both flags default to true when omitted.
	IncludeEngagement *bool `json:"include_engagement"`
	IncludeUserInfo   *bool `json:"include_user_info"`
}

type EngagementRequest struct {
	TweetURL string `json:"tweet_url" binding:"required"`
}

type UserInfoRequest struct {
	Username         string `json:"username" binding:"required"`
	IncludeFollowers bool   `json:"include_followers"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	Service      string `json:"service"`
	Timestamp    string `json:"timestamp"`
	ScraperReady bool   `json:"scraper_ready"`
	ArchiveReady bool   `json:"archive_ready"`
}

type StatsResponse struct {
	ArchivedTweets string `json:"archived_tweets"`
	Uptime         string `json:"uptime"`
}
