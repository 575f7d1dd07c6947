package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"twitter-gateway/models/constants"
	"twitter-gateway/models/responses"
	"twitter-gateway/pkg/sources"
	"twitter-gateway/utils/caches"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	name       string
	ready      bool
	tweet      *responses.Tweet
	user       *responses.UserInfo
	err        error
	tweetCalls int
	userCalls  int
}

func (s *stubSource) Name() string { return s.name }
func (s *stubSource) Ready() bool  { return s.ready }

func (s *stubSource) LookupTweet(_ context.Context, _ string, _ string, includeUserInfo bool) (*responses.Tweet, error) {
	s.tweetCalls++
	if s.err != nil {
		return nil, s.err
	}
	tweet := *s.tweet
	tweet.Source = s.name
	if !includeUserInfo {
		tweet.Author = responses.Author{Username: tweet.Author.Username}
	}
	return &tweet, nil
}

func (s *stubSource) LookupUser(_ context.Context, _ string) (*responses.UserInfo, error) {
	s.userCalls++
	if s.err != nil {
		return nil, s.err
	}
	user := *s.user
	return &user, nil
}

type stubArchive struct {
	ready    bool
	recorded []responses.ArchivedTweet
	recent   []responses.ArchivedTweet
}

func (s *stubArchive) Ready() bool { return s.ready }

func (s *stubArchive) Record(tweet *responses.Tweet, handle string) {
	s.recorded = append(s.recorded, responses.ArchivedTweet{
		TweetID:      tweet.TweetID,
		AuthorHandle: handle,
		Content:      tweet.Content,
		Source:       tweet.Source,
	})
}

func (s *stubArchive) Recent(limit int) ([]responses.ArchivedTweet, error) {
	if limit > len(s.recent) {
		limit = len(s.recent)
	}
	return s.recent[:limit], nil
}

func (s *stubArchive) Count() int64 { return int64(len(s.recent)) }

func sampleTweet() *responses.Tweet {
	return &responses.Tweet{
		TweetID: "20",
		Content: "gm @LayerEdge",
		Author:  responses.Author{Username: "jack", DisplayName: "Jack"},
		Engagement: responses.EngagementCounts{
			Likes:    5,
			Retweets: 2,
			Replies:  1,
		},
		CreatedAt: "2024-03-21T12:30:00Z",
	}
}

func setupGateway(t *testing.T) (*Impl, *stubSource, *stubSource, *stubArchive) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	for key, value := range constants.GetDefaultConfigValues() {
		viper.SetDefault(key, value)
	}

	primary := &stubSource{name: "scraper", ready: true, tweet: sampleTweet(), user: &responses.UserInfo{Username: "jack", DisplayName: "Jack"}}
	secondary := &stubSource{name: "graphql", ready: true, tweet: sampleTweet(), user: &responses.UserInfo{Username: "jack"}}
	archived := &stubArchive{ready: true}

	service := New(primary, secondary, caches.NewLocal(), archived)
	return service, primary, secondary, archived
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandleHealth(t *testing.T) {
	service, _, _, _ := setupGateway(t)
	router := service.buildRouter()

	recorder := doJSON(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "twitter-gateway", health.Service)
	assert.True(t, health.ScraperReady)
	assert.True(t, health.ArchiveReady)
	assert.NotEmpty(t, health.Timestamp)
}

func TestHandleTweetCacheAside(t *testing.T) {
	service, primary, _, archived := setupGateway(t)
	router := service.buildRouter()
	body := `{"tweet_url":"https://x.com/jack/status/20"}`

	recorder := doJSON(router, http.MethodPost, "/tweet", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var tweet responses.Tweet
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &tweet))
	assert.Equal(t, "20", tweet.TweetID)
	assert.Equal(t, "scraper", tweet.Source)
	assert.True(t, tweet.IsCommunityPost, "keyword match is case-insensitive")
	assert.Equal(t, 1, primary.tweetCalls)
	assert.Len(t, archived.recorded, 1)
	assert.Equal(t, "jack", archived.recorded[0].AuthorHandle)

	// Second lookup is served from the cache.
	recorder = doJSON(router, http.MethodPost, "/tweet", body)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, primary.tweetCalls)
	assert.Len(t, archived.recorded, 1)
}

func TestHandleTweetInvalidInput(t *testing.T) {
	service, primary, _, _ := setupGateway(t)
	router := service.buildRouter()

	recorder := doJSON(router, http.MethodPost, "/tweet", `{"tweet_url":"https://x.com/jack"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(router, http.MethodPost, "/tweet", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(router, http.MethodPost, "/tweet", `not json`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	assert.Zero(t, primary.tweetCalls)
}

func TestHandleTweetNotFound(t *testing.T) {
	service, primary, _, _ := setupGateway(t)
	primary.err = sources.ErrNotFound
	router := service.buildRouter()

	recorder := doJSON(router, http.MethodPost, "/tweet", `{"tweet_url":"https://x.com/jack/status/21"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "tweet not found")
}

func TestHandleTweetSourceFailure(t *testing.T) {
	service, primary, _, _ := setupGateway(t)
	primary.err = assertErr("scrape blew up")
	router := service.buildRouter()

	recorder := doJSON(router, http.MethodPost, "/tweet", `{"tweet_url":"https://x.com/jack/status/22"}`)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "failed to scrape tweet data")
}

func TestHandleTweetSourceNotReady(t *testing.T) {
	service, primary, _, _ := setupGateway(t)
	primary.ready = false
	router := service.buildRouter()

	recorder := doJSON(router, http.MethodPost, "/tweet", `{"tweet_url":"https://x.com/jack/status/20"}`)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	// Availability is checked before the URL is inspected.
	recorder = doJSON(router, http.MethodPost, "/tweet", `{"tweet_url":"https://x.com/jack"}`)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	recorder = doJSON(router, http.MethodPost, "/engagement", `{"tweet_url":"https://x.com/jack"}`)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestHandleEngagement(t *testing.T) {
	service, primary, _, _ := setupGateway(t)
	router := service.buildRouter()
	body := `{"tweet_url":"https://x.com/jack/status/20"}`

	recorder := doJSON(router, http.MethodPost, "/engagement", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var engagement responses.Engagement
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &engagement))
	assert.Equal(t, 5, engagement.Likes)
	assert.Equal(t, 2, engagement.Retweets)
	assert.Equal(t, 1, engagement.Replies)
	assert.Equal(t, "scraper", engagement.Source)
	assert.NotEmpty(t, engagement.Timestamp)
	assert.Equal(t, 1, primary.tweetCalls)

	// Cached on the engagement key; no further source call.
	recorder = doJSON(router, http.MethodPost, "/engagement", body)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, primary.tweetCalls)

	// The resolution also populated the tweet key, with the author block a
	// later tweet lookup expects.
	recorder = doJSON(router, http.MethodPost, "/tweet", body)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, primary.tweetCalls)

	var tweet responses.Tweet
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &tweet))
	assert.Equal(t, "Jack", tweet.Author.DisplayName)
}

func TestHandleUser(t *testing.T) {
	service, primary, _, _ := setupGateway(t)
	router := service.buildRouter()
	body := `{"username":"jack"}`

	recorder := doJSON(router, http.MethodPost, "/user", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var user responses.UserInfo
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &user))
	assert.Equal(t, "jack", user.Username)
	assert.Equal(t, 1, primary.userCalls)

	recorder = doJSON(router, http.MethodPost, "/user", body)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, primary.userCalls)

	recorder = doJSON(router, http.MethodPost, "/user", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleUserNotFound(t *testing.T) {
	service, primary, _, _ := setupGateway(t)
	primary.err = sources.ErrNotFound
	router := service.buildRouter()

	recorder := doJSON(router, http.MethodPost, "/user", `{"username":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "user not found")
}

func TestSecondaryNamespaceIsIsolated(t *testing.T) {
	service, primary, secondary, _ := setupGateway(t)
	router := service.buildRouter()
	body := `{"tweet_url":"https://x.com/jack/status/20"}`

	recorder := doJSON(router, http.MethodPost, "/tweet", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(router, http.MethodPost, "/graphql/tweet", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var tweet responses.Tweet
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &tweet))
	assert.Equal(t, "graphql", tweet.Source)

	// Each namespace resolved against its own source and keyspace.
	assert.Equal(t, 1, primary.tweetCalls)
	assert.Equal(t, 1, secondary.tweetCalls)

	recorder = doJSON(router, http.MethodPost, "/graphql/user", `{"username":"jack"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, secondary.userCalls)
	assert.Zero(t, primary.userCalls)
}

func TestHandleRecentTweets(t *testing.T) {
	service, _, _, archived := setupGateway(t)
	archived.recent = []responses.ArchivedTweet{
		{TweetID: "2", AuthorHandle: "jack"},
		{TweetID: "1", AuthorHandle: "jack"},
	}
	router := service.buildRouter()

	recorder := doJSON(router, http.MethodGet, "/tweets/recent?limit=1", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"count":1`)

	recorder = doJSON(router, http.MethodGet, "/tweets/recent", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"count":2`)

	recorder = doJSON(router, http.MethodGet, "/tweets/recent?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(router, http.MethodGet, "/tweets/recent?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleStats(t *testing.T) {
	service, _, _, archived := setupGateway(t)
	archived.recent = make([]responses.ArchivedTweet, 3)
	router := service.buildRouter()

	recorder := doJSON(router, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var stats StatsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &stats))
	assert.Equal(t, "3", stats.ArchivedTweets)
	assert.NotEmpty(t, stats.Uptime)
}

func TestParseKeywords(t *testing.T) {
	assert.Equal(t, []string{"@layeredge", "$edgen"}, parseKeywords("@LayerEdge, $EDGEN"))
	assert.Nil(t, parseKeywords(" , "))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
