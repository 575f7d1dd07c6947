package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"twitter-gateway/models/constants"
	"twitter-gateway/pkg/sources"
	"twitter-gateway/services/archive"
	"twitter-gateway/utils/caches"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const serviceName = "twitter-gateway"

func New(primary sources.Source, secondary sources.Source,
	cache caches.KeyValue, archiveService archive.Service) *Impl {
	service := &Impl{
		primary:   primary,
		secondary: secondary,
		cache:     cache,
		archive:   archiveService,
		keywords:  parseKeywords(viper.GetString(constants.CommunityKeywords)),
		startedAt: time.Now().UTC(),
	}

	service.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", viper.GetInt(constants.HTTPPort)),
		Handler: service.buildRouter(),
	}

	return service
}

func (service *Impl) buildRouter() *gin.Engine {
	if viper.GetBool(constants.Production) {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", service.handleHealth)
	router.GET("/stats", service.handleStats)
	router.GET("/tweets/recent", service.handleRecentTweets)

	// Same endpoints once per source. The secondary namespace keeps its own
	// cache keyspace so entries never mix across libraries.
	service.registerSourceRoutes(&router.RouterGroup, service.primary, "")
	service.registerSourceRoutes(router.Group("/"+service.secondary.Name()), service.secondary, service.secondary.Name()+":")

	return router
}

func (service *Impl) registerSourceRoutes(group *gin.RouterGroup, source sources.Source, keyspace string) {
	group.POST("/tweet", service.handleTweet(source, keyspace))
	group.POST("/engagement", service.handleEngagement(source, keyspace))
	group.POST("/user", service.handleUser(source, keyspace))
}

func (service *Impl) ListenAndServe() {
	log.Info().Str(constants.LogPort, service.server.Addr).Msgf("HTTP gateway is listening")
	if err := service.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msgf("HTTP gateway stopped unexpectedly")
	}
}

func (service *Impl) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}

func (service *Impl) readCache(ctx context.Context, key string, dest any) bool {
	data, found := service.cache.Get(ctx, key)
	if !found {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		log.Warn().Err(err).Str(constants.LogCacheKey, key).Msgf("Cannot decode cached entry, treated as miss")
		return false
	}

	log.Info().Str(constants.LogCacheKey, key).Msgf("Returning cached entry")
	return true
}

func (service *Impl) writeCache(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str(constants.LogCacheKey, key).Msgf("Cannot encode cache entry, skipped")
		return
	}

	service.cache.Set(ctx, key, data, ttl)
}

func (service *Impl) isCommunityPost(content string) bool {
	lowered := strings.ToLower(content)
	for _, keyword := range service.keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}

	return false
}

func parseKeywords(raw string) []string {
	var keywords []string
	for _, keyword := range strings.Split(raw, ",") {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		keywords = append(keywords, keyword)
	}

	return keywords
}
