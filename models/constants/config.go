package constants

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	ConfigFileName = ".env"

	// Port the HTTP gateway listens on.
	HTTPPort = "HTTP_PORT"

	//nolint:gosec // False positive.
	// Auth token used when logged in to Twitter.
	TwitterAuthToken = "TWITTER_AUTH_TOKEN"

	//nolint:gosec // False positive.
	// CSRF token used when logged in to Twitter.
	TwitterCSRFToken = "TWITTER_CSRF_TOKEN"

	// Accounts handed to the GraphQL client, "user:pass" or
	// "user:pass:auth_token:ct0", comma separated.
	TwitterAccounts = "TWITTER_ACCOUNTS"

	// Number of timeline tweets fetched per lookup.
	TwitterTweetCount = "TWEET_COUNT"

	// Comma-separated keywords marking a tweet as a community post.
	CommunityKeywords = "COMMUNITY_KEYWORDS"

	// SQLITE_URL URL.
	SqliteURL = "SQLITE_URL"

	// Redis URL with the following format: redis://HOST:PORT/DB.
	// Empty switches the gateway to the in-process cache.
	RedisURL = "REDIS_URL"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	// Boolean; release mode for the HTTP router.
	Production = "PRODUCTION"

	// Cron tab to heartbeat.
	HealthCronTab = "HEALTH_CRON_TAB"

	// Cron tab to archive pruning.
	ArchivePruneCronTab = "ARCHIVE_PRUNE_CRON_TAB"

	// Archived tweets older than this are pruned. Duration type.
	ArchiveRetention = "ARCHIVE_RETENTION"

	defaultHTTPPort            = 8001
	defaultTwitterAuthToken    = ""
	defaultTwitterCSRFToken    = ""
	defaultTwitterAccounts     = ""
	defaultTwitterTweetCount   = 50
	defaultCommunityKeywords   = "@layeredge,$edgen"
	defaultSqliteURL           = "twitter-gateway.db"
	defaultRedisURL            = ""
	defaultHealthCrontab       = "* * * * *"
	defaultArchivePruneCrontab = "0 3 * * *"
	defaultArchiveRetention    = 720 * time.Hour
	defaultLogLevel            = zerolog.InfoLevel
	defaultProduction          = false
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		HTTPPort:            defaultHTTPPort,
		TwitterAuthToken:    defaultTwitterAuthToken,
		TwitterCSRFToken:    defaultTwitterCSRFToken,
		TwitterAccounts:     defaultTwitterAccounts,
		TwitterTweetCount:   defaultTwitterTweetCount,
		CommunityKeywords:   defaultCommunityKeywords,
		SqliteURL:           defaultSqliteURL,
		RedisURL:            defaultRedisURL,
		LogLevel:            defaultLogLevel.String(),
		Production:          defaultProduction,
		HealthCronTab:       defaultHealthCrontab,
		ArchivePruneCronTab: defaultArchivePruneCrontab,
		ArchiveRetention:    defaultArchiveRetention,
	}
}
