package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogTweetID       = "tweetID"
	LogHandle        = "handle"
	LogCacheKey      = "cacheKey"
	LogSource        = "source"
	LogTweetNumber   = "tweetNumber"
	LogPort          = "port"
	LogLevelFallback = zerolog.InfoLevel
)
