package archive

import (
	"time"

	"twitter-gateway/models/responses"
	repo "twitter-gateway/repositories/tweets"
)

type Service interface {
	Record(tweet *responses.Tweet, handle string)
	Recent(limit int) ([]responses.ArchivedTweet, error)
	Count() int64
	Ready() bool
}

type Impl struct {
	retention  time.Duration
	repository repo.Repository
}
