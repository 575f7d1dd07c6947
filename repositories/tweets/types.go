package tweets

import (
	"time"

	"twitter-gateway/models/entities"
	"twitter-gateway/utils/databases"
)

type Repository interface {
	SaveOrUpdate(tweet entities.Tweet) error
	GetRecent(limit int) ([]entities.Tweet, error)
	Count() int64
	DeleteOlderThan(cutoff time.Time) (int64, error)
	Ready() bool
}

type Impl struct {
	db databases.SqlConnection
}
