package entities

import "time"

type Tweet struct {
	ID            string `gorm:"primaryKey"`
	AuthorHandle  string
	Text          string
	Likes         int
	Retweets      int
	Replies       int
	Timestamp     int64
	Source        string
	CommunityPost bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
