package tweets

import (
	"errors"
	"fmt"
	"time"

	"twitter-gateway/models/entities"
	"twitter-gateway/utils/databases"

	"gorm.io/gorm"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

func (repo *Impl) SaveOrUpdate(tweet entities.Tweet) error {
	var existingTweet entities.Tweet

	result := repo.db.GetDB().Where("id = ?", tweet.ID).First(&existingTweet)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := repo.db.GetDB().Create(&tweet).Error; err != nil {
				return fmt.Errorf("failed to create tweet: %w", err)
			}
		} else {
			return fmt.Errorf("failed to check tweet existence: %w", result.Error)
		}
	} else {
		if err := repo.db.GetDB().Model(&existingTweet).Updates(tweet).Error; err != nil {
			return fmt.Errorf("failed to update tweet: %w", err)
		}
	}

	return nil
}

func (repo *Impl) GetRecent(limit int) ([]entities.Tweet, error) {
	var tweets []entities.Tweet

	res := repo.db.GetDB().
		Order("timestamp desc").
		Limit(limit).
		Find(&tweets)

	return tweets, res.Error
}

func (repo *Impl) Count() int64 {
	count := new(int64)
	repo.db.GetDB().Model(&entities.Tweet{}).Count(count)

	return *count
}

func (repo *Impl) Ready() bool {
	return repo.db.IsConnected()
}

func (repo *Impl) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := repo.db.GetDB().
		Where("timestamp < ?", cutoff.Unix()).
		Delete(&entities.Tweet{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to prune tweets: %w", res.Error)
	}

	return res.RowsAffected, nil
}
