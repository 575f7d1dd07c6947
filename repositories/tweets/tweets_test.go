package tweets

import (
	"testing"
	"time"

	"twitter-gateway/models/constants"
	"twitter-gateway/models/entities"
	"twitter-gateway/utils/databases"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) *Impl {
	t.Helper()

	viper.Set(constants.SqliteURL, ":memory:")
	db := databases.New()
	require.NoError(t, db.Run())
	require.NoError(t, db.GetDB().AutoMigrate(&entities.Tweet{}))
	t.Cleanup(db.Shutdown)

	return New(db)
}

func TestSaveOrUpdate(t *testing.T) {
	repo := setupRepository(t)

	tweet := entities.Tweet{
		ID:           "20",
		AuthorHandle: "jack",
		Text:         "just setting up my twttr",
		Likes:        100,
		Timestamp:    1142974200,
		Source:       "scraper",
	}
	require.NoError(t, repo.SaveOrUpdate(tweet))
	assert.Equal(t, int64(1), repo.Count())

	tweet.Likes = 250
	require.NoError(t, repo.SaveOrUpdate(tweet))
	assert.Equal(t, int64(1), repo.Count())

	saved, err := repo.GetRecent(10)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 250, saved[0].Likes)
	assert.Equal(t, "jack", saved[0].AuthorHandle)
	assert.False(t, saved[0].CreatedAt.IsZero())
}

func TestReady(t *testing.T) {
	repo := setupRepository(t)
	assert.True(t, repo.Ready())
}

func TestGetRecentOrdersByTimestamp(t *testing.T) {
	repo := setupRepository(t)

	require.NoError(t, repo.SaveOrUpdate(entities.Tweet{ID: "1", Timestamp: 100}))
	require.NoError(t, repo.SaveOrUpdate(entities.Tweet{ID: "2", Timestamp: 300}))
	require.NoError(t, repo.SaveOrUpdate(entities.Tweet{ID: "3", Timestamp: 200}))

	recent, err := repo.GetRecent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2", recent[0].ID)
	assert.Equal(t, "3", recent[1].ID)
}

func TestDeleteOlderThan(t *testing.T) {
	repo := setupRepository(t)

	cutoff := time.Now().UTC()
	require.NoError(t, repo.SaveOrUpdate(entities.Tweet{ID: "old", Timestamp: cutoff.Add(-48 * time.Hour).Unix()}))
	require.NoError(t, repo.SaveOrUpdate(entities.Tweet{ID: "fresh", Timestamp: cutoff.Add(time.Hour).Unix()}))

	pruned, err := repo.DeleteOlderThan(cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)
	assert.Equal(t, int64(1), repo.Count())
}
