package archive

import (
	"time"

	"twitter-gateway/models/constants"
	"twitter-gateway/models/entities"
	"twitter-gateway/models/responses"
	repo "twitter-gateway/repositories/tweets"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New(scheduler gocron.Scheduler, repository repo.Repository) (*Impl, error) {
	service := &Impl{
		retention:  viper.GetDuration(constants.ArchiveRetention),
		repository: repository,
	}

	_, errJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.ArchivePruneCronTab), true),
		gocron.NewTask(func() { service.pruneOldTweets() }),
		gocron.WithName("Prune tweet archive"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return service, nil
}

// Record keeps a copy of every tweet the gateway resolved. Archiving is best
// effort and never fails the request that produced the tweet.
func (service *Impl) Record(tweet *responses.Tweet, handle string) {
	entity := MapTweetToEntity(tweet, handle)
	if err := service.repository.SaveOrUpdate(entity); err != nil {
		log.Error().Err(err).
			Str(constants.LogTweetID, tweet.TweetID).
			Msgf("Cannot archive tweet, ignored")
	}
}

func (service *Impl) Recent(limit int) ([]responses.ArchivedTweet, error) {
	saved, err := service.repository.GetRecent(limit)
	if err != nil {
		return nil, err
	}

	archived := make([]responses.ArchivedTweet, 0, len(saved))
	for _, tweet := range saved {
		archived = append(archived, MapEntityToResponse(tweet))
	}

	return archived, nil
}

func (service *Impl) Count() int64 {
	return service.repository.Count()
}

// Ready reports whether the archive database is reachable.
func (service *Impl) Ready() bool {
	return service.repository.Ready()
}

func (service *Impl) pruneOldTweets() {
	cutoff := time.Now().UTC().Add(-service.retention)
	pruned, err := service.repository.DeleteOlderThan(cutoff)
	if err != nil {
		log.Error().Err(err).Msgf("Cannot prune tweet archive")
		return
	}

	log.Info().Int64(constants.LogTweetNumber, pruned).Msgf("Pruned tweet archive")
}

func MapEntityToResponse(tweet entities.Tweet) responses.ArchivedTweet {
	return responses.ArchivedTweet{
		TweetID:         tweet.ID,
		AuthorHandle:    tweet.AuthorHandle,
		Content:         tweet.Text,
		Likes:           tweet.Likes,
		Retweets:        tweet.Retweets,
		Replies:         tweet.Replies,
		Timestamp:       tweet.Timestamp,
		Source:          tweet.Source,
		IsCommunityPost: tweet.CommunityPost,
	}
}

func MapTweetToEntity(tweet *responses.Tweet, handle string) entities.Tweet {
	var timestamp int64
	if createdAt, err := time.Parse(time.RFC3339, tweet.CreatedAt); err == nil {
		timestamp = createdAt.Unix()
	}

	return entities.Tweet{
		ID:            tweet.TweetID,
		AuthorHandle:  handle,
		Text:          tweet.Content,
		Likes:         tweet.Engagement.Likes,
		Retweets:      tweet.Engagement.Retweets,
		Replies:       tweet.Engagement.Replies,
		Timestamp:     timestamp,
		Source:        tweet.Source,
		CommunityPost: tweet.IsCommunityPost,
	}
}
