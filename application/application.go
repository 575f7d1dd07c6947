package application

import (
	"context"
	"time"

	"twitter-gateway/models/entities"
	tweetsRepo "twitter-gateway/repositories/tweets"
	"twitter-gateway/services/api"
	"twitter-gateway/services/archive"
	"twitter-gateway/services/graphclient"
	"twitter-gateway/services/health"
	"twitter-gateway/services/scraper"
	"twitter-gateway/utils/caches"
	"twitter-gateway/utils/databases"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func New() (*Impl, error) {
	db := databases.New()
	if errDB := db.Run(); errDB != nil {
		return nil, errDB
	}

	errMigration := db.GetDB().AutoMigrate(&entities.Tweet{})
	if errMigration != nil {
		return nil, errMigration
	}

	scheduler, errScheduler := gocron.NewScheduler()
	if errScheduler != nil {
		return nil, errScheduler
	}

	// Repositories
	tweetRepository := tweetsRepo.New(db)

	archiveService, errArchive := archive.New(scheduler, tweetRepository)
	if errArchive != nil {
		return nil, errArchive
	}

	healthService, errHealth := health.New(scheduler)
	if errHealth != nil {
		return nil, errHealth
	}

	apiService := api.New(scraper.New(), graphclient.New(), caches.New(), archiveService)

	return &Impl{
		scheduler:      scheduler,
		apiService:     apiService,
		archiveService: archiveService,
		healthService:  healthService,
		db:             db,
	}, nil
}

func (app *Impl) Run() {
	app.scheduler.Start()
	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}

	go app.apiService.ListenAndServe()
}

func (app *Impl) Shutdown() {
	if err := app.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.apiService.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown HTTP gateway, continuing...")
	}

	app.db.Shutdown()
	log.Info().Msgf("Application is no longer running")
}
