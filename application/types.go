package application

import (
	"twitter-gateway/services/api"
	"twitter-gateway/services/archive"
	"twitter-gateway/services/health"
	"twitter-gateway/utils/databases"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run()
	Shutdown()
}

type Impl struct {
	scheduler      gocron.Scheduler
	apiService     api.Service
	archiveService archive.Service
	healthService  health.Service
	db             databases.SqlConnection
}
