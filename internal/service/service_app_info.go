package service

import (
	"context"
	"runtime"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/models"
)

type appInfoService struct {
	appVersion  string
	environment string
	buildInfo   models.AppBuildInfo

	userStorage   store.UserStorage
	storageDriver string

	startedAt time.Time
	now       func() time.Time

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version unless the binary was built with
// a version of its own.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, storages *store.Storages, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	version := cfg.Version
	if bv := buildInfo.BuildVersion(); bv != "N/A" {
		version = bv
	}

	s := &appInfoService{
		appVersion:  version,
		environment: cfg.Environment,
		buildInfo:   buildInfo,
		startedAt:   time.Now(),
		now:         time.Now,
		logger:      logger,
	}
	if storages != nil {
		s.userStorage = storages.UserStorage
		s.storageDriver = storages.Driver
	}

	return s, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionResponse {
	return models.VersionResponse{
		Version:     s.appVersion,
		BuildDate:   s.buildInfo.BuildDate(),
		BuildCommit: s.buildInfo.BuildCommit(),
	}
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:    models.HealthStatusUp,
		Timestamp: s.now().UTC(),
	}
}

// DetailedHealth pings the storage. The overall status is DOWN when the
// storage is unreachable.
func (s *appInfoService) DetailedHealth(ctx context.Context) models.DetailedHealthResponse {
	now := s.now()
	resp := models.DetailedHealthResponse{
		Status:      models.HealthStatusUp,
		Timestamp:   now.UTC(),
		Version:     s.appVersion,
		Environment: s.environment,
		Uptime:      now.Sub(s.startedAt).Round(time.Second).String(),
		Goroutines:  runtime.NumGoroutine(),
		Storage:     s.storageHealth(ctx),
	}
	if resp.Storage.Status != models.HealthStatusUp {
		resp.Status = models.HealthStatusDown
	}

	return resp
}

func (s *appInfoService) storageHealth(ctx context.Context) models.StorageHealth {
	health := models.StorageHealth{Driver: s.storageDriver, Status: models.HealthStatusUp}
	if s.userStorage == nil {
		health.Status = models.HealthStatusDown
		health.Error = "storage is not configured"
		return health
	}

	if err := s.userStorage.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.storageHealth").Msg("storage ping failed")
		health.Status = models.HealthStatusDown
		health.Error = err.Error()
		return health
	}

	n, err := s.userStorage.Count(ctx)
	if err != nil {
		health.Status = models.HealthStatusDown
		health.Error = err.Error()
		return health
	}
	health.ActiveUsers = n

	return health
}
