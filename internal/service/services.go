package service

import (
	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/validators"
	"github.com/MKhiriev/go-user-registry/models"
)

type Services struct {
	UserService    UserService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages. The user service is
// wrapped with declarative validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, storages, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserValidationService(validators.NewUserValidator()).
		Wrap(NewUserService(storages.UserStorage, logger))

	return &Services{
		UserService:    userService,
		AuthService:    NewAuthService(logger),
		AppInfoService: appInfoService,
	}, nil
}
