package service

import (
	"github.com/MKhiriev/estate-hub/internal/config"
	"github.com/MKhiriev/estate-hub/internal/logger"
	"github.com/MKhiriev/estate-hub/internal/store"
	"github.com/MKhiriev/estate-hub/internal/utils"
	"github.com/MKhiriev/estate-hub/internal/validators"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(repositories *store.Repositories, cfg config.Auth, logger *logger.Logger) *Services {
	userValidator := validators.NewUserValidator()
	idGenerator := utils.NewUUIDGenerator()

	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, userValidator, idGenerator, cfg, logger),
		UserService: NewUserService(repositories.UserRepository, userValidator, cfg, logger),
	}
}
