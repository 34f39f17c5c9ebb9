package store

import (
	"github.com/MKhiriev/estate-hub/internal/logger"
)

// Repositories groups every repository backed by the shared database
// connection. It is the single persistence entry point handed to the
// service layer.
type Repositories struct {
	UserRepository UserRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
	}
}
