package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/estate-hub/internal/config"
	"github.com/MKhiriev/estate-hub/internal/logger"
	"github.com/MKhiriev/estate-hub/internal/store"
	"github.com/MKhiriev/estate-hub/internal/utils"
	"github.com/MKhiriev/estate-hub/internal/validators"
	"github.com/MKhiriev/estate-hub/models"
)

// userService is the concrete implementation of UserService.
// Every mutation is gated by an ownership check: the acting session identity
// must equal the target user ID, otherwise the operation fails with
// ErrForbidden before any store access.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	bcryptCost     int
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, cfg config.Auth, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// UpdateUser applies the supplied fields of update to the target user.
//
// Absent (nil) fields are left untouched; a supplied password is re-hashed
// with bcrypt before it reaches the store. Field rules are enforced only for
// the fields actually supplied.
//
// Returns the updated record or:
//   - ErrForbidden if actorID does not equal targetID.
//   - A wrapped ErrValidation if a supplied field violates its rule.
//   - A wrapped storage error otherwise (store.ErrUserNotFound,
//     store.ErrUserAlreadyExists on a uniqueness collision).
func (s *userService) UpdateUser(ctx context.Context, actorID, targetID string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if actorID != targetID {
		log.Warn().Str("actor_id", actorID).Str("target_id", targetID).Msg("update rejected: actor does not own target")
		return models.User{}, ErrForbidden
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Err(err).Str("target_id", targetID).Msg("invalid update data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if update.Password != nil {
		passwordHash, err := utils.HashPassword(*update.Password, s.bcryptCost)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.Password = &passwordHash
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, targetID, update)
	if err != nil {
		log.Err(err).Str("target_id", targetID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser hard-deletes the target user. The delete is irreversible.
//
// Returns nil on success or:
//   - ErrForbidden if actorID does not equal targetID.
//   - A wrapped store.ErrUserNotFound if the target does not exist.
//   - A wrapped storage error otherwise.
func (s *userService) DeleteUser(ctx context.Context, actorID, targetID string) error {
	log := logger.FromContext(ctx)

	if actorID != targetID {
		log.Warn().Str("actor_id", actorID).Str("target_id", targetID).Msg("delete rejected: actor does not own target")
		return ErrForbidden
	}

	if err := s.userRepository.DeleteUser(ctx, targetID); err != nil {
		log.Err(err).Str("target_id", targetID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	log.Info().Str("id", targetID).Msg("user deleted")
	return nil
}
