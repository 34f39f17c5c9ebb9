package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/estate-hub/internal/config"
	"github.com/MKhiriev/estate-hub/internal/logger"
	"github.com/MKhiriev/estate-hub/internal/store"
	"github.com/MKhiriev/estate-hub/internal/utils"
	"github.com/MKhiriev/estate-hub/internal/validators"
	"github.com/MKhiriev/estate-hub/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the JWT
// session token lifecycle, using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator enforces the user-record field rules at the service boundary,
	// before any store access.
	validator validators.Validator

	// idGenerator mints the opaque identifier assigned to every new account.
	idGenerator IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, idGenerator IDGenerator, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		idGenerator:    idGenerator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the signup input (username length, email shape, password
// length), hashes the password with bcrypt, assigns a fresh opaque ID, and
// delegates persistence to the UserRepository. No token is issued here; the
// user signs in separately.
//
// Returns the persisted user or:
//   - A wrapped ErrValidation if any input rule fails.
//   - A wrapped storage error if the repository call fails (e.g. username or
//     email already taken — see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		Username: request.Username,
		Email:    request.Email,
	}

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("username", request.Username).Str("email", request.Email).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := validators.ValidatePassword(request.Password); err != nil {
		log.Err(err).Str("username", request.Username).Msg("invalid signup password provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	passwordHash, err := utils.HashPassword(request.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.ID = a.idGenerator.Generate()
	user.PasswordHash = passwordHash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Email and Password are non-empty, looks up the
// account by email, and verifies the password against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - A wrapped ErrValidation if Email or Password is empty.
//   - A wrapped storage error if the lookup fails (e.g. unknown email — see
//     store.ErrUserNotFound).
//   - ErrWrongPassword if the password does not verify.
func (a *authService) Login(ctx context.Context, request models.SigninRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyEmail)
	}
	if request.Password == "" {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyPassword)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(request.Password, foundUser.PasswordHash) {
		log.Warn().
			Str("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// GetUserByID fetches the account record for a verified token subject.
// A session whose account has been deleted since token issuance surfaces as
// store.ErrUserNotFound.
func (a *authService) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. An expired token is normalised to ErrTokenIsExpired;
// every other failure (bad signature, wrong issuer, malformed structure) to
// ErrTokenIsInvalid, so callers can produce distinct diagnostics without
// inspecting low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
