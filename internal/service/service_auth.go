package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beatfluencer/beatfluencer-api/internal/config"
	"github.com/beatfluencer/beatfluencer-api/internal/crypto"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/store"
	"github.com/beatfluencer/beatfluencer-api/internal/utils"
	"github.com/beatfluencer/beatfluencer-api/internal/validators"
	"github.com/beatfluencer/beatfluencer-api/models"
)

// tokenType is the token_type of every login response.
const tokenType = "bearer"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher for
// digests.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	ids            utils.IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            utcNow,
		logger:         logger,
	}
}

// Register creates a new user account with a bcrypt password digest.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided wrapping the validation error.
//   - ErrEmailAlreadyRegistered if the e-mail is taken, whether detected by
//     the lookup or by the unique index on insert.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("invalid register request")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := newUser(ctx, a.userRepository, a.hasher, a.ids, req, a.now())
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

// Login authenticates an existing user.
//
// Unknown e-mails and wrong passwords both yield ErrInvalidCredentials. On
// success last_login is recorded and a digest of an outdated scheme is
// replaced with a bcrypt one.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("email", req.Email).Msg("login for unknown email")
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	var rehashed string
	if a.hasher.NeedsRehash(user.PasswordHash) {
		if rehashed, err = a.hasher.Hash(req.Password); err != nil {
			log.Err(err).Str("user_id", user.ID).Msg("password rehash failed")
			rehashed = ""
		}
	}

	loginAt := a.now()
	if err = a.userRepository.UpdateLoginInfo(ctx, user.ID, loginAt, rehashed); err != nil {
		return models.LoginResponse{}, fmt.Errorf("recording login failed: %w", err)
	}
	user.LastLogin = &loginAt
	if rehashed != "" {
		log.Info().Str("user_id", user.ID).Msg("password digest upgraded")
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		AccessToken: token.SignedString,
		TokenType:   tokenType,
		User:        user,
	}, nil
}

// Authenticate validates tokenString and loads the user named by its subject.
// A token of a user that no longer exists is treated as invalid.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindByEmail(ctx, token.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's e-mail as "sub", and expires
// after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// newUser checks that the e-mail is free, hashes the password and inserts
// the account.
func newUser(ctx context.Context, repo store.UserRepository, hasher crypto.PasswordHasher, ids utils.IDGenerator, req models.RegisterRequest, now time.Time) (models.User, error) {
	_, err := repo.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.User{}, ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrUserNotFound):
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	digest, err := hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           ids.Generate(),
		Username:     req.Username,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: digest,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = repo.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyRegistered
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
