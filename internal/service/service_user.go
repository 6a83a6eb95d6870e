package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beatfluencer/beatfluencer-api/internal/crypto"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/store"
	"github.com/beatfluencer/beatfluencer-api/internal/utils"
	"github.com/beatfluencer/beatfluencer-api/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	ids            utils.IDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            utils.NewUUIDGenerator(),
		now:            utcNow,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.List(ctx, store.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// EnsureUser is used for bootstrap accounts and skips request validation.
func (s *userService) EnsureUser(ctx context.Context, req models.RegisterRequest) (bool, error) {
	_, err := newUser(ctx, s.userRepository, s.hasher, s.ids, req, s.now())
	if errors.Is(err, ErrEmailAlreadyRegistered) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
