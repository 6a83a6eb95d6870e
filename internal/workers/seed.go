// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/service"
	"github.com/beatfluencer/beatfluencer-api/models"
)

// DefaultUsers returns the accounts created on first start.
func DefaultUsers() []models.RegisterRequest {
	return []models.RegisterRequest{
		{
			Username: "admin",
			Email:    "admin@beatfluencer.com",
			Password: "admin123",
			Role:     models.RoleAdmin,
		},
		{
			Username: "Campaign Manager",
			Email:    "cm_new@test.com",
			Password: "cm123",
			Role:     models.RoleCampaignManager,
		},
	}
}

// SeedWorker creates missing user accounts. Existing accounts are left
// untouched, so running it on every start is safe.
type SeedWorker struct {
	users       service.UserService
	defaultUser []models.RegisterRequest
	logger      *logger.Logger
}

func NewSeedWorker(users service.UserService, defaults []models.RegisterRequest, logger *logger.Logger) *SeedWorker {
	return &SeedWorker{users: users, defaultUser: defaults, logger: logger}
}

// Run ensures each account exists. A failure is logged and does not stop
// the remaining accounts from being seeded.
func (s *SeedWorker) Run(ctx context.Context) {
	for _, req := range s.defaultUser {
		created, err := s.users.EnsureUser(ctx, req)
		if err != nil {
			s.logger.Err(err).Str("email", req.Email).Msg("seeding user failed")
			continue
		}
		if created {
			s.logger.Info().Str("email", req.Email).Str("role", string(req.Role)).Msg("default user created")
		} else {
			s.logger.Debug().Str("email", req.Email).Msg("default user already exists")
		}
	}
}
