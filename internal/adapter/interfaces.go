// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the Beatfluencer REST API.
//
// [APIAdapter] hides the transport from callers such as the command-line
// client. Error responses are mapped by mapHTTPError to the sentinel values
// in errors.go so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/beatfluencer/beatfluencer-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_adapter_mock.go -package=mock

// APIAdapter is a session against the Beatfluencer API. A successful Login
// stores the bearer token, which is then sent with every authenticated call.
type APIAdapter interface {
	// SetToken stores the bearer token used by authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before login.
	Token() string

	// Login exchanges credentials for an access token and stores it.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Me returns the user the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	ListInfluencers(ctx context.Context, query models.InfluencerListQuery) ([]models.Influencer, error)
	GetInfluencer(ctx context.Context, id string) (models.Influencer, error)
	SearchInfluencers(ctx context.Context, query models.InfluencerSearchQuery) ([]models.Influencer, error)
	CheckSocialURL(ctx context.Context, url string) (bool, error)

	ListBrands(ctx context.Context) ([]models.Brand, error)
	ListCampaigns(ctx context.Context) ([]models.Campaign, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
