// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the permission level assigned to a back-office user.
type Role string

const (
	// RoleAdmin has access to every route, including user listing.
	RoleAdmin Role = "admin"
	// RoleCampaignManager reads influencers with payment and contact data redacted.
	RoleCampaignManager Role = "campaign_manager"
	// RoleInfluencerManager creates influencers and checks social URLs.
	RoleInfluencerManager Role = "influencer_manager"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCampaignManager, RoleInfluencerManager:
		return true
	}
	return false
}

// User is a back-office account. PasswordHash is stored but never serialized
// to JSON.
type User struct {
	ID           string     `json:"id" bson:"id"`
	Username     string     `json:"username" bson:"username"`
	Email        string     `json:"email" bson:"email"`
	Role         Role       `json:"role" bson:"role"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	IsActive     bool       `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
	LastLogin    *time.Time `json:"last_login" bson:"last_login"`
}

// TableName returns the name of the collection (or table) holding users.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
