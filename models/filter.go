// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InfluencerFilter holds the store-level criteria for listing influencers.
// Empty or nil fields are not applied; all applied criteria must match.
type InfluencerFilter struct {
	// Status matches the influencer status exactly.
	Status string

	// Text is matched case-insensitively as a literal substring against
	// name, bio, categories and affiliated brands (any of them).
	Text string

	// Category requires membership in the categories list.
	Category string

	Gender   string
	Division string

	// BornBefore and BornAfter bound date_of_birth inclusively.
	BornBefore *time.Time
	BornAfter  *time.Time

	// Limit caps the number of returned records. Zero means no cap.
	Limit int64
}

// InfluencerSearchQuery carries the parameters of GET /api/search/influencers.
// Numeric parameters are optional; zero values are treated as absent.
type InfluencerSearchQuery struct {
	Q            string
	Platform     string
	MinFollowers int64
	MaxFollowers int64
	Category     string
	Gender       string
	MinAge       int
	MaxAge       int
	Division     string
}

// HasAccountCriteria reports whether the account-level pass must run.
func (q InfluencerSearchQuery) HasAccountCriteria() bool {
	return q.Platform != "" || q.MinFollowers > 0 || q.MaxFollowers > 0
}

// InfluencerListQuery carries the parameters of GET /api/influencers.
type InfluencerListQuery struct {
	Status   string
	Category string
	// Platform is accepted for compatibility and not applied.
	Platform string
}

// URLCheckResponse is returned by GET /api/influencers/check-url.
type URLCheckResponse struct {
	Exists bool `json:"exists"`
}
