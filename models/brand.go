// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Brand is a client company whose campaigns are run on the platform.
type Brand struct {
	ID               string              `json:"id" bson:"id"`
	LegalName        string              `json:"legal_name" bson:"legal_name"`
	LogoURL          *string             `json:"logo_url" bson:"logo_url"`
	Industry         string              `json:"industry" bson:"industry"`
	NatureOfBusiness string              `json:"nature_of_business" bson:"nature_of_business"`
	Address          string              `json:"address" bson:"address"`
	Website          *string             `json:"website" bson:"website"`
	SocialMediaLinks map[string]string   `json:"social_media_links" bson:"social_media_links"`
	ContactPersons   []map[string]string `json:"contact_persons" bson:"contact_persons"`
	CreatedAt        time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at" bson:"updated_at"`
}

// TableName returns the name of the collection (or table) holding brands.
func (b Brand) TableName() string {
	return "brands"
}

// BrandCreateRequest is the body of POST /api/brands.
type BrandCreateRequest struct {
	LegalName        string              `json:"legal_name"`
	LogoURL          *string             `json:"logo_url"`
	Industry         string              `json:"industry"`
	NatureOfBusiness string              `json:"nature_of_business"`
	Address          string              `json:"address"`
	Website          *string             `json:"website"`
	SocialMediaLinks map[string]string   `json:"social_media_links"`
	ContactPersons   []map[string]string `json:"contact_persons"`
}

// ToBrand copies the request into a new Brand without server-owned fields.
func (r BrandCreateRequest) ToBrand() Brand {
	b := Brand{
		LegalName:        r.LegalName,
		LogoURL:          r.LogoURL,
		Industry:         r.Industry,
		NatureOfBusiness: r.NatureOfBusiness,
		Address:          r.Address,
		Website:          r.Website,
		SocialMediaLinks: r.SocialMediaLinks,
		ContactPersons:   r.ContactPersons,
	}
	if b.SocialMediaLinks == nil {
		b.SocialMediaLinks = map[string]string{}
	}
	if b.ContactPersons == nil {
		b.ContactPersons = []map[string]string{}
	}

	return b
}
