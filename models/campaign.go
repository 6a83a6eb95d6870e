// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusInitiated CampaignStatus = "initiated"
	CampaignStatusStarted   CampaignStatus = "started"
	CampaignStatusOngoing   CampaignStatus = "ongoing"
	CampaignStatusEnded     CampaignStatus = "ended"
)

// IsValid reports whether s is a known campaign status.
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusInitiated, CampaignStatusStarted, CampaignStatusOngoing, CampaignStatusEnded:
		return true
	}
	return false
}

// Campaign ties a brand to a set of influencers for a period and budget.
// WorkOrderAttachment and SupportingFiles hold upload URLs returned by
// POST /api/upload.
type Campaign struct {
	ID                  string            `json:"id" bson:"id"`
	BrandID             string            `json:"brand_id" bson:"brand_id"`
	CampaignName        string            `json:"campaign_name" bson:"campaign_name"`
	StartDate           time.Time         `json:"start_date" bson:"start_date"`
	EndDate             time.Time         `json:"end_date" bson:"end_date"`
	Budget              float64           `json:"budget" bson:"budget"`
	Brief               string            `json:"brief" bson:"brief"`
	Status              CampaignStatus    `json:"status" bson:"status"`
	ResponsiblePersonID string            `json:"responsible_person_id" bson:"responsible_person_id"`
	WorkOrderAttachment *string           `json:"work_order_attachment" bson:"work_order_attachment"`
	SupportingFiles     []string          `json:"supporting_files" bson:"supporting_files"`
	InfluencerIDs       []string          `json:"influencer_ids" bson:"influencer_ids"`
	ClientManager       map[string]string `json:"client_manager" bson:"client_manager"`
	CreatedAt           time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at" bson:"updated_at"`
}

// TableName returns the name of the collection (or table) holding campaigns.
func (c Campaign) TableName() string {
	return "campaigns"
}

// CampaignCreateRequest is the body of POST /api/campaigns.
type CampaignCreateRequest struct {
	BrandID             string            `json:"brand_id"`
	CampaignName        string            `json:"campaign_name"`
	StartDate           time.Time         `json:"start_date"`
	EndDate             time.Time         `json:"end_date"`
	Budget              float64           `json:"budget"`
	Brief               string            `json:"brief"`
	Status              CampaignStatus    `json:"status"`
	ResponsiblePersonID string            `json:"responsible_person_id"`
	WorkOrderAttachment *string           `json:"work_order_attachment"`
	SupportingFiles     []string          `json:"supporting_files"`
	InfluencerIDs       []string          `json:"influencer_ids"`
	ClientManager       map[string]string `json:"client_manager"`
}

// ToCampaign copies the request into a new Campaign without server-owned fields.
func (r CampaignCreateRequest) ToCampaign() Campaign {
	c := Campaign{
		BrandID:             r.BrandID,
		CampaignName:        r.CampaignName,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		Budget:              r.Budget,
		Brief:               r.Brief,
		Status:              r.Status,
		ResponsiblePersonID: r.ResponsiblePersonID,
		WorkOrderAttachment: r.WorkOrderAttachment,
		SupportingFiles:     r.SupportingFiles,
		InfluencerIDs:       r.InfluencerIDs,
		ClientManager:       r.ClientManager,
	}
	if c.SupportingFiles == nil {
		c.SupportingFiles = []string{}
	}
	if c.InfluencerIDs == nil {
		c.InfluencerIDs = []string{}
	}
	if c.ClientManager == nil {
		c.ClientManager = map[string]string{}
	}

	return c
}
