// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package policy holds the role-based redaction rules applied to influencer
// records before they are returned to a caller.
package policy

import "github.com/beatfluencer/beatfluencer-api/models"

// projection removes fields a role may not see. It receives a copy.
type projection func(inf *models.Influencer)

// projections maps a role to the fields hidden from it. Roles without an
// entry see the full record.
var projections = map[models.Role]projection{
	models.RoleCampaignManager: hideCommercialDetails,
}

// hideCommercialDetails clears remuneration, contact and payment data.
func hideCommercialDetails(inf *models.Influencer) {
	inf.RemunerationServices = []models.RemunerationService{}
	inf.Phone = ""
	inf.Email = ""
	inf.BeneficiaryName = nil
	inf.AccountNumber = nil
	inf.TINNumber = nil
	inf.BankName = nil
}

// Apply returns the view of inf that role is allowed to see. The input is
// not modified.
func Apply(inf models.Influencer, role models.Role) models.Influencer {
	project, ok := projections[role]
	if !ok {
		return inf
	}

	project(&inf)
	return inf
}

// ApplyAll redacts every record in infs for role and returns a new slice.
func ApplyAll(infs []models.Influencer, role models.Role) []models.Influencer {
	out := make([]models.Influencer, 0, len(infs))
	for _, inf := range infs {
		out = append(out, Apply(inf, role))
	}
	return out
}
