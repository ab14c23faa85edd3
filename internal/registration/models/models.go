// Package models holds the registration domain types. They are transport and
// storage agnostic; JSON tags on ProfileRow match the remote table columns.
package models

import "foodbridge/internal/trust"

// RegisterInput is the validated input to account provisioning: the identity
// credentials plus the organization profile to classify and persist.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	ContactInfo string
	Profile     trust.OrganizationProfile
}

// RegisteredAccount is the terminal success state: identity and profile row
// exist and agree on the user id.
type RegisteredAccount struct {
	UserID     string
	TrustLevel trust.Level
}

// ProfileRow is the record written to the remote Users table, keyed by the
// opaque id the auth service assigned in stage A.
type ProfileRow struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	Role               string      `json:"role"`
	OrgName            string      `json:"org_name"`
	OrgType            string      `json:"org_type"`
	Location           string      `json:"location"`
	Description        string      `json:"description"`
	DocURL             string      `json:"doc_url"`
	TrustLevel         trust.Level `json:"trust_level"`
	IsVerified         bool        `json:"is_verified"`
	VerificationStatus string      `json:"verification_status"`
	ContactInfo        string      `json:"contact_info"`
}
