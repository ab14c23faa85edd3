package handler

import (
	"strings"

	"github.com/asaskevich/govalidator"

	"foodbridge/internal/registration/models"
	"foodbridge/internal/trust"
	dErrors "foodbridge/pkg/domain-errors"
)

// RegisterRequest is the HTTP request body for POST /register_user_with_ai.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	OrgName     string `json:"org_name"`
	OrgType     string `json:"org_type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	DocURL      string `json:"doc_url"`
	ContactInfo string `json:"contact_info"`
}

// Validate checks structural requirements before any external call is made.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *RegisterRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.TrimSpace(r.Role)
	r.OrgName = strings.TrimSpace(r.OrgName)
	r.OrgType = strings.TrimSpace(r.OrgType)
	r.Location = strings.TrimSpace(r.Location)
	r.Description = strings.TrimSpace(r.Description)
	r.DocURL = strings.TrimSpace(r.DocURL)
	r.ContactInfo = strings.TrimSpace(r.ContactInfo)

	required := map[string]string{
		"name":         r.Name,
		"email":        r.Email,
		"password":     r.Password,
		"role":         r.Role,
		"org_name":     r.OrgName,
		"org_type":     r.OrgType,
		"location":     r.Location,
		"description":  r.Description,
		"doc_url":      r.DocURL,
		"contact_info": r.ContactInfo,
	}
	for _, field := range []string{
		"name", "email", "password", "role", "org_name",
		"org_type", "location", "description", "doc_url", "contact_info",
	} {
		if required[field] == "" {
			return dErrors.New(dErrors.CodeValidation, field+" is required")
		}
	}

	if !govalidator.StringLength(r.Email, "1", "255") || !govalidator.IsEmail(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "invalid email")
	}
	if len(r.Password) < 6 {
		return dErrors.New(dErrors.CodeValidation, "password must be at least 6 characters")
	}
	if !govalidator.StringLength(r.DocURL, "1", "2048") || !govalidator.IsURL(r.DocURL) {
		return dErrors.New(dErrors.CodeValidation, "invalid doc_url")
	}

	return nil
}

// ToInput converts the validated request into the domain input.
func (r *RegisterRequest) ToInput() models.RegisterInput {
	return models.RegisterInput{
		Name:        r.Name,
		Email:       r.Email,
		Password:    r.Password,
		Role:        r.Role,
		ContactInfo: r.ContactInfo,
		Profile: trust.OrganizationProfile{
			Name:        r.OrgName,
			OrgType:     r.OrgType,
			Location:    r.Location,
			Description: r.Description,
			DocURL:      r.DocURL,
		},
	}
}
