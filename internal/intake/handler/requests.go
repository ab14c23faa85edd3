package handler

import (
	"strings"

	"foodbridge/internal/intake/models"
	dErrors "foodbridge/pkg/domain-errors"
)

// SubmitRequest is the HTTP request body for POST /submit_custom_request.
// Quantity stays free text ("5kg", "two crates"); required_by is passed
// through untyped the way the store column expects it.
type SubmitRequest struct {
	RecieverID string `json:"reciever_id"`
	Quantity   string `json:"quantity"`
	FoodType   string `json:"food_type"`
	RequiredBy string `json:"required_by"`
	Notes      string `json:"notes"`
}

// Validate checks presence of all five fields before any external call.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.RecieverID = strings.TrimSpace(r.RecieverID)
	r.Quantity = strings.TrimSpace(r.Quantity)
	r.FoodType = strings.TrimSpace(r.FoodType)
	r.RequiredBy = strings.TrimSpace(r.RequiredBy)
	r.Notes = strings.TrimSpace(r.Notes)

	for field, value := range map[string]string{
		"reciever_id": r.RecieverID,
		"quantity":    r.Quantity,
		"food_type":   r.FoodType,
		"required_by": r.RequiredBy,
		"notes":       r.Notes,
	} {
		if value == "" {
			return dErrors.New(dErrors.CodeValidation, field+" is required")
		}
	}
	return nil
}

// ToRequest converts the validated request into the domain record.
func (r *SubmitRequest) ToRequest() models.CustomRequest {
	return models.CustomRequest{
		RecieverID: r.RecieverID,
		Quantity:   r.Quantity,
		FoodType:   r.FoodType,
		RequiredBy: r.RequiredBy,
		Notes:      r.Notes,
	}
}
