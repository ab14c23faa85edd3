package handler

import "foodbridge/internal/registration/models"

// RegisterResponse is the HTTP response for a successful registration.
type RegisterResponse struct {
	Message    string `json:"message"`
	TrustLevel string `json:"trust_level"`
	UserID     string `json:"user_id"`
}

// FromAccount converts a registered account into the HTTP response.
func FromAccount(account *models.RegisteredAccount) *RegisterResponse {
	return &RegisterResponse{
		Message:    "Registered and verified",
		TrustLevel: string(account.TrustLevel),
		UserID:     account.UserID,
	}
}
