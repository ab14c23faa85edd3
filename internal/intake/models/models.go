// Package models holds the intake domain types.
package models

// CustomRequest is a standalone record describing a quantity/type/deadline
// need. Immutable once submitted; stored as one append-only row.
//
// The reciever_id spelling is wire-compatible with the existing table column
// and client payloads.
type CustomRequest struct {
	RecieverID string `json:"reciever_id"`
	Quantity   string `json:"quantity"`
	FoodType   string `json:"food_type"`
	RequiredBy string `json:"required_by"`
	Notes      string `json:"notes"`
}
