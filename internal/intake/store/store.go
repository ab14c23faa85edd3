// Package store adapts the Supabase REST client to the intake service's
// RequestStore port.
package store

import (
	"context"

	"foodbridge/internal/intake/models"
	"foodbridge/internal/provider/supabase"
)

// requestsTable is the remote table holding custom requests.
const requestsTable = "custom_requests"

// RequestStore writes custom request rows through the Supabase REST interface.
type RequestStore struct {
	client *supabase.Client
}

func NewRequestStore(client *supabase.Client) *RequestStore {
	return &RequestStore{client: client}
}

func (s *RequestStore) InsertRequest(ctx context.Context, req models.CustomRequest) error {
	return s.client.Insert(ctx, requestsTable, req)
}
