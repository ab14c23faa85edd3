// Package store adapts the Supabase REST client to the registration service's
// ProfileStore port.
package store

import (
	"context"

	"foodbridge/internal/provider/supabase"
	"foodbridge/internal/registration/models"
)

// usersTable is the remote table holding profile records.
const usersTable = "Users"

// ProfileStore writes profile rows through the Supabase REST interface.
type ProfileStore struct {
	client *supabase.Client
}

func NewProfileStore(client *supabase.Client) *ProfileStore {
	return &ProfileStore{client: client}
}

func (s *ProfileStore) InsertProfile(ctx context.Context, row models.ProfileRow) error {
	return s.client.Insert(ctx, usersTable, row)
}
