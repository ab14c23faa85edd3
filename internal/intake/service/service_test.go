package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"foodbridge/internal/intake/models"
	dErrors "foodbridge/pkg/domain-errors"
	"foodbridge/pkg/platform/sentinel"
)

type fakeStore struct {
	insertErr error
	rows      []models.CustomRequest
}

func (f *fakeStore) InsertRequest(_ context.Context, req models.CustomRequest) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.rows = append(f.rows, req)
	return nil
}

type IntakeServiceSuite struct {
	suite.Suite
	ctx context.Context
	req models.CustomRequest
}

func TestIntakeServiceSuite(t *testing.T) {
	suite.Run(t, new(IntakeServiceSuite))
}

func (s *IntakeServiceSuite) SetupSuite() {
	s.ctx = context.Background()
	s.req = models.CustomRequest{
		RecieverID: "r1",
		Quantity:   "5kg",
		FoodType:   "rice",
		RequiredBy: "2025-01-01",
		Notes:      "urgent",
	}
}

func (s *IntakeServiceSuite) newService(store *fakeStore) *Service {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return New(store, logger)
}

func (s *IntakeServiceSuite) TestSubmitStoresExactlyOneRecord() {
	store := &fakeStore{}
	svc := s.newService(store)

	s.Require().NoError(svc.Submit(s.ctx, s.req))

	s.Require().Len(store.rows, 1)
	s.Equal(s.req, store.rows[0], "all five fields persist unchanged")
}

func (s *IntakeServiceSuite) TestSubmitStoreFailure() {
	store := &fakeStore{insertErr: fmt.Errorf("rest: %w", sentinel.ErrUnavailable)}
	svc := s.newService(store)

	err := svc.Submit(s.ctx, s.req)

	s.True(dErrors.HasCode(err, dErrors.CodeIntakeStorage))
	s.Empty(store.rows)
}
