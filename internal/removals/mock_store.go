package removals

import (
	"context"

	"github.com/bcgov/gh-org-report/internal/models"
)

// MockStore implements RemovalStore for testing.
type MockStore struct {
	SaveRemovalFunc  func(ctx context.Context, record models.RemovalRecord) error
	ListRemovalsFunc func(ctx context.Context, org string) ([]models.RemovalRecord, error)

	// Saved records every SaveRemoval call for assertions.
	Saved []models.RemovalRecord
}

func (m *MockStore) SaveRemoval(ctx context.Context, record models.RemovalRecord) error {
	m.Saved = append(m.Saved, record)
	if m.SaveRemovalFunc != nil {
		return m.SaveRemovalFunc(ctx, record)
	}
	return nil
}

func (m *MockStore) ListRemovals(ctx context.Context, org string) ([]models.RemovalRecord, error) {
	if m.ListRemovalsFunc != nil {
		return m.ListRemovalsFunc(ctx, org)
	}
	return nil, nil
}
