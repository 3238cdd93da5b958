package desktop

import (
	"context"
	"fmt"
	"time"

	"github.com/Yvaloski/MyDeskApp/internal/domain"
	"github.com/Yvaloski/MyDeskApp/internal/domain/models"
	"github.com/Yvaloski/MyDeskApp/internal/domain/repositories"
)

// fakeItemStore is an in-memory ItemStore honoring the partition
// addressing contract: items live in per-kind maps, reads with an
// explicit hint consult only that partition, and hint-less reads derive
// a candidate from the id prefix then probe the other partition.
type fakeItemStore struct {
	parts map[models.Kind]map[string]models.Item
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{
		parts: map[models.Kind]map[string]models.Item{
			models.KindFolder: {},
			models.KindFile:   {},
		},
	}
}

func (s *fakeItemStore) Create(_ context.Context, item *models.Item) error {
	if _, exists := s.parts[item.Kind][item.ID]; exists {
		return fmt.Errorf("item %s: %w", item.ID, domain.ErrConflict)
	}
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}
	s.parts[item.Kind][item.ID] = *item
	return nil
}

func (s *fakeItemStore) GetByID(_ context.Context, id string, hint models.Kind) (*models.Item, error) {
	if hint != "" {
		if item, ok := s.parts[hint][id]; ok {
			dup := item
			return &dup, nil
		}
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("item %s not found", id)}
	}

	first := s.candidate(id)
	if item, ok := s.parts[first][id]; ok {
		dup := item
		return &dup, nil
	}
	if item, ok := s.parts[models.AlternateKind(first)][id]; ok {
		dup := item
		return &dup, nil
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("item %s not found", id)}
}

func (s *fakeItemStore) Update(ctx context.Context, id string, hint models.Kind, patch models.Patch) (*models.Item, error) {
	item, err := s.GetByID(ctx, id, hint)
	if err != nil {
		return nil, err
	}
	patch.Apply(item)
	item.UpdatedAt = time.Now().UTC()
	s.parts[item.Kind][item.ID] = *item
	dup := *item
	return &dup, nil
}

func (s *fakeItemStore) Delete(_ context.Context, id string, hint models.Kind) error {
	if hint != "" {
		if _, ok := s.parts[hint][id]; !ok {
			return &domain.NotFoundError{Message: fmt.Sprintf("item %s not found", id)}
		}
		delete(s.parts[hint], id)
		return nil
	}

	first := s.candidate(id)
	if _, ok := s.parts[first][id]; ok {
		delete(s.parts[first], id)
		return nil
	}
	alt := models.AlternateKind(first)
	if _, ok := s.parts[alt][id]; ok {
		delete(s.parts[alt], id)
		return nil
	}
	return &domain.NotFoundError{Message: fmt.Sprintf("item %s not found", id)}
}

func (s *fakeItemStore) Query(_ context.Context, filter repositories.ItemFilter) ([]models.Item, error) {
	kinds := filter.Kinds
	if len(kinds) == 0 {
		kinds = []models.Kind{models.KindFolder, models.KindFile}
	}

	var out []models.Item
	for _, kind := range kinds {
		for _, item := range s.parts[kind] {
			switch {
			case filter.Root:
				if item.ParentID != nil {
					continue
				}
			case filter.ParentID != nil:
				if item.ParentID == nil || *item.ParentID != *filter.ParentID {
					continue
				}
			}
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *fakeItemStore) candidate(id string) models.Kind {
	if kind, ok := models.KindFromID(id); ok {
		return kind
	}
	return models.KindFolder
}

// count returns the total number of stored items across partitions
func (s *fakeItemStore) count() int {
	return len(s.parts[models.KindFolder]) + len(s.parts[models.KindFile])
}
