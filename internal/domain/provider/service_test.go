package provider

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/clinrec/clinrec/internal/platform/errs"
)

type mockRepo struct {
	providers map[int64]*Provider
	nextID    int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{providers: make(map[int64]*Provider)}
}

func (m *mockRepo) List(_ context.Context, searchTerm string) ([]*Provider, error) {
	out := []*Provider{}
	for i := int64(1); i <= m.nextID; i++ {
		p, ok := m.providers[i]
		if !ok {
			continue
		}
		if searchTerm == "" ||
			strings.Contains(strings.ToLower(p.FullName), strings.ToLower(searchTerm)) ||
			strings.Contains(strings.ToLower(p.Specialty), strings.ToLower(searchTerm)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Provider, error) {
	p, ok := m.providers[id]
	if !ok {
		return nil, fmt.Errorf("get provider: %w", errs.ErrNotFound)
	}
	return p, nil
}

func (m *mockRepo) Create(_ context.Context, p *Provider) (int64, error) {
	m.nextID++
	p.ID = m.nextID
	m.providers[p.ID] = p
	return p.ID, nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.providers[id]; !ok {
		return fmt.Errorf("delete provider: %w", errs.ErrNotFound)
	}
	delete(m.providers, id)
	return nil
}

func TestCreateProviderValidation(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	_, err := svc.CreateProvider(context.Background(), &Provider{FullName: " "})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.providers) != 0 {
		t.Error("store mutated on validation failure")
	}
}

func TestProviderRoundTripAndSearch(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	id, err := svc.CreateProvider(context.Background(), &Provider{FullName: "Dr. Chen", Specialty: "Cardiology"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateProvider(context.Background(), &Provider{FullName: "Dr. Okafor", Specialty: "Pediatrics"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetProvider(context.Background(), id)
	if err != nil || got.Specialty != "Cardiology" {
		t.Fatalf("get = %+v, %v", got, err)
	}

	hits, err := svc.ListProviders(context.Background(), "cardio")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != id {
		t.Errorf("search matched %d rows", len(hits))
	}
}
