package provider

import (
	"context"
	"strings"

	"github.com/clinrec/clinrec/internal/platform/errs"
)

type Service struct {
	providers Repository
}

func NewService(repo Repository) *Service {
	return &Service{providers: repo}
}

func (s *Service) ListProviders(ctx context.Context, searchTerm string) ([]*Provider, error) {
	return s.providers.List(ctx, searchTerm)
}

func (s *Service) GetProvider(ctx context.Context, id int64) (*Provider, error) {
	return s.providers.GetByID(ctx, id)
}

func (s *Service) CreateProvider(ctx context.Context, p *Provider) (int64, error) {
	var missing []string
	if strings.TrimSpace(p.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(p.Specialty) == "" {
		missing = append(missing, "specialty")
	}
	if len(missing) > 0 {
		return 0, errs.MissingFields(missing...)
	}
	return s.providers.Create(ctx, p)
}

func (s *Service) DeleteProvider(ctx context.Context, id int64) error {
	return s.providers.Delete(ctx, id)
}
