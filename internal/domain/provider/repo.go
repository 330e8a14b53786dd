package provider

import "context"

// Repository is the storage contract for providers.
type Repository interface {
	// List returns providers matching searchTerm against name or specialty,
	// ordered by provider_id. An empty term returns everyone.
	List(ctx context.Context, searchTerm string) ([]*Provider, error)
	GetByID(ctx context.Context, id int64) (*Provider, error)
	Create(ctx context.Context, p *Provider) (int64, error)
	Delete(ctx context.Context, id int64) error
}
