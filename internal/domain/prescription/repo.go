package prescription

import "context"

// Repository is the storage contract for prescriptions.
type Repository interface {
	// List returns every prescription joined to provider and patient,
	// ordered by rx_id.
	List(ctx context.Context) ([]*Prescription, error)
	GetByID(ctx context.Context, rxID int64) (*Prescription, error)
	// Create inserts the prescription row and one link row per medication in
	// a single transaction; either all rows land or none do.
	Create(ctx context.Context, p *Prescription, medIDs []int64) (int64, error)
	// Delete removes the prescription and its medication links together.
	Delete(ctx context.Context, rxID int64) error
}
