package patient

import "context"

// Repository is the storage contract for patient records.
type Repository interface {
	// List returns patients matching searchTerm as a case-insensitive
	// substring of first name, last name, email or phone. An empty term
	// returns everyone. Ordered by patient_id.
	List(ctx context.Context, searchTerm string) ([]*Patient, error)
	GetByID(ctx context.Context, id int64) (*Patient, error)
	Create(ctx context.Context, p *Patient) (int64, error)
	Update(ctx context.Context, id int64, u *UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
