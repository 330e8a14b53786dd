package medication

import "context"

// Repository is the storage contract for the medication catalog.
type Repository interface {
	// ListCatalog returns catalog entries matching searchTerm against drug
	// or brand name, ordered by med_id. An empty term returns everything.
	ListCatalog(ctx context.Context, searchTerm string) ([]*Medication, error)
	GetByID(ctx context.Context, id int64) (*Medication, error)
	Create(ctx context.Context, m *Medication) (int64, error)
	// ListDispensed returns every medication that appears on a prescription,
	// joined to the prescribing provider and the visited patient.
	ListDispensed(ctx context.Context) ([]*Dispensed, error)
}
