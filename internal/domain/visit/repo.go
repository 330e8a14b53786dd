package visit

import "context"

// Repository is the storage contract for visits and their diagnoses.
type Repository interface {
	List(ctx context.Context) ([]*Visit, error)
	GetByID(ctx context.Context, id int64) (*Visit, error)
	// ListDiagnoses returns every diagnosis joined to its visit, ordered by
	// visit_id then dx_code.
	ListDiagnoses(ctx context.Context) ([]*Diagnosis, error)
}
