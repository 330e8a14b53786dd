package report

import "context"

// Repository runs the aggregate report queries.
type Repository interface {
	// PrescriptionCountsByProvider counts prescriptions per provider where
	// the prescribed drug's generic or brand name contains drugQuery,
	// case-insensitively. Ordered by count descending, then provider name.
	PrescriptionCountsByProvider(ctx context.Context, drugQuery string) ([]*ProviderRxCount, error)
	// UntreatedDiagnoses finds distinct patients whose visit carries a
	// diagnosis matching dxQuery (exact code fold or name substring) where
	// that visit produced no prescription. Ordered by patient_id.
	UntreatedDiagnoses(ctx context.Context, dxQuery string) ([]*UntreatedDiagnosis, error)
	// PrescriptionCountsByPatient counts prescriptions per patient, keeping
	// patients with at least minCount. Ordered by count descending, then
	// patient name.
	PrescriptionCountsByPatient(ctx context.Context, minCount int) ([]*PatientRxCount, error)
}
