package allergy

import "context"

// Repository is the storage contract for patient allergies and the conflict
// table the inference engine maintains.
type Repository interface {
	// ListPatientAllergies returns every recorded allergy joined to its
	// patient, ordered by allergy_id.
	ListPatientAllergies(ctx context.Context) ([]*PatientAllergy, error)
	// ListConflicts returns the recorded allergy/medication conflicts,
	// ordered by patient then medication.
	ListConflicts(ctx context.Context) ([]*Conflict, error)
	// FindRuleMatches returns the (allergy, medication) pairs where a
	// patient's allergy substance equals the rule substance and a catalog
	// drug name equals the rule drug, both case-insensitively.
	FindRuleMatches(ctx context.Context, substance, drug string) ([]ConflictKey, error)
	// InsertConflict records a conflict if it is not already present and
	// reports whether a row was actually inserted.
	InsertConflict(ctx context.Context, key ConflictKey) (bool, error)
}
