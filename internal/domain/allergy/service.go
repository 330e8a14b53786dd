package allergy

import "context"

type Service struct {
	allergies Repository
	inTx      TxRunner
}

func NewService(repo Repository, inTx TxRunner) *Service {
	return &Service{allergies: repo, inTx: inTx}
}

func (s *Service) ListPatientAllergies(ctx context.Context) ([]*PatientAllergy, error) {
	return s.allergies.ListPatientAllergies(ctx)
}

func (s *Service) ListConflicts(ctx context.Context) ([]*Conflict, error) {
	return s.allergies.ListConflicts(ctx)
}
