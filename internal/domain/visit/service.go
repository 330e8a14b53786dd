package visit

import "context"

type Service struct {
	visits Repository
}

func NewService(repo Repository) *Service {
	return &Service{visits: repo}
}

func (s *Service) ListVisits(ctx context.Context) ([]*Visit, error) {
	return s.visits.List(ctx)
}

func (s *Service) GetVisit(ctx context.Context, id int64) (*Visit, error) {
	return s.visits.GetByID(ctx, id)
}

func (s *Service) ListDiagnoses(ctx context.Context) ([]*Diagnosis, error) {
	return s.visits.ListDiagnoses(ctx)
}
