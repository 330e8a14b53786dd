package report

import (
	"context"
	"strings"
)

type Service struct {
	reports Repository
}

func NewService(repo Repository) *Service {
	return &Service{reports: repo}
}

// ProviderRxCounts reports prescription counts per provider for drugs whose
// generic or brand name contains drugQuery. An empty query is not an error;
// it reports nothing.
func (s *Service) ProviderRxCounts(ctx context.Context, drugQuery string) ([]*ProviderRxCount, error) {
	drugQuery = strings.TrimSpace(drugQuery)
	if drugQuery == "" {
		return []*ProviderRxCount{}, nil
	}
	return s.reports.PrescriptionCountsByProvider(ctx, drugQuery)
}

// UntreatedDiagnoses reports patients diagnosed with dxQuery on a visit that
// produced no prescription. An empty query reports nothing.
func (s *Service) UntreatedDiagnoses(ctx context.Context, dxQuery string) ([]*UntreatedDiagnosis, error) {
	dxQuery = strings.TrimSpace(dxQuery)
	if dxQuery == "" {
		return []*UntreatedDiagnosis{}, nil
	}
	return s.reports.UntreatedDiagnoses(ctx, dxQuery)
}

// PatientRxCounts reports prescription counts per patient, keeping patients
// with at least minCount prescriptions. Counts below one make no sense, so
// the floor is one.
func (s *Service) PatientRxCounts(ctx context.Context, minCount int) ([]*PatientRxCount, error) {
	if minCount < 1 {
		minCount = 1
	}
	return s.reports.PrescriptionCountsByPatient(ctx, minCount)
}
