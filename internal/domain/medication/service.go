package medication

import (
	"context"
	"strings"

	"github.com/clinrec/clinrec/internal/platform/errs"
)

type Service struct {
	medications Repository
}

func NewService(repo Repository) *Service {
	return &Service{medications: repo}
}

func (s *Service) ListCatalog(ctx context.Context, searchTerm string) ([]*Medication, error) {
	return s.medications.ListCatalog(ctx, searchTerm)
}

func (s *Service) GetMedication(ctx context.Context, id int64) (*Medication, error) {
	return s.medications.GetByID(ctx, id)
}

func (s *Service) CreateMedication(ctx context.Context, m *Medication) (int64, error) {
	var missing []string
	if strings.TrimSpace(m.DrugName) == "" {
		missing = append(missing, "drug_name")
	}
	if strings.TrimSpace(m.DosageForm) == "" {
		missing = append(missing, "dosage_form")
	}
	if len(missing) > 0 {
		return 0, errs.MissingFields(missing...)
	}
	return s.medications.Create(ctx, m)
}

func (s *Service) ListDispensed(ctx context.Context) ([]*Dispensed, error) {
	return s.medications.ListDispensed(ctx)
}
