package prescription

import (
	"context"
	"strings"

	"github.com/clinrec/clinrec/internal/platform/errs"
	"github.com/clinrec/clinrec/pkg/dates"
)

type Service struct {
	prescriptions Repository
}

func NewService(repo Repository) *Service {
	return &Service{prescriptions: repo}
}

func (s *Service) ListPrescriptions(ctx context.Context) ([]*Prescription, error) {
	return s.prescriptions.List(ctx)
}

func (s *Service) GetPrescription(ctx context.Context, rxID int64) (*Prescription, error) {
	return s.prescriptions.GetByID(ctx, rxID)
}

// CreatePrescription validates the order, then writes the prescription row
// and its medication links in one transaction.
func (s *Service) CreatePrescription(ctx context.Context, in *CreateInput) (int64, error) {
	var missing []string
	if in.ProviderID <= 0 {
		missing = append(missing, "provider_id")
	}
	if in.VisitID <= 0 {
		missing = append(missing, "visit_id")
	}
	for _, f := range []struct{ name, val string }{
		{"dose", in.Dose},
		{"route", in.Route},
		{"frequency", in.Frequency},
		{"start_date", in.StartDate},
	} {
		if strings.TrimSpace(f.val) == "" {
			missing = append(missing, f.name)
		}
	}
	if in.Quantity <= 0 {
		missing = append(missing, "quantity")
	}
	if len(in.MedIDs) == 0 {
		missing = append(missing, "med_ids")
	}
	if len(missing) > 0 {
		return 0, errs.MissingFields(missing...)
	}

	start, err := dates.Parse(in.StartDate)
	if err != nil {
		return 0, errs.Invalid("start_date must be YYYY-MM-DD, got %q", in.StartDate)
	}
	var end *dates.Date
	if in.EndDate != "" {
		d, err := dates.Parse(in.EndDate)
		if err != nil {
			return 0, errs.Invalid("end_date must be YYYY-MM-DD, got %q", in.EndDate)
		}
		if d.Before(start.Time) {
			return 0, errs.Invalid("end_date %s precedes start_date %s", in.EndDate, in.StartDate)
		}
		end = &d
	}

	p := &Prescription{
		ProviderID: in.ProviderID,
		VisitID:    in.VisitID,
		Dose:       in.Dose,
		Route:      in.Route,
		Frequency:  in.Frequency,
		Quantity:   in.Quantity,
		StartDate:  start,
		EndDate:    end,
	}
	return s.prescriptions.Create(ctx, p, in.MedIDs)
}

func (s *Service) DeletePrescription(ctx context.Context, rxID int64) error {
	return s.prescriptions.Delete(ctx, rxID)
}
