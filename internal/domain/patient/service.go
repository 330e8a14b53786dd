package patient

import (
	"context"
	"strings"

	"github.com/clinrec/clinrec/internal/platform/errs"
	"github.com/clinrec/clinrec/pkg/dates"
)

type Service struct {
	patients Repository
}

func NewService(repo Repository) *Service {
	return &Service{patients: repo}
}

func (s *Service) ListPatients(ctx context.Context, searchTerm string) ([]*Patient, error) {
	return s.patients.List(ctx, searchTerm)
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// CreatePatient validates the full required field set before anything touches
// storage, then inserts the record transactionally and returns the new id.
func (s *Service) CreatePatient(ctx context.Context, in *CreateInput) (int64, error) {
	var missing []string
	for _, f := range []struct{ name, val string }{
		{"firstname", in.FirstName},
		{"lastname", in.LastName},
		{"birthdate", in.Birthdate},
		{"sex", in.Sex},
		{"contact_phone", in.ContactPhone},
		{"contact_email", in.ContactEmail},
		{"emergency_contact_name", in.EmergencyContactName},
		{"emergency_contact_phone", in.EmergencyContactPhone},
	} {
		if strings.TrimSpace(f.val) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return 0, errs.MissingFields(missing...)
	}

	birthdate, err := dates.Parse(in.Birthdate)
	if err != nil {
		return 0, errs.Invalid("birthdate must be YYYY-MM-DD, got %q", in.Birthdate)
	}

	p := &Patient{
		FirstName:             in.FirstName,
		LastName:              in.LastName,
		Birthdate:             birthdate,
		Sex:                   in.Sex,
		ContactPhone:          in.ContactPhone,
		ContactEmail:          in.ContactEmail,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
	}
	return s.patients.Create(ctx, p)
}

// UpdatePatient applies the mutable field subset. At least one field must be
// present.
func (s *Service) UpdatePatient(ctx context.Context, id int64, in *UpdateInput) error {
	if in.empty() {
		return errs.Invalid("no updatable fields provided")
	}
	return s.patients.Update(ctx, id, in)
}

func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	return s.patients.Delete(ctx, id)
}
