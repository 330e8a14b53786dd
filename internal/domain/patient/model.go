package patient

import "github.com/clinrec/clinrec/pkg/dates"

// Patient is a demographic record with contact and emergency-contact details.
type Patient struct {
	ID                    int64      `json:"patient_id"`
	FirstName             string     `json:"firstname"`
	LastName              string     `json:"lastname"`
	Birthdate             dates.Date `json:"birthdate"`
	Sex                   string     `json:"sex"`
	ContactPhone          string     `json:"contact_phone"`
	ContactEmail          string     `json:"contact_email"`
	EmergencyContactName  string     `json:"emergency_contact_name"`
	EmergencyContactPhone string     `json:"emergency_contact_phone"`
}

// CreateInput carries the raw fields for a new patient record. Every field is
// required; the birthdate travels as a YYYY-MM-DD string until validation.
type CreateInput struct {
	FirstName             string `json:"firstname"`
	LastName              string `json:"lastname"`
	Birthdate             string `json:"birthdate"`
	Sex                   string `json:"sex"`
	ContactPhone          string `json:"contact_phone"`
	ContactEmail          string `json:"contact_email"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
}

// UpdateInput limits updates to the mutable name and contact fields. Empty
// fields are left unchanged.
type UpdateInput struct {
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
}

func (u *UpdateInput) empty() bool {
	return u.FirstName == "" && u.LastName == "" && u.ContactPhone == "" && u.ContactEmail == ""
}
