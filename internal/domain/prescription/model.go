package prescription

import "github.com/clinrec/clinrec/pkg/dates"

// Prescription is a medication order joined to the prescribing provider and
// the patient seen on the originating visit.
type Prescription struct {
	RxID         int64       `json:"rx_id"`
	ProviderID   int64       `json:"provider_id"`
	ProviderName string      `json:"provider_name"`
	VisitID      int64       `json:"visit_id"`
	PatientID    int64       `json:"patient_id"`
	PatientName  string      `json:"patient_name"`
	Dose         string      `json:"dose"`
	Route        string      `json:"route"`
	Frequency    string      `json:"frequency"`
	Quantity     int         `json:"quantity"`
	StartDate    dates.Date  `json:"start_date"`
	EndDate      *dates.Date `json:"end_date"`
}

// CreateInput carries the raw fields for a new prescription and the catalog
// medications it covers. Dates travel as YYYY-MM-DD strings until validation;
// end_date may be empty for open-ended orders.
type CreateInput struct {
	ProviderID int64   `json:"provider_id"`
	VisitID    int64   `json:"visit_id"`
	Dose       string  `json:"dose"`
	Route      string  `json:"route"`
	Frequency  string  `json:"frequency"`
	Quantity   int     `json:"quantity"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	MedIDs     []int64 `json:"med_ids"`
}
