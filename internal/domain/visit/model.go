package visit

import "time"

// Visit is a clinical encounter between a patient and a provider.
type Visit struct {
	ID         int64     `json:"visit_id"`
	PatientID  int64     `json:"patient_id"`
	ProviderID int64     `json:"provider_id"`
	DateTime   time.Time `json:"visit_date_time"`
	Location   string    `json:"location"`
	VisitType  string    `json:"visit_type"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
}

// Diagnosis is a coded diagnosis attached to a visit.
type Diagnosis struct {
	VisitID int64  `json:"visit_id"`
	DxCode  string `json:"dx_code"`
	DxName  string `json:"dx_name"`
}
