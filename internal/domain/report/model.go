package report

// ProviderRxCount counts prescriptions per provider for a drug filter.
type ProviderRxCount struct {
	ProviderID   int64  `json:"provider_id"`
	ProviderName string `json:"full_name"`
	RxCount      int64  `json:"rx_count"`
}

// UntreatedDiagnosis is a patient diagnosed on a visit that produced no
// prescription.
type UntreatedDiagnosis struct {
	PatientID   int64  `json:"patient_id"`
	PatientName string `json:"patient_name"`
	DxCode      string `json:"dx_code"`
	DxName      string `json:"dx_name"`
}

// PatientRxCount counts prescriptions per patient.
type PatientRxCount struct {
	PatientID   int64  `json:"patient_id"`
	PatientName string `json:"patient_name"`
	RxCount     int64  `json:"rx_count"`
}
