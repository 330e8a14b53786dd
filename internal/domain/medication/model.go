package medication

// Medication is a catalog entry for a drug.
type Medication struct {
	ID         int64  `json:"med_id"`
	DrugName   string `json:"drug_name"`
	BrandName  string `json:"brand_name"`
	DosageForm string `json:"dosage_form"`
}

// Dispensed is a medication joined through its prescription to the patient
// it was prescribed for and the provider who wrote it.
type Dispensed struct {
	MedID        int64  `json:"med_id"`
	DrugName     string `json:"drug_name"`
	BrandName    string `json:"brand_name"`
	DosageForm   string `json:"dosage_form"`
	RxID         int64  `json:"rx_id"`
	PatientName  string `json:"patient_name"`
	ProviderName string `json:"provider_name"`
}
