package allergy

// PatientAllergy is a recorded substance allergy joined to its patient.
type PatientAllergy struct {
	AllergyID   int64  `json:"allergy_id"`
	PatientID   int64  `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Substance   string `json:"substance"`
	Reaction    string `json:"reaction"`
	Severity    string `json:"severity"`
}

// Conflict is a recorded allergy/medication conflict joined across patient,
// allergy and medication.
type Conflict struct {
	PatientID   int64  `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Substance   string `json:"allergy_substance"`
	Reaction    string `json:"reaction"`
	Severity    string `json:"severity"`
	MedID       int64  `json:"med_id"`
	DrugName    string `json:"med_generic_name"`
	BrandName   string `json:"med_brand_name"`
	DosageForm  string `json:"dosage_form"`
}

// Rule pairs an allergy substance with a drug name it conflicts with.
// Matching is case-insensitive on both sides.
type Rule struct {
	Substance string
	Drug      string
}

// ConflictKey identifies one allergy/medication conflict row.
type ConflictKey struct {
	AllergyID int64
	MedID     int64
}
