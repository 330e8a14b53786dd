package provider

// Provider is a clinician who conducts visits and writes prescriptions.
type Provider struct {
	ID        int64  `json:"provider_id"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
}
