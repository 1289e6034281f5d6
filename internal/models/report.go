package models

// Report is an agronomist report covering one farmer or all of them
// (FarmerID empty means all).
type Report struct {
	ID              string `json:"id"`
	ReportID        string `json:"reportId"`
	Type            string `json:"type"`
	FarmerID        string `json:"farmerId,omitempty"`
	FarmerName      string `json:"farmerName"`
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	Recommendations string `json:"recommendations"`
	DateFrom        string `json:"dateFrom,omitempty"`
	DateTo          string `json:"dateTo,omitempty"`
	GeneratedBy     string `json:"generatedBy"`
	GeneratedAt     string `json:"generatedAt"`
	Status          string `json:"status"`
}
