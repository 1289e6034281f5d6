package models

// Visit is a farm visit scheduled by an agronomist.
type Visit struct {
	ID          string `json:"id"`
	VisitID     string `json:"visitId"`
	FarmerID    string `json:"farmerId"`
	FarmerName  string `json:"farmerName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Purpose     string `json:"purpose"`
	Notes       string `json:"notes,omitempty"`
	Status      string `json:"status"`
	ScheduledBy string `json:"scheduledBy"`
	CreatedAt   string `json:"createdAt"`
}
