package models

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is a farm-supply order raised by a farmer. OrderID is the ORD-nnn
// display id derived from the collection size at creation.
type Order struct {
	ID        string `json:"id"`
	FarmerID  string `json:"farmerId"`
	OrderID   string `json:"orderId"`
	Item      string `json:"item"`
	Quantity  string `json:"quantity"`
	Unit      string `json:"unit"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Urgency   string `json:"urgency,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt"`
}
