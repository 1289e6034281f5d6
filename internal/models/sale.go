package models

// Sale is a harvest sale recorded by a farmer. Total and Profit are computed
// once at creation from quantity, price and cost, and are never recomputed if
// the inputs are edited later.
type Sale struct {
	ID           string  `json:"id"`
	SaleID       string  `json:"saleId"`
	FarmerID     string  `json:"farmerId"`
	Crop         string  `json:"crop"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Total        float64 `json:"total"`
	CostPrice    float64 `json:"costPrice"`
	Profit       float64 `json:"profit"`
	Date         string  `json:"date"`
	Buyer        string  `json:"buyer,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}
