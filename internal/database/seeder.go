package database

import (
	"agronomy-services-api-server/internal/auth"
	"agronomy-services-api-server/internal/logger"
	"agronomy-services-api-server/internal/models"
	"agronomy-services-api-server/internal/store"
)

// SeedDemoData populates an empty store with the demo accounts and sample
// records used by the hosted demo. Seeding is skipped as soon as any user
// exists.
func SeedDemoData(st *store.Store) error {
	if st.Count("users") > 0 {
		logger.Info("demo data already present, seeding skipped")
		return nil
	}
	logger.Info("empty store, seeding demo data")

	type demoUser struct {
		id, email, password, role, name string
	}
	demoUsers := []demoUser{
		{"1", "farmer@demo.com", "farmer123", models.RoleFarmer, "John Agritech"},
		{"2", "agro@demo.com", "agro123", models.RoleAgronomist, "Dr. Sarah Agronomics"},
		{"3", "admin@demo.com", "admin123", models.RoleAdmin, "System Administrator"},
	}

	for _, u := range demoUsers {
		hashed, err := auth.HashPassword(u.password)
		if err != nil {
			return err
		}
		doc, err := store.Encode(models.User{
			ID:        u.id,
			Email:     u.email,
			Password:  hashed,
			Role:      u.role,
			Name:      u.name,
			CreatedAt: "2023-10-01T00:00:00Z",
			Status:    "active",
		})
		if err != nil {
			return err
		}
		if _, err := st.Insert("users", doc); err != nil {
			return err
		}
	}

	farmAge := 3
	rating := 4.5
	farmer := models.Farmer{
		ID:        "1",
		FarmerID:  "FARM-00123",
		AccountID: "FARM-00123",
		FirstName: "John",
		LastName:  "Agritech",
		FullName:  "John Agritech",
		Email:     "farmer@demo.com",
		Phone:     "+254 712 345 678",
		IDNumber:  "12345678",
		FarmDetails: models.FarmDetails{
			Name:       "Main Farm",
			Location:   "Nakuru County",
			Size:       5,
			Age:        &farmAge,
			Crops:      []string{"avocado", "mango", "maize"},
			Livestock:  "Cattle, Goats",
			Irrigation: "drip",
			Goals:      "Increase yield, Organic certification",
		},
		Preferences:      models.Preferences{Newsletter: true, ShareInfo: true},
		RegistrationDate: "2023-10-01T00:00:00Z",
		Status:           "active",
		Verified:         true,
		ProfileComplete:  true,
		AssessmentCount:  2,
		OrderCount:       3,
		Rating:           &rating,
	}
	if err := insert(st, "farmers", farmer); err != nil {
		return err
	}

	order := models.Order{
		ID:        "1",
		FarmerID:  "1",
		OrderID:   "ORD-001",
		Item:      "Fertilizer",
		Quantity:  "5",
		Unit:      "bags",
		Date:      "2023-10-15",
		Status:    models.OrderStatusPending,
		Urgency:   "medium",
		Notes:     "Need by next week",
		CreatedAt: "2023-10-15T00:00:00Z",
	}
	if err := insert(st, "farmOrders", order); err != nil {
		return err
	}

	report := models.Report{
		ID:              "1",
		ReportID:        "REP-001",
		Type:            "soil_analysis",
		FarmerID:        "1",
		FarmerName:      "John Agritech",
		Title:           "Soil Analysis Report",
		Summary:         "Soil pH is optimal for maize cultivation.",
		Recommendations: "Apply nitrogen-based fertilizer next season.",
		GeneratedBy:     "Dr. Sarah Agronomics",
		GeneratedAt:     "2023-10-10T00:00:00Z",
		Status:          "completed",
	}
	if err := insert(st, "agronomistReports", report); err != nil {
		return err
	}

	sale := models.Sale{
		ID:           "1",
		SaleID:       "SALE-001",
		FarmerID:     "1",
		Crop:         "Maize",
		Quantity:     500,
		Unit:         "kg",
		PricePerUnit: 0.5,
		Total:        250,
		CostPrice:    0.3,
		Profit:       100,
		Date:         "2023-10-01",
		Buyer:        "Local Market",
		CreatedAt:    "2023-10-01T00:00:00Z",
	}
	if err := insert(st, "sales", sale); err != nil {
		return err
	}

	visit := models.Visit{
		ID:          "1",
		VisitID:     "VIS-001",
		FarmerID:    "1",
		FarmerName:  "John Agritech",
		Date:        "2023-10-20",
		Time:        "10:00",
		Purpose:     "soil_test",
		Notes:       "Annual soil testing",
		Status:      "scheduled",
		ScheduledBy: "2",
		CreatedAt:   "2023-10-12T00:00:00Z",
	}
	if err := insert(st, "scheduledVisits", visit); err != nil {
		return err
	}

	logger.Info("demo data seeded")
	return nil
}

func insert(st *store.Store, collection string, v any) error {
	doc, err := store.Encode(v)
	if err != nil {
		return err
	}
	_, err = st.Insert(collection, doc)
	return err
}
