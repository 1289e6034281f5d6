package handlers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"agronomy-services-api-server/internal/auth"
	"agronomy-services-api-server/internal/models"
	"agronomy-services-api-server/internal/notify"
	"agronomy-services-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type AgronomistHandler struct {
	Store  *store.Store
	Notify notify.Dispatcher
}

// Dashboard aggregates practice-wide stats, the full record listings and the
// top five farms by accumulated sale profit.
func (h *AgronomistHandler) Dashboard(c *gin.Context) {
	farmers := h.Store.FindMany("farmers", nil, store.FindOptions{})
	reports := h.Store.FindMany("agronomistReports", nil, store.FindOptions{})
	sales := h.Store.FindMany("sales", nil, store.FindOptions{})
	visits := h.Store.FindMany("scheduledVisits", nil, store.FindOptions{})

	now := time.Now()
	totalProfit := 0.0
	thisMonthSales := 0
	thisMonthProfit := 0.0
	profitByFarmer := map[string]float64{}
	for _, sale := range sales.Items {
		profit := num(sale, "profit")
		totalProfit += profit
		profitByFarmer[str(sale, "farmerId")] += profit
		if sameMonth(str(sale, "date"), now) {
			thisMonthSales++
			thisMonthProfit += profit
		}
	}

	type farmProfit struct {
		FarmerName string  `json:"farmerName"`
		Profit     float64 `json:"profit"`
	}
	var topFarms []farmProfit
	for farmerID, profit := range profitByFarmer {
		name := "Unknown Farmer"
		if farmer := h.Store.FindOne("farmers", byID(farmerID)); farmer != nil {
			name = str(farmer, "fullName")
		}
		topFarms = append(topFarms, farmProfit{FarmerName: name, Profit: profit})
	}
	sort.Slice(topFarms, func(i, j int) bool { return topFarms[i].Profit > topFarms[j].Profit })
	if len(topFarms) > 5 {
		topFarms = topFarms[:5]
	}

	publicFarmers := make([]store.Document, 0, len(farmers.Items))
	for _, farmer := range farmers.Items {
		publicFarmers = append(publicFarmers, strip(farmer, "verificationToken"))
	}

	stats := gin.H{
		"totalFarmers":     farmers.Total,
		"totalAssessments": h.Store.Count("assessmentRequests"),
		"totalReports":     reports.Total,
		"totalSales":       sales.Total,
		"totalProfit":      totalProfit,
		"totalOrders":      h.Store.Count("farmOrders"),
		"thisMonthSales":   thisMonthSales,
		"thisMonthProfit":  thisMonthProfit,
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"stats":              stats,
		"farmers":            publicFarmers,
		"reports":            reports.Items,
		"sales":              sales.Items,
		"visits":             visits.Items,
		"topPerformingFarms": topFarms,
	})
}

type AddFarmerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	FarmDetails string `json:"farmDetails"`
}

// AddFarmer creates a farmer account on a farmer's behalf with a default
// password. Credential and profile records share one id, same as
// self-registration.
func (h *AgronomistHandler) AddFarmer(c *gin.Context) {
	var req AddFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name and email are required"})
		return
	}

	if existing := h.Store.FindOne("farmers", byField("email", req.Email)); existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Farmer already exists"})
		return
	}

	hashedPassword, err := auth.HashPassword("farmer123")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error adding farmer"})
		return
	}

	userID := store.NewID()
	farmerID := store.TimestampID("FARM")

	nameParts := strings.SplitN(req.Name, " ", 2)
	firstName := nameParts[0]
	lastName := ""
	if len(nameParts) > 1 {
		lastName = nameParts[1]
	}

	user := models.User{
		ID:        userID,
		Email:     req.Email,
		Password:  hashedPassword,
		Role:      models.RoleFarmer,
		Name:      req.Name,
		CreatedAt: nowISO(),
		Status:    "active",
	}

	farmer := models.Farmer{
		ID:        userID,
		FarmerID:  farmerID,
		AccountID: farmerID,
		FirstName: firstName,
		LastName:  lastName,
		FullName:  req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		FarmDetails: models.FarmDetails{
			Name:     req.FarmDetails,
			Location: req.Location,
			Crops:    []string{},
		},
		RegistrationDate: nowISO(),
		Status:           "active",
		ProfileComplete:  false,
	}

	userDoc, err := store.Encode(user)
	if err == nil {
		_, err = h.Store.Insert("users", userDoc)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error adding farmer"})
		return
	}

	farmerDoc, err := store.Encode(farmer)
	if err == nil {
		_, err = h.Store.Insert("farmers", farmerDoc)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error adding farmer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Farmer added successfully",
		"farmer":  farmerDoc,
	})
}

type ScheduleVisitRequest struct {
	FarmerID string `json:"farmerId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time"`
	Purpose  string `json:"purpose"`
	Notes    string `json:"notes"`
}

// ScheduleVisit books a farm visit for an existing farmer.
func (h *AgronomistHandler) ScheduleVisit(c *gin.Context) {
	var req ScheduleVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Farmer and date are required"})
		return
	}

	farmer := h.Store.FindOne("farmers", byID(req.FarmerID))
	if farmer == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Farmer not found"})
		return
	}

	visit := models.Visit{
		ID:          store.NewID(),
		VisitID:     store.SequenceID("VIS", h.Store.Count("scheduledVisits")),
		FarmerID:    req.FarmerID,
		FarmerName:  str(farmer, "fullName"),
		Date:        req.Date,
		Time:        req.Time,
		Purpose:     req.Purpose,
		Notes:       req.Notes,
		Status:      "scheduled",
		ScheduledBy: c.GetString("user_id"),
		CreatedAt:   nowISO(),
	}

	visitDoc, err := store.Encode(visit)
	if err == nil {
		_, err = h.Store.Insert("scheduledVisits", visitDoc)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error scheduling visit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "visit": visitDoc})
}

type CreateReportRequest struct {
	Type            string `json:"type" binding:"required"`
	FarmerID        string `json:"farmerId" binding:"required"`
	DateFrom        string `json:"dateFrom"`
	DateTo          string `json:"dateTo"`
	Title           string `json:"title" binding:"required"`
	Summary         string `json:"summary"`
	Recommendations string `json:"recommendations"`
}

// CreateReport stores an agronomist report for one farmer, or for all of
// them when farmerId is "all".
func (h *AgronomistHandler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Report type, farmer and title are required"})
		return
	}

	farmerID := req.FarmerID
	farmerName := "All Farmers"
	if farmerID == "all" {
		farmerID = ""
	} else {
		farmer := h.Store.FindOne("farmers", byID(farmerID))
		if farmer == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Farmer not found"})
			return
		}
		farmerName = str(farmer, "fullName")
	}

	report := models.Report{
		ID:              store.NewID(),
		ReportID:        store.SequenceID("REP", h.Store.Count("agronomistReports")),
		Type:            req.Type,
		FarmerID:        farmerID,
		FarmerName:      farmerName,
		Title:           req.Title,
		Summary:         req.Summary,
		Recommendations: req.Recommendations,
		DateFrom:        req.DateFrom,
		DateTo:          req.DateTo,
		GeneratedBy:     c.GetString("user_name"),
		GeneratedAt:     nowISO(),
		Status:          "completed",
	}

	reportDoc, err := store.Encode(report)
	if err == nil {
		_, err = h.Store.Insert("agronomistReports", reportDoc)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error generating report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "report": reportDoc})
}
