package handlers

import (
	"net/http"
	"time"

	"agronomy-services-api-server/internal/auth"
	"agronomy-services-api-server/internal/logger"
	"agronomy-services-api-server/internal/models"
	"agronomy-services-api-server/internal/notify"
	"agronomy-services-api-server/internal/store"
	"agronomy-services-api-server/internal/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FarmerHandler struct {
	Store  *store.Store
	Notify notify.Dispatcher
}

// Register handles the multi-step farmer registration wizard's final submit.
// Every violated rule is collected into one response; the email uniqueness
// check runs before any record is written, so a Conflict leaves no partial
// state behind. The credential and profile records share one id.
func (h *FarmerHandler) Register(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if errs := validate.Registration.Apply(body); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
		return
	}

	email := validate.Str(body, "email")
	if existing := h.Store.FindOne("users", byField("email", email)); existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email already registered. Please login instead."})
		return
	}

	hashedPassword, err := auth.HashPassword(validate.Str(body, "password"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred during registration. Please try again."})
		return
	}

	userID := store.NewID()
	farmerID := store.TimestampID("FARM")
	firstName := validate.Str(body, "firstName")
	lastName := validate.Str(body, "lastName")
	fullName := firstName + " " + lastName
	farmSize, _ := validate.Num(body, "farmSize")

	var farmAge *int
	if n, ok := validate.Num(body, "farmAge"); ok {
		age := int(n)
		farmAge = &age
	}

	user := models.User{
		ID:        userID,
		Email:     email,
		Password:  hashedPassword,
		Role:      models.RoleFarmer,
		Name:      fullName,
		CreatedAt: nowISO(),
		Status:    "active",
	}

	farmer := models.Farmer{
		ID:        userID,
		FarmerID:  farmerID,
		AccountID: farmerID,
		FirstName: firstName,
		LastName:  lastName,
		FullName:  fullName,
		Email:     email,
		Phone:     validate.Str(body, "phone"),
		IDNumber:  validate.Str(body, "idNumber"),
		FarmDetails: models.FarmDetails{
			Name:       validate.Str(body, "farmName"),
			Location:   validate.Str(body, "farmLocation"),
			Size:       farmSize,
			Age:        farmAge,
			Crops:      validate.List(body, "crops"),
			Livestock:  validate.Str(body, "livestock"),
			Irrigation: validate.Str(body, "irrigation"),
			Goals:      validate.Str(body, "farmGoals"),
		},
		Preferences: models.Preferences{
			Newsletter: validate.Bool(body, "newsletter"),
			ShareInfo:  validate.Bool(body, "shareInfo"),
		},
		RegistrationDate:   nowISO(),
		Status:             "active",
		Verified:           false,
		VerificationToken:  store.VerificationToken(),
		VerificationSentAt: nowISO(),
		ProfileComplete:    true,
	}

	userDoc, err := store.Encode(user)
	if err == nil {
		_, err = h.Store.Insert("users", userDoc)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred during registration. Please try again."})
		return
	}

	farmerDoc, err := store.Encode(farmer)
	if err == nil {
		_, err = h.Store.Insert("farmers", farmerDoc)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred during registration. Please try again."})
		return
	}

	token, err := auth.GenerateJWT(userID, email, models.RoleFarmer, fullName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred during registration. Please try again."})
		return
	}

	h.Notify.Send(notify.Intent{
		Recipient: email,
		Template:  notify.TemplateFarmerWelcome,
		Data:      map[string]string{"name": fullName, "accountId": farmerID},
	})

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Farmer registered successfully!",
		"farmer":    strip(farmerDoc, "verificationToken"),
		"accountId": farmerID,
		"token":     token,
	})
}

// GetProfile returns the caller's farmer profile.
func (h *FarmerHandler) GetProfile(c *gin.Context) {
	farmer := h.Store.FindOne("farmers", byID(c.GetString("user_id")))
	if farmer == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Farmer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "farmer": strip(farmer, "verificationToken")})
}

// UpdateProfile applies a partial update to the caller's profile. The store
// replaces nested objects wholesale, so farmDetails and preferences are
// merged here against the current document before writing. A name change is
// mirrored onto the credential record.
func (h *FarmerHandler) UpdateProfile(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	userID := c.GetString("user_id")
	farmer := h.Store.FindOne("farmers", byID(userID))
	if farmer == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Farmer not found"})
		return
	}

	patch := store.Document{}

	firstName := validate.Str(body, "firstName")
	lastName := validate.Str(body, "lastName")
	if firstName != "" || lastName != "" {
		if firstName == "" {
			firstName = str(farmer, "firstName")
		}
		if lastName == "" {
			lastName = str(farmer, "lastName")
		}
		fullName := firstName + " " + lastName
		patch["firstName"] = firstName
		patch["lastName"] = lastName
		patch["fullName"] = fullName

		if _, err := h.Store.Update("users", userID, store.Document{"name": fullName}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error updating profile"})
			return
		}
	}

	if phone := validate.Str(body, "phone"); phone != "" {
		patch["phone"] = phone
	}

	for _, nested := range []string{"farmDetails", "preferences"} {
		incoming, ok := body[nested].(map[string]any)
		if !ok {
			continue
		}
		merged := map[string]any{}
		if current, ok := farmer[nested].(map[string]any); ok {
			for k, v := range current {
				merged[k] = v
			}
		}
		for k, v := range incoming {
			merged[k] = v
		}
		patch[nested] = merged
	}

	updated, err := h.Store.Update("farmers", userID, patch)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Farmer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"farmer":  strip(updated, "verificationToken"),
	})
}

// Dashboard returns the caller's orders, reports and sales with summary
// stats.
func (h *FarmerHandler) Dashboard(c *gin.Context) {
	userID := c.GetString("user_id")

	orders := h.Store.FindMany("farmOrders", byField("farmerId", userID), store.FindOptions{})
	reports := h.Store.FindMany("agronomistReports", byField("farmerId", userID), store.FindOptions{})
	sales := h.Store.FindMany("sales", byField("farmerId", userID), store.FindOptions{})

	now := time.Now()
	salesThisMonth := 0
	totalProfit := 0.0
	for _, sale := range sales.Items {
		totalProfit += num(sale, "profit")
		if sameMonth(str(sale, "date"), now) {
			salesThisMonth++
		}
	}

	stats := gin.H{
		"activeFarms":    1,
		"totalOrders":    orders.Total,
		"salesThisMonth": salesThisMonth,
		"totalProfit":    totalProfit,
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
		"orders":  orders.Items,
		"reports": reports.Items,
		"sales":   sales.Items,
	})
}

type CreateOrderRequest struct {
	Item     string `json:"item" binding:"required"`
	Quantity any    `json:"quantity"`
	Unit     string `json:"unit"`
	Urgency  string `json:"urgency"`
	Notes    string `json:"notes"`
}

// CreateOrder records a farm-supply order scoped to the caller and bumps the
// farmer's order count.
func (h *FarmerHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Order item is required"})
		return
	}

	userID := c.GetString("user_id")
	order := models.Order{
		ID:        store.NewID(),
		FarmerID:  userID,
		OrderID:   store.SequenceID("ORD", h.Store.Count("farmOrders")),
		Item:      req.Item,
		Quantity:  asString(req.Quantity),
		Unit:      req.Unit,
		Date:      today(),
		Status:    models.OrderStatusPending,
		Urgency:   req.Urgency,
		Notes:     req.Notes,
		CreatedAt: nowISO(),
	}

	orderDoc, err := store.Encode(order)
	if err == nil {
		_, err = h.Store.Insert("farmOrders", orderDoc)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error creating order"})
		return
	}

	// The order itself is already stored; a failed count bump must not fail
	// the request.
	if farmer := h.Store.FindOne("farmers", byID(userID)); farmer != nil {
		count := int(num(farmer, "orderCount")) + 1
		if _, err := h.Store.Update("farmers", userID, store.Document{"orderCount": count}); err != nil {
			logger.Warn("order count update failed", zap.String("farmerId", userID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": orderDoc})
}

type CreateSaleRequest struct {
	Crop         string  `json:"crop" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"pricePerUnit" binding:"required"`
	CostPrice    float64 `json:"costPrice"`
	CostPerUnit  float64 `json:"costPerUnit"`
	Date         string  `json:"date"`
	Buyer        string  `json:"buyer"`
	Notes        string  `json:"notes"`
}

// CreateSale records a harvest sale. Total and profit are derived here, once,
// and stored as immutable fields; later edits to the inputs do not recompute
// them.
func (h *FarmerHandler) CreateSale(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Crop, quantity and price per unit are required"})
		return
	}

	costPrice := req.CostPrice
	if costPrice == 0 {
		costPrice = req.CostPerUnit
	}

	total := req.Quantity * req.PricePerUnit
	profit := total - req.Quantity*costPrice

	date := req.Date
	if date == "" {
		date = today()
	}

	sale := models.Sale{
		ID:           store.NewID(),
		SaleID:       store.SequenceID("SALE", h.Store.Count("sales")),
		FarmerID:     c.GetString("user_id"),
		Crop:         req.Crop,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		Total:        total,
		CostPrice:    costPrice,
		Profit:       profit,
		Date:         date,
		Buyer:        req.Buyer,
		Notes:        req.Notes,
		CreatedAt:    nowISO(),
	}

	saleDoc, err := store.Encode(sale)
	if err == nil {
		_, err = h.Store.Insert("sales", saleDoc)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error recording sale"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sale": saleDoc})
}
