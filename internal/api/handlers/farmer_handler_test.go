package handlers_test

import (
	"net/http"
	"testing"

	"agronomy-services-api-server/internal/notify"
	"agronomy-services-api-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesLinkedRecords(t *testing.T) {
	router, st, rec := newTestServer(t)

	_, userID := registerFarmer(t, router)

	user := st.FindOne("users", func(d store.Document) bool { return d["id"] == userID })
	require.NotNil(t, user)
	assert.Equal(t, "farmer", user["role"])
	assert.NotEqual(t, "secret1", user["password"])

	farmer := st.FindOne("farmers", func(d store.Document) bool { return d["id"] == userID })
	require.NotNil(t, farmer)
	assert.Equal(t, "Jane Wanjiku", farmer["fullName"])
	assert.Equal(t, farmer["farmerId"], farmer["accountId"])

	welcomes := rec.byTemplate(notify.TemplateFarmerWelcome)
	require.Len(t, welcomes, 1)
	assert.Equal(t, "jane@example.com", welcomes[0].Recipient)
}

func TestRegisterResponseHidesVerificationToken(t *testing.T) {
	router, _, _ := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/farmer/register", registrationPayload(), "")
	require.Equal(t, http.StatusCreated, w.Code)

	farmer := decode(t, w)["farmer"].(map[string]any)
	assert.NotContains(t, farmer, "verificationToken")
}

func TestRegisterDuplicateEmailLeavesNoPartialState(t *testing.T) {
	router, st, _ := newTestServer(t)
	_, _ = registerFarmer(t, router)

	w := doJSON(router, http.MethodPost, "/api/farmer/register", registrationPayload(), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered. Please login instead.")

	assert.Equal(t, 1, st.Count("users"))
	assert.Equal(t, 1, st.Count("farmers"))
}

func TestRegisterCollectsValidationErrors(t *testing.T) {
	router, st, _ := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/farmer/register", map[string]any{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	errs := decode(t, w)["errors"].([]any)
	assert.Len(t, errs, 10)
	assert.Equal(t, "First name is required", errs[0])

	assert.Equal(t, 0, st.Count("users"))
}

func TestGetProfile(t *testing.T) {
	router, _, _ := newTestServer(t)
	token, _ := registerFarmer(t, router)

	w := doJSON(router, http.MethodGet, "/api/farmer/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	farmer := decode(t, w)["farmer"].(map[string]any)
	assert.Equal(t, "jane@example.com", farmer["email"])
	assert.NotContains(t, farmer, "verificationToken")
}

func TestUpdateProfileMergesNestedDetails(t *testing.T) {
	router, st, _ := newTestServer(t)
	token, userID := registerFarmer(t, router)

	w := doJSON(router, http.MethodPut, "/api/farmer/profile", map[string]any{
		"firstName":   "Janet",
		"farmDetails": map[string]any{"irrigation": "drip"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	farmer := decode(t, w)["farmer"].(map[string]any)
	assert.Equal(t, "Janet Wanjiku", farmer["fullName"])

	details := farmer["farmDetails"].(map[string]any)
	assert.Equal(t, "drip", details["irrigation"])
	// Fields absent from the patch survive the nested merge.
	assert.Equal(t, "Nakuru", details["location"])

	user := st.FindOne("users", func(d store.Document) bool { return d["id"] == userID })
	require.NotNil(t, user)
	assert.Equal(t, "Janet Wanjiku", user["name"])
}

func TestCreateOrder(t *testing.T) {
	router, st, _ := newTestServer(t)
	token, userID := registerFarmer(t, router)

	w := doJSON(router, http.MethodPost, "/api/farmer/orders", map[string]any{
		"item":     "Fertilizer",
		"quantity": 5,
		"unit":     "bags",
		"urgency":  "medium",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	order := decode(t, w)["order"].(map[string]any)
	assert.Equal(t, "ORD-001", order["orderId"])
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, "5", order["quantity"])

	farmer := st.FindOne("farmers", func(d store.Document) bool { return d["id"] == userID })
	require.NotNil(t, farmer)
	assert.EqualValues(t, 1, farmer["orderCount"])
}

func TestCreateOrderWithoutFarmerProfile(t *testing.T) {
	router, st, _ := newTestServer(t)
	token, userID := registerFarmer(t, router)
	require.True(t, st.Delete("farmers", userID))

	// The order is stored even when the profile the count bump targets is
	// gone.
	w := doJSON(router, http.MethodPost, "/api/farmer/orders", map[string]any{"item": "Fertilizer"}, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, st.Count("farmOrders"))
}

func TestCreateOrderRequiresItem(t *testing.T) {
	router, st, _ := newTestServer(t)
	token, _ := registerFarmer(t, router)

	w := doJSON(router, http.MethodPost, "/api/farmer/orders", map[string]any{"quantity": 5}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, st.Count("farmOrders"))
}

func TestCreateSaleDerivesTotalAndProfit(t *testing.T) {
	router, _, _ := newTestServer(t)
	token, _ := registerFarmer(t, router)

	w := doJSON(router, http.MethodPost, "/api/farmer/sales", map[string]any{
		"crop":         "Maize",
		"quantity":     500,
		"unit":         "kg",
		"pricePerUnit": 0.8,
		"costPerUnit":  0.5,
		"buyer":        "Local Market",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	sale := decode(t, w)["sale"].(map[string]any)
	assert.Equal(t, "SALE-001", sale["saleId"])
	assert.Equal(t, 400.0, sale["total"])
	assert.Equal(t, 150.0, sale["profit"])
	assert.Equal(t, 0.5, sale["costPrice"])
}

func TestFarmerDashboard(t *testing.T) {
	router, _, _ := newTestServer(t)
	token, _ := registerFarmer(t, router)

	w := doJSON(router, http.MethodPost, "/api/farmer/sales", map[string]any{
		"crop":         "Maize",
		"quantity":     500,
		"pricePerUnit": 0.8,
		"costPerUnit":  0.5,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/farmer/dashboard", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	stats := body["stats"].(map[string]any)
	assert.Equal(t, 1.0, stats["salesThisMonth"])
	assert.Equal(t, 150.0, stats["totalProfit"])
	assert.Len(t, body["sales"].([]any), 1)
}

func TestFarmerRoutesRejectUnauthenticated(t *testing.T) {
	router, st, _ := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/farmer/orders", map[string]any{"item": "Fertilizer"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, st.Count("farmOrders"))
}

func TestFarmerRoutesRejectOtherRoles(t *testing.T) {
	router, st, _ := newTestServer(t)
	token := staffToken(t, "2", "agronomist", "Dr. Sarah Agronomics")

	w := doJSON(router, http.MethodPost, "/api/farmer/orders", map[string]any{"item": "Fertilizer"}, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, st.Count("farmOrders"))
}
