package handlers

import (
	"net/http"
	"time"

	"agronomy-services-api-server/internal/models"
	"agronomy-services-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Store *store.Store
}

// Stats returns the system-wide breakdown used by the admin console.
func (h *AdminHandler) Stats(c *gin.Context) {
	now := time.Now()

	users := h.Store.FindMany("users", nil, store.FindOptions{})
	roleCount := func(role string) int {
		return h.Store.FindMany("users", byField("role", role), store.FindOptions{}).Total
	}

	farmers := h.Store.FindMany("farmers", nil, store.FindOptions{})
	verified := 0
	newThisMonth := 0
	for _, farmer := range farmers.Items {
		if v, _ := farmer["verified"].(bool); v {
			verified++
		}
		if sameMonth(str(farmer, "registrationDate"), now) {
			newThisMonth++
		}
	}

	sales := h.Store.FindMany("sales", nil, store.FindOptions{})
	salesThisMonth := 0
	totalProfit := 0.0
	for _, sale := range sales.Items {
		totalProfit += num(sale, "profit")
		if sameMonth(str(sale, "date"), now) {
			salesThisMonth++
		}
	}

	assessmentCount := func(status string) int {
		return h.Store.FindMany("assessmentRequests", byField("status", status), store.FindOptions{}).Total
	}
	orderCount := func(status string) int {
		return h.Store.FindMany("farmOrders", byField("status", status), store.FindOptions{}).Total
	}

	stats := gin.H{
		"users": gin.H{
			"total":       users.Total,
			"farmers":     roleCount(models.RoleFarmer),
			"agronomists": roleCount(models.RoleAgronomist),
			"admins":      roleCount(models.RoleAdmin),
			"active":      h.Store.FindMany("users", byField("status", "active"), store.FindOptions{}).Total,
		},
		"farmers": gin.H{
			"total":        farmers.Total,
			"verified":     verified,
			"newThisMonth": newThisMonth,
		},
		"assessments": gin.H{
			"total":     h.Store.Count("assessmentRequests"),
			"pending":   assessmentCount(models.AssessmentStatusPending),
			"completed": assessmentCount(models.AssessmentStatusCompleted),
		},
		"orders": gin.H{
			"total":     h.Store.Count("farmOrders"),
			"pending":   orderCount(models.OrderStatusPending),
			"completed": orderCount(models.OrderStatusCompleted),
		},
		"sales": gin.H{
			"total":       sales.Total,
			"thisMonth":   salesThisMonth,
			"totalProfit": totalProfit,
		},
		"contacts": gin.H{
			"total":  h.Store.Count("contactMessages"),
			"unread": h.Store.FindMany("contactMessages", byField("status", models.ContactStatusUnread), store.FindOptions{}).Total,
		},
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
