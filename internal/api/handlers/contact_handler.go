package handlers

import (
	"net/http"
	"regexp"
	"strconv"

	"agronomy-services-api-server/internal/models"
	"agronomy-services-api-server/internal/notify"
	"agronomy-services-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

var emailShape = regexp.MustCompile(`^(.+)@(.+)$`)

type ContactHandler struct {
	Store      *store.Store
	Notify     notify.Dispatcher
	AdminEmail string
	StaffPhone string
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Submit stores a contact message and relays it to staff by email and SMS.
// The response reports success once the message is accepted for delivery;
// downstream delivery failures never reach the caller.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name, email, subject and message are required"})
		return
	}

	message := models.ContactMessage{
		ID:        store.NewID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.ContactStatusUnread,
		Timestamp: nowISO(),
	}

	messageDoc, err := store.Encode(message)
	if err == nil {
		_, err = h.Store.Insert("contactMessages", messageDoc)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred. Please try again later."})
		return
	}

	data := map[string]string{
		"name":    req.Name,
		"phone":   req.Phone,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
	}
	h.Notify.Send(notify.Intent{Recipient: h.AdminEmail, Template: notify.TemplateContactRelay, Data: data})
	if h.StaffPhone != "" {
		h.Notify.Send(notify.Intent{Recipient: h.StaffPhone, Template: notify.TemplateContactRelay, Data: data})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully"})
}

// ListMessages returns stored contact messages for staff, newest first.
func (h *ContactHandler) ListMessages(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	var pred store.Predicate
	if status != "" {
		pred = byField("status", status)
	}

	result := h.Store.FindMany("contactMessages", pred, store.FindOptions{
		SortKey:  "timestamp",
		SortDesc: true,
		Page:     page,
		PageSize: limit,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"messages":   result.Items,
		"total":      result.Total,
		"page":       result.Page,
		"totalPages": result.TotalPages,
	})
}

type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Subscribe adds a newsletter subscriber. Subscribing an address twice is a
// success without a duplicate record.
func (h *ContactHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email address is required"})
		return
	}

	if !emailShape.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please enter a valid email address"})
		return
	}

	if existing := h.Store.FindOne("newsletterSubscribers", byField("email", req.Email)); existing != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "You are already subscribed to our newsletter!"})
		return
	}

	name := req.Name
	if name == "" {
		name = "Subscriber"
	}

	subscriber := models.Subscriber{
		ID:           store.NewID(),
		Email:        req.Email,
		Name:         name,
		SubscribedAt: nowISO(),
		Active:       true,
	}

	subscriberDoc, err := store.Encode(subscriber)
	if err == nil {
		_, err = h.Store.Insert("newsletterSubscribers", subscriberDoc)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred. Please try again later."})
		return
	}

	h.Notify.Send(notify.Intent{
		Recipient: req.Email,
		Template:  notify.TemplateNewsletterWelcome,
		Data:      map[string]string{"name": name},
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you for subscribing to our newsletter!"})
}
