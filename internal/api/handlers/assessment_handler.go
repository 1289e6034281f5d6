package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"agronomy-services-api-server/internal/models"
	"agronomy-services-api-server/internal/notify"
	"agronomy-services-api-server/internal/store"
	"agronomy-services-api-server/internal/validate"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	Store      *store.Store
	Notify     notify.Dispatcher
	AdminEmail string
}

// Submit accepts an anonymous farm-assessment request. On success the caller
// receives a reference number; that reference, not the internal id, is the
// handle for all future status queries. Staff are notified best-effort.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if errs := validate.Assessment.Apply(body); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
		return
	}

	farmSize, _ := validate.Num(body, "farmSize")
	var farmAge *int
	if n, ok := validate.Num(body, "farmAge"); ok {
		age := int(n)
		farmAge = &age
	}

	request := models.AssessmentRequest{
		ID:              store.NewID(),
		ReferenceNumber: store.ReferenceNumber("ASS"),
		AssessmentType:  validate.Str(body, "assessmentType"),
		FarmDetails: models.AssessmentFarm{
			Name:          validate.Str(body, "farmName"),
			Location:      validate.Str(body, "farmLocation"),
			Size:          farmSize,
			Age:           farmAge,
			Crops:         validate.List(body, "crops"),
			Livestock:     validate.Str(body, "livestock"),
			CurrentIssues: validate.Str(body, "currentIssues"),
		},
		FarmerDetails: models.AssessmentContact{
			FullName:         validate.Str(body, "fullName"),
			Phone:            validate.Str(body, "phone"),
			Email:            validate.Str(body, "email"),
			IDNumber:         validate.Str(body, "idNumber"),
			RegisteredFarmer: validate.Str(body, "registeredFarmer") == "yes",
		},
		AdditionalInfo:  validate.Str(body, "additionalInfo"),
		PreferredDate:   validate.Str(body, "preferredDate"),
		NewsletterOptIn: validate.Bool(body, "newsletter"),
		SubmissionDate:  nowISO(),
		Status:          models.AssessmentStatusPending,
		Notes:           []models.AssessmentNote{},
	}

	requestDoc, err := store.Encode(request)
	if err == nil {
		_, err = h.Store.Insert("assessmentRequests", requestDoc)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred while submitting your request."})
		return
	}

	h.Notify.Send(notify.Intent{
		Recipient: h.AdminEmail,
		Template:  notify.TemplateAssessmentReceived,
		Data: map[string]string{
			"referenceNumber": request.ReferenceNumber,
			"farmName":        request.FarmDetails.Name,
			"location":        request.FarmDetails.Location,
			"fullName":        request.FarmerDetails.FullName,
			"phone":           request.FarmerDetails.Phone,
		},
	})

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Farm assessment request submitted successfully! Our team will contact you within 24 hours.",
		"referenceNumber": request.ReferenceNumber,
		"requestId":       request.ID,
	})
}

// List returns assessment requests for staff, newest first, filterable by
// status and by the requester's email or phone, with per-status stats.
func (h *AssessmentHandler) List(c *gin.Context) {
	status := c.Query("status")
	farmerContact := c.Query("farmerId")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	pred := func(d store.Document) bool {
		if status != "" && status != "all" && d["status"] != status {
			return false
		}
		if farmerContact != "" {
			details, _ := d["farmerDetails"].(map[string]any)
			if details == nil || (details["email"] != farmerContact && details["phone"] != farmerContact) {
				return false
			}
		}
		return true
	}

	result := h.Store.FindMany("assessmentRequests", pred, store.FindOptions{
		SortKey:  "submissionDate",
		SortDesc: true,
		Page:     page,
		PageSize: limit,
	})

	stats := gin.H{"total": h.Store.Count("assessmentRequests")}
	for _, s := range []string{
		models.AssessmentStatusPending,
		models.AssessmentStatusScheduled,
		models.AssessmentStatusCompleted,
		models.AssessmentStatusCancelled,
	} {
		stats[s] = h.Store.FindMany("assessmentRequests", byField("status", s), store.FindOptions{}).Total
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"requests":   result.Items,
		"total":      result.Total,
		"page":       result.Page,
		"totalPages": result.TotalPages,
		"stats":      stats,
	})
}

type UpdateStatusRequest struct {
	Status             string `json:"status" binding:"required"`
	AssignedAgronomist string `json:"assignedAgronomist"`
	ScheduledDate      string `json:"scheduledDate"`
	Notes              string `json:"notes"`
}

// UpdateStatus moves a request through its lifecycle: pending can become
// scheduled or cancelled, scheduled can become completed or cancelled, and
// completed/cancelled are terminal. A transition outside that map is rejected
// with 400 and mutates nothing. Scheduling sends a confirmation when the
// requester left an email; completion stamps completedDate.
func (h *AssessmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Status is required"})
		return
	}

	if !models.IsAssessmentStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status value"})
		return
	}

	id := c.Param("id")
	request := h.Store.FindOne("assessmentRequests", byID(id))
	if request == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Assessment request not found"})
		return
	}

	currentStatus := str(request, "status")
	if !models.CanTransitionAssessment(currentStatus, req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Cannot change status from %s to %s", currentStatus, req.Status),
		})
		return
	}

	patch := store.Document{"status": req.Status}
	if req.AssignedAgronomist != "" {
		patch["assignedAgronomist"] = req.AssignedAgronomist
	}
	if req.ScheduledDate != "" {
		patch["scheduledDate"] = req.ScheduledDate
	}
	if req.Notes != "" {
		notes, _ := request["notes"].([]any)
		patch["notes"] = append(notes, map[string]any{
			"type":    "status_update",
			"content": req.Notes,
			"date":    nowISO(),
			"by":      c.GetString("user_name"),
		})
	}
	if req.Status == models.AssessmentStatusCompleted {
		patch["completedDate"] = nowISO()
	}

	updated, err := h.Store.Update("assessmentRequests", id, patch)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Assessment request not found"})
		return
	}

	if req.Status == models.AssessmentStatusScheduled {
		details, _ := updated["farmerDetails"].(map[string]any)
		if email, _ := details["email"].(string); email != "" {
			h.Notify.Send(notify.Intent{
				Recipient: email,
				Template:  notify.TemplateAssessmentScheduled,
				Data: map[string]string{
					"referenceNumber": str(updated, "referenceNumber"),
					"fullName":        fmt.Sprintf("%v", details["fullName"]),
					"scheduledDate":   req.ScheduledDate,
				},
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Assessment request updated successfully",
		"request": updated,
	})
}
