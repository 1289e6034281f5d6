package handlers

import (
	"net/http"

	"agronomy-services-api-server/internal/auth"
	"agronomy-services-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Store *store.Store
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Login authenticates a user against the credential records and issues a
// signed session token. The role is part of the credential lookup, so the
// same email can in principle hold different-role accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email, password and role are required"})
		return
	}

	user := h.Store.FindOne("users", func(d store.Document) bool {
		return d["email"] == req.Email && d["role"] == req.Role
	})
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, str(user, "password")) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateJWT(str(user, "id"), str(user, "email"), str(user, "role"), str(user, "name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	updated, err := h.Store.Update("users", str(user, "id"), store.Document{"lastLogin": nowISO()})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    strip(updated, "password"),
	})
}

// Logout acknowledges the logout; tokens are stateless, so the client simply
// discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}
