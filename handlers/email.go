// File: handlers/email.go
package handlers

import (
	"net/http"

	"appointly/models"
	"appointly/services/email"
	"appointly/services/user"
	"appointly/utils"

	"github.com/gin-gonic/gin"
)

// EmailHandler exposes the admin-facing manual email operations.
type EmailHandler struct {
	Email email.EmailService
	Users user.UserService
}

// NewEmailHandler constructs an EmailHandler.
func NewEmailHandler(mailer email.EmailService, users user.UserService) *EmailHandler {
	return &EmailHandler{Email: mailer, Users: users}
}

// TestHandler sends a simple message to verify SMTP settings.
func (h *EmailHandler) TestHandler(c *gin.Context) {
	var req struct {
		To string `json:"to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Recipient is required", err.Error())
		return
	}
	err := h.Email.SendCustom(c.Request.Context(), req.To,
		"Email service test", "<p>The email service is configured correctly.</p>")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Test email failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test email sent"})
}

// WelcomeHandler re-sends the welcome email to a registered user.
func (h *EmailHandler) WelcomeHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email is required", err.Error())
		return
	}
	u, err := h.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	recipient := &models.User{Name: u.Name, Email: u.Email, PhoneNumber: u.PhoneNumber}
	if err := h.Email.SendWelcome(c.Request.Context(), recipient); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Welcome email failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Welcome email sent"})
}

// CustomHandler sends an arbitrary message to one recipient.
func (h *EmailHandler) CustomHandler(c *gin.Context) {
	var req struct {
		To      string `json:"to" binding:"required"`
		Subject string `json:"subject" binding:"required"`
		Body    string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if err := h.Email.SendCustom(c.Request.Context(), req.To, req.Subject, req.Body); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Email send failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email sent"})
}
