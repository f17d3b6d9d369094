// File: handlers/appointments.go
package handlers

import (
	"net/http"

	"appointly/models"
	"appointly/services/appointment"
	"appointly/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes appointment CRUD over HTTP.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

func (h *AppointmentHandler) GetAllHandler(c *gin.Context) {
	appts, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) GetWithUserDetailsHandler(c *gin.Context) {
	appts, err := h.Service.ListWithUserDetails(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) GetByUserHandler(c *gin.Context) {
	appts, err := h.Service.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) GetByIDHandler(c *gin.Context) {
	appt, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) CreateHandler(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	appt, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment created successfully",
		"appointment": appt,
	})
}

func (h *AppointmentHandler) UpdateHandler(c *gin.Context) {
	var req models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	appt, err := h.Service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment updated successfully",
		"appointment": appt,
	})
}

func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	var req models.CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	appt, err := h.Service.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment cancelled",
		"appointment": appt,
	})
}

func (h *AppointmentHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
