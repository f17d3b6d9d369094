// File: handlers/blockedDates.go
package handlers

import (
	"net/http"
	"strconv"

	"appointly/models"
	"appointly/services/blockeddates"
	"appointly/utils"

	"github.com/gin-gonic/gin"
)

// BlockedDateHandler exposes the blocked-date registry over HTTP.
type BlockedDateHandler struct {
	Service blockeddates.BlockedDateService
}

// NewBlockedDateHandler constructs a BlockedDateHandler.
func NewBlockedDateHandler(svc blockeddates.BlockedDateService) *BlockedDateHandler {
	return &BlockedDateHandler{Service: svc}
}

func (h *BlockedDateHandler) GetAllHandler(c *gin.Context) {
	records, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *BlockedDateHandler) GetByMonthHandler(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Param("year"))
	month, err2 := strconv.Atoi(c.Param("month"))
	if err1 != nil || err2 != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid year or month", "")
		return
	}
	records, err := h.Service.ListByMonth(c.Request.Context(), year, month)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *BlockedDateHandler) CheckDateHandler(c *gin.Context) {
	check, err := h.Service.CheckDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

func (h *BlockedDateHandler) GetInRangeHandler(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "Start and end dates are required", "")
		return
	}
	records, err := h.Service.ListInRange(c.Request.Context(), start, end)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *BlockedDateHandler) SummaryHandler(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *BlockedDateHandler) CreateHandler(c *gin.Context) {
	var req models.CreateBlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	rec, err := h.Service.Block(c.Request.Context(), req.Date, req.Reason, req.RecurringPattern)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Blocked date created successfully",
		"blocked": rec,
	})
}

func (h *BlockedDateHandler) BulkBlockHandler(c *gin.Context) {
	var req models.BulkBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	result, err := h.Service.BlockMany(c.Request.Context(), req.Dates, req.Reason, req.RecurringPattern)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *BlockedDateHandler) UpdateHandler(c *gin.Context) {
	var req models.UpdateBlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if err := h.Service.UpdateBlockedDate(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blocked date updated successfully"})
}

func (h *BlockedDateHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Unblock(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blocked date deleted successfully"})
}

func (h *BlockedDateHandler) DeleteByDateHandler(c *gin.Context) {
	if err := h.Service.UnblockDate(c.Request.Context(), c.Param("date")); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blocked date deleted successfully"})
}

func (h *BlockedDateHandler) ClearAllHandler(c *gin.Context) {
	removed, err := h.Service.ClearAll(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "All blocked dates cleared",
		"removedCount": removed,
	})
}

func (h *BlockedDateHandler) ValidateHandler(c *gin.Context) {
	report, err := h.Service.ValidateConsistency(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *BlockedDateHandler) ForceSyncHandler(c *gin.Context) {
	result, err := h.Service.ForceSync(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Blocked dates sync completed successfully",
		"result":  result,
	})
}
