package api

import (
	"errors"
	"net/http"

	resdto "workspace-rental/internal/handler/dto/response"
	"workspace-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LedgerHandler struct {
	ledgerQueries queries.LedgerQueries
}

func NewLedgerHandler(ledgerQueries queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{
		ledgerQueries: ledgerQueries,
	}
}

// @Summary Get payment record
// @Tags payment-records
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payment-records/{id} [get]
func (h *LedgerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID format",
		})
		return
	}

	record, err := h.ledgerQueries.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment record not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentRecord(record))
}

// @Summary List payment records
// @Description List the audit trail, optionally filtered to one user
// @Tags payment-records
// @Produce json
// @Param user_id query string false "Filter by user ID"
// @Success 200 {array} resdto.PaymentRecordResponse
// @Failure 400 {object} map[string]string
// @Router /payment-records [get]
func (h *LedgerHandler) List(c *gin.Context) {
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid user ID format",
			})
			return
		}

		records, err := h.ledgerQueries.ListByUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.FromPaymentRecordList(records))
		return
	}

	records, err := h.ledgerQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentRecordList(records))
}
