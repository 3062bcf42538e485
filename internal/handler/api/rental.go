package api

import (
	"errors"
	"net/http"

	reqdto "workspace-rental/internal/handler/dto/request"
	resdto "workspace-rental/internal/handler/dto/response"
	"workspace-rental/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentalCommands commands.RentalCommands
}

func NewRentalHandler(rentalCommands commands.RentalCommands) *RentalHandler {
	return &RentalHandler{
		rentalCommands: rentalCommands,
	}
}

// @Summary Rent a workspace
// @Description Rent a workspace for open-ended use, optionally claiming equipment
// @Tags rentals
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param request body reqdto.RentNowRequest true "Rental request"
// @Success 200 {object} resdto.RentNowResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /workspaces/{id}/rent [post]
func (h *RentalHandler) RentNow(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace ID format",
		})
		return
	}

	var req reqdto.RentNowRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.rentalCommands.RentNow(
		c.Request.Context(), workspaceID, req.EquipmentIDs, req.PaymentInfo, req.LateFine, req.UserID)
	if err != nil {
		h.renderRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentNowResult(result))
}

// @Summary Rent a workspace time slot
// @Description Reserve a bounded time window on a workspace
// @Tags rentals
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param request body reqdto.RentTimeSlotRequest true "Time slot rental request"
// @Success 200 {object} resdto.RentTimeSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /workspaces/{id}/rent-time-slot [post]
func (h *RentalHandler) RentTimeSlot(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace ID format",
		})
		return
	}

	var req reqdto.RentTimeSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	start, end, err := req.ParseWindow()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Timestamps must match " + reqdto.TimestampLayout,
		})
		return
	}

	result, err := h.rentalCommands.RentTimeSlot(
		c.Request.Context(), workspaceID, start, end, req.PaymentInfo, req.UserID)
	if err != nil {
		h.renderRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentSlotResult(workspaceID, result))
}

// @Summary Release a workspace
// @Description Return a reserved workspace to the available pool
// @Tags rentals
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} resdto.WorkspaceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /workspaces/{id}/release [post]
func (h *RentalHandler) Release(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace ID format",
		})
		return
	}

	ws, err := h.rentalCommands.Release(c.Request.Context(), workspaceID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWorkspaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Workspace not found",
			})
		case errors.Is(err, commands.ErrWorkspaceNotReserved):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Workspace is not currently reserved",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWorkspace(ws))
}

func (h *RentalHandler) renderRentalError(c *gin.Context, err error) {
	var declined *commands.PaymentDeclinedError

	switch {
	case errors.Is(err, commands.ErrWorkspaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Workspace not found",
		})
	case errors.Is(err, commands.ErrEquipmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Some requested equipment does not exist",
		})
	case errors.Is(err, commands.ErrInvalidTimeSlot):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time slot",
		})
	case errors.Is(err, commands.ErrWorkspaceUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Workspace is already reserved",
		})
	case errors.Is(err, commands.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Requested time slot overlaps an existing rental",
		})
	case errors.As(err, &declined):
		// The failed attempt is on the ledger; surface its id so the caller
		// can reference it.
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":     "Payment was declined",
			"paymentId": declined.Record.PaymentID,
		})
	case errors.Is(err, commands.ErrPaymentFailed):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": "Payment was declined",
		})
	case errors.Is(err, commands.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Store temporarily unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
