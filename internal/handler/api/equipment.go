package api

import (
	"errors"
	"net/http"

	"workspace-rental/internal/domain/equipment"
	reqdto "workspace-rental/internal/handler/dto/request"
	resdto "workspace-rental/internal/handler/dto/response"
	"workspace-rental/internal/usecase/commands"
	"workspace-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EquipmentHandler struct {
	equipmentCommands commands.EquipmentCommands
	equipmentQueries  queries.EquipmentQueries
}

func NewEquipmentHandler(equipmentCommands commands.EquipmentCommands, equipmentQueries queries.EquipmentQueries) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentCommands: equipmentCommands,
		equipmentQueries:  equipmentQueries,
	}
}

// @Summary Create equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Param request body reqdto.CreateEquipmentRequest true "Equipment"
// @Success 201 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /equipment [post]
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	item, err := h.equipmentCommands.Create(c.Request.Context(), commands.CreateEquipmentParams{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		h.renderEquipmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEquipment(item))
}

// @Summary Get equipment
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid equipment ID format",
		})
		return
	}

	item, err := h.equipmentQueries.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Equipment not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipment(item))
}

// @Summary List equipment
// @Tags equipment
// @Produce json
// @Success 200 {array} resdto.EquipmentResponse
// @Router /equipment [get]
func (h *EquipmentHandler) List(c *gin.Context) {
	list, err := h.equipmentQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentList(list))
}

// @Summary Update equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Param request body reqdto.UpdateEquipmentRequest true "Fields to update"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [patch]
func (h *EquipmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid equipment ID format",
		})
		return
	}

	var req reqdto.UpdateEquipmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	item, err := h.equipmentCommands.Update(c.Request.Context(), id, commands.UpdateEquipmentParams{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		h.renderEquipmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipment(item))
}

// @Summary Delete equipment
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid equipment ID format",
		})
		return
	}

	if err := h.equipmentCommands.Delete(c.Request.Context(), id); err != nil {
		h.renderEquipmentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Release equipment
// @Description Return a claimed item to the rentable pool
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /equipment/{id}/release [post]
func (h *EquipmentHandler) Release(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid equipment ID format",
		})
		return
	}

	if err := h.equipmentCommands.Release(c.Request.Context(), id); err != nil {
		h.renderEquipmentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EquipmentHandler) renderEquipmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEquipmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Equipment not found",
		})
	case errors.Is(err, commands.ErrEquipmentNotClaimed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Equipment is not currently claimed",
		})
	case errors.Is(err, equipment.ErrEmptyName),
		errors.Is(err, equipment.ErrNegativePrice):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
