package api

import (
	"errors"
	"net/http"

	"workspace-rental/internal/domain/workspace"
	reqdto "workspace-rental/internal/handler/dto/request"
	resdto "workspace-rental/internal/handler/dto/response"
	"workspace-rental/internal/usecase/commands"
	"workspace-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkspaceHandler struct {
	workspaceCommands commands.WorkspaceCommands
	workspaceQueries  queries.WorkspaceQueries
}

func NewWorkspaceHandler(workspaceCommands commands.WorkspaceCommands, workspaceQueries queries.WorkspaceQueries) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceCommands: workspaceCommands,
		workspaceQueries:  workspaceQueries,
	}
}

// @Summary Create workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Param request body reqdto.CreateWorkspaceRequest true "Workspace"
// @Success 201 {object} resdto.WorkspaceResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /workspaces [post]
func (h *WorkspaceHandler) Create(c *gin.Context) {
	var req reqdto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	ws, err := h.workspaceCommands.Create(c.Request.Context(), commands.CreateWorkspaceParams{
		RoomType:    req.RoomType,
		Name:        req.Name,
		Capacity:    req.Capacity,
		Description: req.Description,
		BasePrice:   req.BasePrice,
	})
	if err != nil {
		h.renderWorkspaceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromWorkspace(ws))
}

// @Summary Get workspace
// @Tags workspaces
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} resdto.WorkspaceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{id} [get]
func (h *WorkspaceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace ID format",
		})
		return
	}

	ws, err := h.workspaceQueries.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Workspace not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWorkspace(ws))
}

// @Summary List workspaces
// @Tags workspaces
// @Produce json
// @Success 200 {array} resdto.WorkspaceResponse
// @Router /workspaces [get]
func (h *WorkspaceHandler) List(c *gin.Context) {
	list, err := h.workspaceQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWorkspaceList(list))
}

// @Summary Update workspace
// @Description Update descriptive fields; concurrent updates lose on version conflict
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param request body reqdto.UpdateWorkspaceRequest true "Fields to update"
// @Success 200 {object} resdto.WorkspaceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /workspaces/{id} [patch]
func (h *WorkspaceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace ID format",
		})
		return
	}

	var req reqdto.UpdateWorkspaceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	ws, err := h.workspaceCommands.Update(c.Request.Context(), id, commands.UpdateWorkspaceParams{
		RoomType:    req.RoomType,
		Name:        req.Name,
		Capacity:    req.Capacity,
		Description: req.Description,
		BasePrice:   req.BasePrice,
	})
	if err != nil {
		h.renderWorkspaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWorkspace(ws))
}

// @Summary Delete workspace
// @Tags workspaces
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{id} [delete]
func (h *WorkspaceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace ID format",
		})
		return
	}

	if err := h.workspaceCommands.Delete(c.Request.Context(), id); err != nil {
		h.renderWorkspaceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) renderWorkspaceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrWorkspaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Workspace not found",
		})
	case errors.Is(err, commands.ErrWorkspaceConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Workspace was modified concurrently",
		})
	case errors.Is(err, workspace.ErrEmptyName),
		errors.Is(err, workspace.ErrInvalidCapacity),
		errors.Is(err, workspace.ErrNegativePrice):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
