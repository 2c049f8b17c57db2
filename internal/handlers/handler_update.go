package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/middleware"
)

// updateHandler handles HTTP requests related to charity news updates.
type updateHandler struct {
	updateService portssvc.UpdateSvcFacade
}

func newUpdateHandler(us portssvc.UpdateSvcFacade) *updateHandler {
	return &updateHandler{updateService: us}
}

// registerUpdateRoutes registers all update-related routes.
func registerUpdateRoutes(rg *gin.RouterGroup, updateService portssvc.UpdateSvcFacade) {
	h := newUpdateHandler(updateService)

	updates := rg.Group("/updates")
	{
		updates.POST("", h.createUpdate)
		updates.GET("/:id", h.getUpdate)
		updates.GET("", h.listUpdates)
	}
}

// createUpdate godoc
// @Summary Publish a charity update
// @Tags updates
// @Accept json
// @Produce json
// @Param update body dto.CreateUpdateRequest true "Update details"
// @Success 201 {object} dto.UpdateResponse
// @Failure 403 {object} map[string]string "Caller does not administer a charity"
// @Security BearerAuth
// @Router /updates [post]
func (h *updateHandler) createUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create update request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	update, err := h.updateService.CreateUpdate(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, update)
}

// getUpdate godoc
// @Summary Get an update by GUID
// @Tags updates
// @Produce json
// @Param id path string true "Update GUID"
// @Success 200 {object} dto.UpdateResponse
// @Failure 404 {object} map[string]string "Update not found"
// @Security BearerAuth
// @Router /updates/{id} [get]
func (h *updateHandler) getUpdate(c *gin.Context) {
	update, err := h.updateService.GetUpdate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, update)
}

// listUpdates godoc
// @Summary List a charity's updates
// @Tags updates
// @Produce json
// @Param charity query string true "Charity GUID"
// @Success 200 {object} dto.ListUpdatesResponse
// @Security BearerAuth
// @Router /updates [get]
func (h *updateHandler) listUpdates(c *gin.Context) {
	var params dto.ListUpdatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.updateService.ListUpdates(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
