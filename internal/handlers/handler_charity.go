package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/middleware"
)

// charityHandler handles HTTP requests related to charities.
type charityHandler struct {
	charityService portssvc.CharitySvcFacade
}

func newCharityHandler(cs portssvc.CharitySvcFacade) *charityHandler {
	return &charityHandler{charityService: cs}
}

// registerCharityRoutes registers all charity-related routes.
func registerCharityRoutes(rg *gin.RouterGroup, charityService portssvc.CharitySvcFacade) {
	h := newCharityHandler(charityService)

	charities := rg.Group("/charities")
	{
		charities.POST("", h.createCharity)
		charities.GET("/:id", h.getCharity)
		charities.GET("", h.listCharities)
		charities.PUT("/:id", h.updateCharity)
	}
}

// createCharity godoc
// @Summary Create a charity
// @Description Registers a new charity with the calling charity-staff user as first member
// @Tags charities
// @Accept json
// @Produce json
// @Param charity body dto.CreateCharityRequest true "Charity details"
// @Success 201 {object} dto.CharityResponse
// @Failure 403 {object} map[string]string "Caller is not charity staff"
// @Failure 409 {object} map[string]string "Caller already administers a charity"
// @Security BearerAuth
// @Router /charities [post]
func (h *charityHandler) createCharity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateCharityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create charity request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	charity, err := h.charityService.CreateCharity(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, charity)
}

// getCharity godoc
// @Summary Get a charity by GUID
// @Tags charities
// @Produce json
// @Param id path string true "Charity GUID"
// @Success 200 {object} dto.CharityResponse
// @Failure 404 {object} map[string]string "Charity not found"
// @Security BearerAuth
// @Router /charities/{id} [get]
func (h *charityHandler) getCharity(c *gin.Context) {
	charity, err := h.charityService.GetCharity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, charity)
}

// listCharities godoc
// @Summary List charities
// @Tags charities
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListCharitiesResponse
// @Security BearerAuth
// @Router /charities [get]
func (h *charityHandler) listCharities(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.charityService.ListCharities(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateCharity godoc
// @Summary Update a charity
// @Description Edits name and description; caller must administer the charity
// @Tags charities
// @Accept json
// @Produce json
// @Param id path string true "Charity GUID"
// @Param charity body dto.UpdateCharityRequest true "Editable fields"
// @Success 200 {object} dto.CharityResponse
// @Failure 403 {object} map[string]string "Caller does not administer this charity"
// @Security BearerAuth
// @Router /charities/{id} [put]
func (h *charityHandler) updateCharity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateCharityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update charity request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	charity, err := h.charityService.UpdateCharity(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, charity)
}
