package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/middleware"
)

// campaignHandler handles HTTP requests related to campaigns.
type campaignHandler struct {
	campaignService portssvc.CampaignSvcFacade
}

func newCampaignHandler(cs portssvc.CampaignSvcFacade) *campaignHandler {
	return &campaignHandler{campaignService: cs}
}

// registerCampaignRoutes registers all campaign-related routes.
func registerCampaignRoutes(rg *gin.RouterGroup, campaignService portssvc.CampaignSvcFacade) {
	h := newCampaignHandler(campaignService)

	campaigns := rg.Group("/campaigns")
	{
		campaigns.POST("", h.createCampaign)
		campaigns.GET("/:id", h.getCampaign)
		campaigns.GET("", h.listCampaigns)
		campaigns.PUT("/:id", h.updateCampaign)
	}
}

// createCampaign godoc
// @Summary Create a campaign
// @Description Opens a campaign under the caller's charity
// @Tags campaigns
// @Accept json
// @Produce json
// @Param campaign body dto.CreateCampaignRequest true "Campaign details"
// @Success 201 {object} dto.CampaignResponse
// @Failure 403 {object} map[string]string "Caller does not administer a charity"
// @Security BearerAuth
// @Router /campaigns [post]
func (h *campaignHandler) createCampaign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create campaign request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	campaign, err := h.campaignService.CreateCampaign(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// getCampaign godoc
// @Summary Get a campaign by GUID
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign GUID"
// @Success 200 {object} dto.CampaignResponse
// @Failure 404 {object} map[string]string "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id} [get]
func (h *campaignHandler) getCampaign(c *gin.Context) {
	campaign, err := h.campaignService.GetCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// listCampaigns godoc
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Param charity query string false "Filter by charity GUID"
// @Success 200 {object} dto.ListCampaignsResponse
// @Security BearerAuth
// @Router /campaigns [get]
func (h *campaignHandler) listCampaigns(c *gin.Context) {
	var params dto.ListCampaignsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.campaignService.ListCampaigns(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateCampaign godoc
// @Summary Update a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign GUID"
// @Param campaign body dto.UpdateCampaignRequest true "Editable fields"
// @Success 200 {object} dto.CampaignResponse
// @Failure 403 {object} map[string]string "Caller does not administer the campaign's charity"
// @Security BearerAuth
// @Router /campaigns/{id} [put]
func (h *campaignHandler) updateCampaign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update campaign request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	campaign, err := h.campaignService.UpdateCampaign(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}
