package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opengive/giving_backend/internal/apperrors"
	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/middleware"
)

// donationHandler handles HTTP requests related to donations.
type donationHandler struct {
	donationService portssvc.DonationSvcFacade
}

func newDonationHandler(ds portssvc.DonationSvcFacade) *donationHandler {
	return &donationHandler{donationService: ds}
}

// registerDonationRoutes registers all donation-related routes.
func registerDonationRoutes(rg *gin.RouterGroup, donationService portssvc.DonationSvcFacade) {
	h := newDonationHandler(donationService)

	donations := rg.Group("/donations")
	{
		donations.POST("", h.donate)
		donations.GET("/:id", h.getDonation)
		donations.GET("", h.listDonations)
	}
}

// donate godoc
// @Summary Make a donation
// @Description Moves funds from the authenticated user to a post, campaign or charity
// @Tags donations
// @Accept json
// @Produce json
// @Param donation body dto.CreateDonationRequest true "Donation details"
// @Success 201 {object} dto.DonationResult
// @Failure 400 {object} map[string]string "Invalid amount or no target"
// @Failure 409 {object} map[string]string "Insufficient funds or missing target"
// @Security BearerAuth
// @Router /donations [post]
func (h *donationHandler) donate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for donation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.donationService.Donate(c.Request.Context(), userID, req)
	if err != nil {
		// Inside the donation flow a missing donor or target conflicts the
		// request rather than 404ing it.
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// getDonation godoc
// @Summary Get a donation by GUID
// @Tags donations
// @Produce json
// @Param id path string true "Donation GUID"
// @Success 200 {object} dto.DonationResponse
// @Failure 404 {object} map[string]string "Donation not found"
// @Security BearerAuth
// @Router /donations/{id} [get]
func (h *donationHandler) getDonation(c *gin.Context) {
	donation, err := h.donationService.GetDonation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, donation)
}

// listDonations godoc
// @Summary List donations
// @Tags donations
// @Produce json
// @Param user query string false "Filter by donor GUID"
// @Param charity query string false "Filter by charity GUID"
// @Param campaign query string false "Filter by campaign GUID"
// @Param post query string false "Filter by post GUID"
// @Success 200 {object} dto.ListDonationsResponse
// @Security BearerAuth
// @Router /donations [get]
func (h *donationHandler) listDonations(c *gin.Context) {
	var params dto.ListDonationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.donationService.ListDonations(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
