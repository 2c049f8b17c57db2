package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/middleware"
	"github.com/opengive/giving_backend/internal/platform/config"
)

// charityTokenHandler handles HTTP requests for charity invitation tokens.
type charityTokenHandler struct {
	tokenService   portssvc.CharityTokenSvcFacade
	adminAPISecret string
}

func newCharityTokenHandler(ts portssvc.CharityTokenSvcFacade, adminAPISecret string) *charityTokenHandler {
	return &charityTokenHandler{
		tokenService:   ts,
		adminAPISecret: adminAPISecret,
	}
}

// registerCharityTokenRoutes registers the invitation token routes. Issuance
// additionally requires the platform admin secret in X-Admin-Secret.
func registerCharityTokenRoutes(rg *gin.RouterGroup, cfg *config.Config, tokenService portssvc.CharityTokenSvcFacade) {
	h := newCharityTokenHandler(tokenService, cfg.AdminAPISecret)

	tokens := rg.Group("/charity-tokens")
	{
		tokens.POST("", h.createCharityToken)
		tokens.GET("/:code", h.getCharityToken)
	}
}

// createCharityToken godoc
// @Summary Issue a charity invitation token
// @Description Requires the platform admin secret in the X-Admin-Secret header
// @Tags charity-tokens
// @Accept json
// @Produce json
// @Param token body dto.CreateCharityTokenRequest true "Invitee details"
// @Success 201 {object} dto.CharityTokenResponse
// @Failure 403 {object} map[string]string "Admin secret missing or wrong"
// @Security BearerAuth
// @Router /charity-tokens [post]
func (h *charityTokenHandler) createCharityToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	secret := c.GetHeader("X-Admin-Secret")
	if h.adminAPISecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.adminAPISecret)) != 1 {
		logger.Warn("Charity token issuance rejected, bad admin secret")
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req dto.CreateCharityTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create charity token request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	token, err := h.tokenService.CreateCharityToken(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, token)
}

// getCharityToken godoc
// @Summary Look up an invitation token by code
// @Tags charity-tokens
// @Produce json
// @Param code path string true "Token code"
// @Success 200 {object} dto.CharityTokenResponse
// @Failure 404 {object} map[string]string "Token not found"
// @Security BearerAuth
// @Router /charity-tokens/{code} [get]
func (h *charityTokenHandler) getCharityToken(c *gin.Context) {
	token, err := h.tokenService.GetCharityTokenByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}
