package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
	formatter   portssvc.FormatterSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade, formatter portssvc.FormatterSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
		formatter:   formatter,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, formatter portssvc.FormatterSvcFacade) {
	h := newUserHandler(userService, formatter)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getSelf)
		users.GET("/:id", h.getUser)
		users.PUT("/me", h.updateSelf)
		users.DELETE("/me", h.eraseSelf)
		users.POST("/balance", h.deposit)
	}
}

// getSelf godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getSelf(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByGUID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.formatter.FormatUser(c.Request.Context(), user))
}

// getUser godoc
// @Summary Get a user by GUID
// @Tags users
// @Produce json
// @Param id path string true "User GUID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	user, err := h.userService.GetUserByGUID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.formatter.FormatUser(c.Request.Context(), user))
}

// updateSelf godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UpdateUserRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Security BearerAuth
// @Router /users/me [put]
func (h *userHandler) updateSelf(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update user request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.formatter.FormatUser(c.Request.Context(), user))
}

// deposit godoc
// @Summary Add funds to the authenticated user's balance
// @Tags users
// @Accept json
// @Produce json
// @Param deposit body dto.DepositRequest true "Amount in cents"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Security BearerAuth
// @Router /users/balance [post]
func (h *userHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for deposit request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.Deposit(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.formatter.FormatUser(c.Request.Context(), user))
}

// eraseSelf godoc
// @Summary Soft-erase the authenticated user
// @Tags users
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /users/me [delete]
func (h *userHandler) eraseSelf(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.userService.EraseUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
