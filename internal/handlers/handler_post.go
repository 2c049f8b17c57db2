package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/middleware"
)

// postHandler handles HTTP requests related to posts.
type postHandler struct {
	postService portssvc.PostSvcFacade
}

func newPostHandler(ps portssvc.PostSvcFacade) *postHandler {
	return &postHandler{postService: ps}
}

// registerPostRoutes registers all post-related routes.
func registerPostRoutes(rg *gin.RouterGroup, postService portssvc.PostSvcFacade) {
	h := newPostHandler(postService)

	posts := rg.Group("/posts")
	{
		posts.POST("", h.createPost)
		posts.GET("/:id", h.getPost)
		posts.GET("", h.listPosts)
		posts.PUT("/:id", h.updatePost)
	}
}

// createPost godoc
// @Summary Create a post
// @Description Publishes a post supporting a campaign
// @Tags posts
// @Accept json
// @Produce json
// @Param post body dto.CreatePostRequest true "Post details"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} map[string]string "Campaign does not exist"
// @Security BearerAuth
// @Router /posts [post]
func (h *postHandler) createPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create post request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// getPost godoc
// @Summary Get a post by GUID
// @Tags posts
// @Produce json
// @Param id path string true "Post GUID"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} map[string]string "Post not found"
// @Security BearerAuth
// @Router /posts/{id} [get]
func (h *postHandler) getPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// listPosts godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Param user query string false "Filter by author GUID"
// @Param campaign query string false "Filter by campaign GUID"
// @Param charity query string false "Filter by charity GUID"
// @Success 200 {object} dto.ListPostsResponse
// @Security BearerAuth
// @Router /posts [get]
func (h *postHandler) listPosts(c *gin.Context) {
	var params dto.ListPostsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.postService.ListPosts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updatePost godoc
// @Summary Update a post's caption
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post GUID"
// @Param post body dto.UpdatePostRequest true "Editable fields"
// @Success 200 {object} dto.PostResponse
// @Failure 403 {object} map[string]string "Caller is not the author"
// @Security BearerAuth
// @Router /posts/{id} [put]
func (h *postHandler) updatePost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update post request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
