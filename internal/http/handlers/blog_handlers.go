package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karthikc1125/simple-login/domain"
	"github.com/karthikc1125/simple-login/internal/http/middleware"
)

// BlogHandlers handles blog endpoints
type BlogHandlers struct {
	blogSvc domain.BlogService
	logger  *zap.Logger
}

// NewBlogHandlers creates new blog handlers
func NewBlogHandlers(blogSvc domain.BlogService, logger *zap.Logger) *BlogHandlers {
	return &BlogHandlers{blogSvc: blogSvc, logger: logger}
}

// CreatePostRequest represents a new blog post
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// List returns all posts, newest first
func (h *BlogHandlers) List(c *gin.Context) {
	posts, err := h.blogSvc.ListPosts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get returns one post by ID or slug
func (h *BlogHandlers) Get(c *gin.Context) {
	post, err := h.blogSvc.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("failed to load post", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create creates a new post. Route-level authorization restricts this to
// admins.
func (h *BlogHandlers) Create(c *gin.Context) {
	author, ok := middleware.SessionUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	post, err := h.blogSvc.CreatePost(c.Request.Context(), req.Title, req.Content, author)
	if err != nil {
		h.logger.Error("failed to create post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}
