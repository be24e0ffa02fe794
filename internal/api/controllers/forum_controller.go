package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type ForumController struct {
	forumService services.ForumServiceInterface
}

func NewForumController(forumService services.ForumServiceInterface) *ForumController {
	return &ForumController{
		forumService: forumService,
	}
}

// CreatePost godoc
// @Summary Create a forum post
// @Description Create a new post in the community forum
// @Tags Forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateForumPostRequest true "Post payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /forum/posts [post]
func (f *ForumController) CreatePost(c *gin.Context) {
	var req request_models.CreateForumPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	id, err := f.forumService.CreatePost(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": id}, "Post created")
}

// ListPosts godoc
// @Summary List forum posts
// @Description Page through forum posts, optionally filtered by category
// @Tags Forum
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /forum/posts [get]
func (f *ForumController) ListPosts(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return
	}
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return
	}

	posts, err := f.forumService.ListPosts(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts retrieved")
}

// GetPost godoc
// @Summary Get a forum post
// @Description Fetch a post with all of its replies
// @Tags Forum
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /forum/posts/{id} [get]
func (f *ForumController) GetPost(c *gin.Context) {
	post, err := f.forumService.GetPostDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post retrieved")
}

// CreateReply godoc
// @Summary Reply to a forum post
// @Description Add a reply to an existing post
// @Tags Forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body request_models.CreateForumReplyRequest true "Reply payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /forum/posts/{id}/replies [post]
func (f *ForumController) CreateReply(c *gin.Context) {
	var req request_models.CreateForumReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	if err := f.forumService.CreateReply(c.Request.Context(), userId, c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Reply created")
}

// DeletePost godoc
// @Summary Delete a forum post
// @Description Delete a post and its replies, author only
// @Tags Forum
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /forum/posts/{id} [delete]
func (f *ForumController) DeletePost(c *gin.Context) {
	userId := c.GetString("user_id")

	if err := f.forumService.DeletePost(c.Request.Context(), userId, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted")
}
