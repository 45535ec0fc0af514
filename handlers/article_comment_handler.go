package handlers

import (
	"project-board/helper"
	"project-board/middleware"
	"project-board/models"
	"project-board/repositories"
	"project-board/services"

	"github.com/gin-gonic/gin"
)

type ArticleCommentHandler struct {
	commentService services.ArticleCommentService
	Helper         *helper.HTTPHelper
}

func NewArticleCommentHandler(commentService services.ArticleCommentService, h *helper.HTTPHelper) *ArticleCommentHandler {
	return &ArticleCommentHandler{commentService: commentService, Helper: h}
}

// ListArticleComments serves GET /articleComments with the allow-listed filters.
func (h *ArticleCommentHandler) ListArticleComments(c *gin.Context) {
	filter, err := repositories.BindFilter(repositories.ArticleCommentFilterBindings, plainQuery(c.Request.URL.Query()))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	pageable, err := parsePageable(c)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	page, err := h.commentService.ListArticleComments(c.Request.Context(), filter, pageable)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comments loaded", pageData(h.Helper, c, page))
}

func (h *ArticleCommentHandler) GetArticleComment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	comment, err := h.commentService.GetArticleComment(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment loaded", comment)
}

func (h *ArticleCommentHandler) GetArticleCommentCount(c *gin.Context) {
	count, err := h.commentService.GetArticleCommentCount(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment count loaded", gin.H{"count": count})
}

// GetCommentsOfArticle serves GET /articles/:id/comments.
func (h *ArticleCommentHandler) GetCommentsOfArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	comments, err := h.commentService.SearchArticleComments(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comments loaded", comments)
}

func (h *ArticleCommentHandler) CreateArticleComment(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	var req models.ArticleCommentRequest
	if !decodeJSON(h.Helper, c, &req) {
		return
	}
	req.Content = plainText(req.Content)
	if !validate(h.Helper, c, &req) {
		return
	}

	outcome, err := h.commentService.SaveArticleComment(c.Request.Context(), models.ArticleCommentDto{
		ArticleID:   req.ArticleID,
		UserAccount: models.UserAccountDto{UserID: userID},
		Content:     req.Content,
	})
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment saved", gin.H{"article_id": req.ArticleID, "outcome": outcome})
}

func (h *ArticleCommentHandler) UpdateArticleComment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	var req models.ArticleCommentUpdateRequest
	if !decodeJSON(h.Helper, c, &req) {
		return
	}
	req.Content = plainText(req.Content)
	if !validate(h.Helper, c, &req) {
		return
	}

	outcome, err := h.commentService.UpdateArticleComment(c.Request.Context(), id, req.Content)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment updated", gin.H{"id": id, "outcome": outcome})
}

func (h *ArticleCommentHandler) DeleteArticleComment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	if err := h.commentService.DeleteArticleComment(c.Request.Context(), id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment deleted", gin.H{"id": id})
}
