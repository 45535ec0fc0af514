package handlers

import (
	"strings"

	"project-board/helper"
	"project-board/middleware"
	"project-board/models"
	"project-board/repositories"
	"project-board/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

// ListArticles serves GET /articles with the allow-listed filters.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	filter, err := repositories.BindFilter(repositories.ArticleFilterBindings, plainQuery(c.Request.URL.Query()))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	pageable, err := parsePageable(c)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	page, err := h.articleService.ListArticles(c.Request.Context(), filter, pageable)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", pageData(h.Helper, c, page))
}

// SearchArticles serves GET /articles/search?searchType=&searchValue=.
func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	searchType := models.SearchTypeTitle
	if raw := strings.TrimSpace(c.Query("searchType")); raw != "" {
		parsed, err := models.ParseSearchType(raw)
		if err != nil {
			h.Helper.SendServiceError(c, err)
			return
		}
		searchType = parsed
	}
	pageable, err := parsePageable(c)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	page, err := h.articleService.SearchArticles(c.Request.Context(), searchType, plainText(c.Query("searchValue")), pageable)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", pageData(h.Helper, c, page))
}

// GetSearchTypes lists the searchType values SearchArticles accepts.
func (h *ArticleHandler) GetSearchTypes(c *gin.Context) {
	types := models.SearchTypes()
	options := make([]gin.H, 0, len(types))
	for _, st := range types {
		options = append(options, gin.H{"name": st, "description": st.Description()})
	}

	h.Helper.SendSuccess(c, "Search types loaded", options)
}

func (h *ArticleHandler) SearchArticlesViaHashtag(c *gin.Context) {
	pageable, err := parsePageable(c)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	page, err := h.articleService.SearchArticlesViaHashtag(c.Request.Context(), plainText(c.Query("searchValue")), pageable)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", pageData(h.Helper, c, page))
}

func (h *ArticleHandler) GetHashtags(c *gin.Context) {
	hashtags, err := h.articleService.GetHashtags(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	if hashtags == nil {
		hashtags = []string{}
	}

	h.Helper.SendSuccess(c, "Hashtags loaded", hashtags)
}

func (h *ArticleHandler) GetArticleCount(c *gin.Context) {
	count, err := h.articleService.GetArticleCount(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article count loaded", gin.H{"count": count})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article loaded", article)
}

// GetArticleSummary serves GET /articles/:id/summary, the article without its comments.
func (h *ArticleHandler) GetArticleSummary(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	article, err := h.articleService.GetArticleSummary(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article loaded", article)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	var req models.ArticleRequest
	if !decodeJSON(h.Helper, c, &req) {
		return
	}
	req.Title = plainText(req.Title)
	req.Content = plainText(req.Content)
	req.Hashtag = plainTextPtr(req.Hashtag)
	if !validate(h.Helper, c, &req) {
		return
	}

	article, err := h.articleService.SaveArticle(c.Request.Context(), models.ArticleDto{
		UserAccount: models.UserAccountDto{UserID: userID},
		Title:       req.Title,
		Content:     req.Content,
		Hashtag:     req.Hashtag,
	})
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article created", article)
}

// UpdateArticle answers 200 with data.outcome "skipped_not_found" for unknown ids.
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	var req models.ArticleUpdateRequest
	if !decodeJSON(h.Helper, c, &req) {
		return
	}
	req.Title = plainTextPtr(req.Title)
	req.Content = plainTextPtr(req.Content)
	req.Hashtag = plainTextPtr(req.Hashtag)
	if !validate(h.Helper, c, &req) {
		return
	}

	outcome, err := h.articleService.UpdateArticle(c.Request.Context(), id, models.ArticleUpdateDto{
		Title:   req.Title,
		Content: req.Content,
		Hashtag: req.Hashtag,
	})
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article updated", gin.H{"id": id, "outcome": outcome})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted", gin.H{"id": id})
}
