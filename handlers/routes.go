package handlers

import (
	"project-board/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth           *AuthHandler
	Article        *ArticleHandler
	ArticleComment *ArticleCommentHandler
}

// RegisterRoutes mounts the board API on api. Reads are public but are
// audited as the caller when a valid token comes along. Writes require a
// bearer token signed with secret.
func RegisterRoutes(api *gin.RouterGroup, h Handlers, secret []byte) {
	requireAuth := middleware.AuthMiddleware(secret)
	optionalAuth := middleware.OptionalAuth(secret)

	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.Auth.SignUp)
		auth.POST("/login", h.Auth.Login)
	}
	api.GET("/profile", requireAuth, h.Auth.GetProfile)

	articles := api.Group("/articles")
	{
		articles.GET("", optionalAuth, h.Article.ListArticles)
		articles.GET("/search", optionalAuth, h.Article.SearchArticles)
		articles.GET("/search-types", h.Article.GetSearchTypes)
		articles.GET("/search-hashtag", optionalAuth, h.Article.SearchArticlesViaHashtag)
		articles.GET("/hashtags", optionalAuth, h.Article.GetHashtags)
		articles.GET("/count", optionalAuth, h.Article.GetArticleCount)
		articles.GET("/:id", optionalAuth, h.Article.GetArticle)
		articles.GET("/:id/summary", optionalAuth, h.Article.GetArticleSummary)
		articles.GET("/:id/comments", optionalAuth, h.ArticleComment.GetCommentsOfArticle)
		articles.POST("", requireAuth, h.Article.CreateArticle)
		articles.PUT("/:id", requireAuth, h.Article.UpdateArticle)
		articles.DELETE("/:id", requireAuth, h.Article.DeleteArticle)
	}

	comments := api.Group("/articleComments")
	{
		comments.GET("", optionalAuth, h.ArticleComment.ListArticleComments)
		comments.GET("/count", optionalAuth, h.ArticleComment.GetArticleCommentCount)
		comments.GET("/:id", optionalAuth, h.ArticleComment.GetArticleComment)
		comments.POST("", requireAuth, h.ArticleComment.CreateArticleComment)
		comments.PUT("/:id", requireAuth, h.ArticleComment.UpdateArticleComment)
		comments.DELETE("/:id", requireAuth, h.ArticleComment.DeleteArticleComment)
	}
}
