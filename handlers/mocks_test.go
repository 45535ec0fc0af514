package handlers

import (
	"context"

	"project-board/models"
	"project-board/repositories"

	"github.com/stretchr/testify/mock"
)

type mockArticleService struct {
	mock.Mock
}

func (m *mockArticleService) dtoPage(args mock.Arguments) (models.Page[models.ArticleDto], error) {
	return args.Get(0).(models.Page[models.ArticleDto]), args.Error(1)
}

func (m *mockArticleService) SearchArticles(ctx context.Context, searchType models.SearchType, keyword string, pageable models.Pageable) (models.Page[models.ArticleDto], error) {
	return m.dtoPage(m.Called(ctx, searchType, keyword, pageable))
}

func (m *mockArticleService) ListArticles(ctx context.Context, filter repositories.Filter, pageable models.Pageable) (models.Page[models.ArticleDto], error) {
	return m.dtoPage(m.Called(ctx, filter, pageable))
}

func (m *mockArticleService) GetArticle(ctx context.Context, id uint) (models.ArticleWithCommentsDto, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ArticleWithCommentsDto), args.Error(1)
}

func (m *mockArticleService) GetArticleSummary(ctx context.Context, id uint) (models.ArticleDto, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ArticleDto), args.Error(1)
}

func (m *mockArticleService) SaveArticle(ctx context.Context, dto models.ArticleDto) (models.ArticleDto, error) {
	args := m.Called(ctx, dto)
	return args.Get(0).(models.ArticleDto), args.Error(1)
}

func (m *mockArticleService) UpdateArticle(ctx context.Context, id uint, dto models.ArticleUpdateDto) (models.UpdateOutcome, error) {
	args := m.Called(ctx, id, dto)
	return args.Get(0).(models.UpdateOutcome), args.Error(1)
}

func (m *mockArticleService) DeleteArticle(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockArticleService) GetArticleCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockArticleService) SearchArticlesViaHashtag(ctx context.Context, hashtag string, pageable models.Pageable) (models.Page[models.ArticleDto], error) {
	return m.dtoPage(m.Called(ctx, hashtag, pageable))
}

func (m *mockArticleService) GetHashtags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	hashtags, _ := args.Get(0).([]string)
	return hashtags, args.Error(1)
}

type mockArticleCommentService struct {
	mock.Mock
}

func (m *mockArticleCommentService) SearchArticleComments(ctx context.Context, articleID uint) ([]models.ArticleCommentDto, error) {
	args := m.Called(ctx, articleID)
	comments, _ := args.Get(0).([]models.ArticleCommentDto)
	return comments, args.Error(1)
}

func (m *mockArticleCommentService) ListArticleComments(ctx context.Context, filter repositories.Filter, pageable models.Pageable) (models.Page[models.ArticleCommentDto], error) {
	args := m.Called(ctx, filter, pageable)
	return args.Get(0).(models.Page[models.ArticleCommentDto]), args.Error(1)
}

func (m *mockArticleCommentService) GetArticleComment(ctx context.Context, id uint) (models.ArticleCommentDto, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ArticleCommentDto), args.Error(1)
}

func (m *mockArticleCommentService) GetArticleCommentCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockArticleCommentService) SaveArticleComment(ctx context.Context, dto models.ArticleCommentDto) (models.UpdateOutcome, error) {
	args := m.Called(ctx, dto)
	return args.Get(0).(models.UpdateOutcome), args.Error(1)
}

func (m *mockArticleCommentService) UpdateArticleComment(ctx context.Context, id uint, content string) (models.UpdateOutcome, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(models.UpdateOutcome), args.Error(1)
}

func (m *mockArticleCommentService) DeleteArticleComment(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*models.AuthResponse)
	return res, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*models.AuthResponse)
	return res, args.Error(1)
}

func (m *mockAuthService) GetUserAccount(ctx context.Context, userID string) (*models.UserAccountDto, error) {
	args := m.Called(ctx, userID)
	dto, _ := args.Get(0).(*models.UserAccountDto)
	return dto, args.Error(1)
}
