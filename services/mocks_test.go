package services

import (
	"context"

	"project-board/models"
	"project-board/repositories"

	"github.com/stretchr/testify/mock"
)

// passthroughTransactor runs fn inline and records the kind of each unit of work.
type passthroughTransactor struct {
	kinds []string
}

func (t *passthroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.kinds = append(t.kinds, "rw")
	return fn(ctx)
}

func (t *passthroughTransactor) WithinReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.kinds = append(t.kinds, "ro")
	return fn(ctx)
}

type mockArticleRepository struct {
	mock.Mock
}

func (m *mockArticleRepository) page(args mock.Arguments) (models.Page[models.Article], error) {
	return args.Get(0).(models.Page[models.Article]), args.Error(1)
}

func (m *mockArticleRepository) FindByID(ctx context.Context, id uint) (*models.Article, error) {
	args := m.Called(ctx, id)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *mockArticleRepository) FindWithCommentsByID(ctx context.Context, id uint) (*models.Article, error) {
	args := m.Called(ctx, id)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *mockArticleRepository) GetReferenceByID(ctx context.Context, id uint) (*models.Article, error) {
	args := m.Called(ctx, id)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *mockArticleRepository) FindAll(ctx context.Context, pageable models.Pageable) (models.Page[models.Article], error) {
	return m.page(m.Called(ctx, pageable))
}

func (m *mockArticleRepository) FindAllFiltered(ctx context.Context, filter repositories.Filter, pageable models.Pageable) (models.Page[models.Article], error) {
	return m.page(m.Called(ctx, filter, pageable))
}

func (m *mockArticleRepository) FindByTitleContaining(ctx context.Context, title string, pageable models.Pageable) (models.Page[models.Article], error) {
	return m.page(m.Called(ctx, title, pageable))
}

func (m *mockArticleRepository) FindByContentContaining(ctx context.Context, content string, pageable models.Pageable) (models.Page[models.Article], error) {
	return m.page(m.Called(ctx, content, pageable))
}

func (m *mockArticleRepository) FindByUserAccountUserIDContaining(ctx context.Context, userID string, pageable models.Pageable) (models.Page[models.Article], error) {
	return m.page(m.Called(ctx, userID, pageable))
}

func (m *mockArticleRepository) FindByUserAccountNicknameContaining(ctx context.Context, nickname string, pageable models.Pageable) (models.Page[models.Article], error) {
	return m.page(m.Called(ctx, nickname, pageable))
}

func (m *mockArticleRepository) FindByHashtag(ctx context.Context, hashtag string, pageable models.Pageable) (models.Page[models.Article], error) {
	return m.page(m.Called(ctx, hashtag, pageable))
}

func (m *mockArticleRepository) FindAllDistinctHashtags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	hashtags, _ := args.Get(0).([]string)
	return hashtags, args.Error(1)
}

func (m *mockArticleRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockArticleRepository) Save(ctx context.Context, article *models.Article) (*models.Article, error) {
	args := m.Called(ctx, article)
	if fn, ok := args.Get(0).(func(context.Context, *models.Article) *models.Article); ok {
		return fn(ctx, article), args.Error(1)
	}
	saved, _ := args.Get(0).(*models.Article)
	return saved, args.Error(1)
}

func (m *mockArticleRepository) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockArticleCommentRepository struct {
	mock.Mock
}

func (m *mockArticleCommentRepository) FindByID(ctx context.Context, id uint) (*models.ArticleComment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*models.ArticleComment)
	return comment, args.Error(1)
}

func (m *mockArticleCommentRepository) GetReferenceByID(ctx context.Context, id uint) (*models.ArticleComment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*models.ArticleComment)
	return comment, args.Error(1)
}

func (m *mockArticleCommentRepository) FindByArticleID(ctx context.Context, articleID uint) ([]models.ArticleComment, error) {
	args := m.Called(ctx, articleID)
	comments, _ := args.Get(0).([]models.ArticleComment)
	return comments, args.Error(1)
}

func (m *mockArticleCommentRepository) FindAllFiltered(ctx context.Context, filter repositories.Filter, pageable models.Pageable) (models.Page[models.ArticleComment], error) {
	args := m.Called(ctx, filter, pageable)
	return args.Get(0).(models.Page[models.ArticleComment]), args.Error(1)
}

func (m *mockArticleCommentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockArticleCommentRepository) Save(ctx context.Context, comment *models.ArticleComment) (*models.ArticleComment, error) {
	args := m.Called(ctx, comment)
	saved, _ := args.Get(0).(*models.ArticleComment)
	return saved, args.Error(1)
}

func (m *mockArticleCommentRepository) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserAccountRepository struct {
	mock.Mock
}

func (m *mockUserAccountRepository) FindByID(ctx context.Context, userID string) (*models.UserAccount, error) {
	args := m.Called(ctx, userID)
	account, _ := args.Get(0).(*models.UserAccount)
	return account, args.Error(1)
}

func (m *mockUserAccountRepository) FindByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	args := m.Called(ctx, email)
	account, _ := args.Get(0).(*models.UserAccount)
	return account, args.Error(1)
}

func (m *mockUserAccountRepository) GetReferenceByID(ctx context.Context, userID string) (*models.UserAccount, error) {
	args := m.Called(ctx, userID)
	account, _ := args.Get(0).(*models.UserAccount)
	return account, args.Error(1)
}

func (m *mockUserAccountRepository) Create(ctx context.Context, account *models.UserAccount) error {
	return m.Called(ctx, account).Error(0)
}
