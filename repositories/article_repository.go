package repositories

import (
	"context"
	"errors"
	"fmt"

	"project-board/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Article, error)
	FindWithCommentsByID(ctx context.Context, id uint) (*models.Article, error)
	GetReferenceByID(ctx context.Context, id uint) (*models.Article, error)
	FindAll(ctx context.Context, pageable models.Pageable) (models.Page[models.Article], error)
	FindAllFiltered(ctx context.Context, filter Filter, pageable models.Pageable) (models.Page[models.Article], error)
	FindByTitleContaining(ctx context.Context, title string, pageable models.Pageable) (models.Page[models.Article], error)
	FindByContentContaining(ctx context.Context, content string, pageable models.Pageable) (models.Page[models.Article], error)
	FindByUserAccountUserIDContaining(ctx context.Context, userID string, pageable models.Pageable) (models.Page[models.Article], error)
	FindByUserAccountNicknameContaining(ctx context.Context, nickname string, pageable models.Pageable) (models.Page[models.Article], error)
	FindByHashtag(ctx context.Context, hashtag string, pageable models.Pageable) (models.Page[models.Article], error)
	FindAllDistinctHashtags(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, article *models.Article) (*models.Article, error)
	DeleteByID(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) base(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).Model(&models.Article{})
}

func (r *articleRepository) FindByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := conn(ctx, r.db).Preload("UserAccount").First(&article, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article %d: %w", id, err)
	}
	return &article, nil
}

func (r *articleRepository) FindWithCommentsByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := conn(ctx, r.db).
		Preload("UserAccount").
		Preload("ArticleComments", func(db *gorm.DB) *gorm.DB {
			return db.Order("article_comments.created_at DESC").Order("article_comments.id DESC")
		}).
		Preload("ArticleComments.UserAccount").
		First(&article, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article %d with comments: %w", id, err)
	}
	return &article, nil
}

// GetReferenceByID loads the bare row for mutation. A missing id is reported
// as models.ErrorNotFound.
func (r *articleRepository) GetReferenceByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := conn(ctx, r.db).First(&article, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrorNotFound{Resource: "article", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get article reference %d: %w", id, err)
	}
	return &article, nil
}

func (r *articleRepository) page(q *gorm.DB, pageable models.Pageable) (models.Page[models.Article], error) {
	page, err := findPage[models.Article](q.Session(&gorm.Session{}), pageable, articleSortColumns, "UserAccount")
	if err != nil {
		return page, fmt.Errorf("page articles: %w", err)
	}
	return page, nil
}

func (r *articleRepository) FindAll(ctx context.Context, pageable models.Pageable) (models.Page[models.Article], error) {
	return r.page(r.base(ctx), pageable)
}

func (r *articleRepository) FindAllFiltered(ctx context.Context, filter Filter, pageable models.Pageable) (models.Page[models.Article], error) {
	return r.page(filter.apply(r.base(ctx)), pageable)
}

func (r *articleRepository) FindByTitleContaining(ctx context.Context, title string, pageable models.Pageable) (models.Page[models.Article], error) {
	return r.page(r.base(ctx).Where("articles.title ILIKE ?", containsPattern(title)), pageable)
}

func (r *articleRepository) FindByContentContaining(ctx context.Context, content string, pageable models.Pageable) (models.Page[models.Article], error) {
	return r.page(r.base(ctx).Where("articles.content ILIKE ?", containsPattern(content)), pageable)
}

func (r *articleRepository) FindByUserAccountUserIDContaining(ctx context.Context, userID string, pageable models.Pageable) (models.Page[models.Article], error) {
	return r.page(r.base(ctx).Where("articles.user_account_id ILIKE ?", containsPattern(userID)), pageable)
}

func (r *articleRepository) FindByUserAccountNicknameContaining(ctx context.Context, nickname string, pageable models.Pageable) (models.Page[models.Article], error) {
	accounts := conn(ctx, r.db).Model(&models.UserAccount{}).
		Select("user_id").
		Where("nickname ILIKE ?", containsPattern(nickname))
	return r.page(r.base(ctx).Where("articles.user_account_id IN (?)", accounts), pageable)
}

// FindByHashtag matches the whole stored hashtag, "#" included, ignoring case.
func (r *articleRepository) FindByHashtag(ctx context.Context, hashtag string, pageable models.Pageable) (models.Page[models.Article], error) {
	return r.page(r.base(ctx).Where("LOWER(articles.hashtag) = LOWER(?)", hashtag), pageable)
}

func (r *articleRepository) FindAllDistinctHashtags(ctx context.Context) ([]string, error) {
	var hashtags []string
	err := r.base(ctx).
		Distinct("hashtag").
		Where("hashtag IS NOT NULL AND hashtag <> ''").
		Order("hashtag").
		Pluck("hashtag", &hashtags).Error
	if err != nil {
		return nil, fmt.Errorf("distinct hashtags: %w", err)
	}
	return hashtags, nil
}

func (r *articleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.base(ctx).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// Save inserts unsaved articles and updates persisted ones. Associations are
// never written through the article; the account must already exist.
func (r *articleRepository) Save(ctx context.Context, article *models.Article) (*models.Article, error) {
	db := conn(ctx, r.db).Omit(clause.Associations)
	var err error
	if article.IsPersisted() {
		err = db.Save(article).Error
	} else {
		err = db.Create(article).Error
	}
	if err != nil {
		return nil, fmt.Errorf("save article: %w", err)
	}
	return article, nil
}

// DeleteByID removes the article's comments and then the article itself. It
// is a no-op for unknown ids.
func (r *articleRepository) DeleteByID(ctx context.Context, id uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleComment{}).Error; err != nil {
			return fmt.Errorf("delete comments of article %d: %w", id, err)
		}
		if err := tx.Delete(&models.Article{}, id).Error; err != nil {
			return fmt.Errorf("delete article %d: %w", id, err)
		}
		return nil
	})
}
