package repositories

import (
	"context"
	"errors"
	"fmt"

	"project-board/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleCommentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.ArticleComment, error)
	GetReferenceByID(ctx context.Context, id uint) (*models.ArticleComment, error)
	FindByArticleID(ctx context.Context, articleID uint) ([]models.ArticleComment, error)
	FindAllFiltered(ctx context.Context, filter Filter, pageable models.Pageable) (models.Page[models.ArticleComment], error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, comment *models.ArticleComment) (*models.ArticleComment, error)
	DeleteByID(ctx context.Context, id uint) error
}

type articleCommentRepository struct {
	db *gorm.DB
}

func NewArticleCommentRepository(db *gorm.DB) ArticleCommentRepository {
	return &articleCommentRepository{db: db}
}

func (r *articleCommentRepository) FindByID(ctx context.Context, id uint) (*models.ArticleComment, error) {
	var comment models.ArticleComment
	err := conn(ctx, r.db).Preload("UserAccount").First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find comment %d: %w", id, err)
	}
	return &comment, nil
}

func (r *articleCommentRepository) GetReferenceByID(ctx context.Context, id uint) (*models.ArticleComment, error) {
	var comment models.ArticleComment
	err := conn(ctx, r.db).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrorNotFound{Resource: "article comment", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get comment reference %d: %w", id, err)
	}
	return &comment, nil
}

// FindByArticleID lists an article's comments newest first.
func (r *articleCommentRepository) FindByArticleID(ctx context.Context, articleID uint) ([]models.ArticleComment, error) {
	var comments []models.ArticleComment
	err := conn(ctx, r.db).
		Preload("UserAccount").
		Where("article_id = ?", articleID).
		Order("article_comments.created_at DESC").
		Order("article_comments.id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("find comments of article %d: %w", articleID, err)
	}
	return comments, nil
}

func (r *articleCommentRepository) FindAllFiltered(ctx context.Context, filter Filter, pageable models.Pageable) (models.Page[models.ArticleComment], error) {
	base := filter.apply(conn(ctx, r.db).Model(&models.ArticleComment{})).Session(&gorm.Session{})
	page, err := findPage[models.ArticleComment](base, pageable, articleCommentSortColumns, "UserAccount")
	if err != nil {
		return page, fmt.Errorf("page comments: %w", err)
	}
	return page, nil
}

func (r *articleCommentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.ArticleComment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}

func (r *articleCommentRepository) Save(ctx context.Context, comment *models.ArticleComment) (*models.ArticleComment, error) {
	db := conn(ctx, r.db).Omit(clause.Associations)
	var err error
	if comment.IsPersisted() {
		err = db.Save(comment).Error
	} else {
		err = db.Create(comment).Error
	}
	if err != nil {
		return nil, fmt.Errorf("save comment: %w", err)
	}
	return comment, nil
}

func (r *articleCommentRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := conn(ctx, r.db).Delete(&models.ArticleComment{}, id).Error; err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	return nil
}
