package services

import (
	"context"
	"errors"

	"project-board/models"
	"project-board/repositories"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ArticleCommentService interface {
	SearchArticleComments(ctx context.Context, articleID uint) ([]models.ArticleCommentDto, error)
	ListArticleComments(ctx context.Context, filter repositories.Filter, pageable models.Pageable) (models.Page[models.ArticleCommentDto], error)
	GetArticleComment(ctx context.Context, id uint) (models.ArticleCommentDto, error)
	GetArticleCommentCount(ctx context.Context) (int64, error)
	SaveArticleComment(ctx context.Context, dto models.ArticleCommentDto) (models.UpdateOutcome, error)
	UpdateArticleComment(ctx context.Context, id uint, content string) (models.UpdateOutcome, error)
	DeleteArticleComment(ctx context.Context, id uint) error
}

type articleCommentService struct {
	tx          repositories.Transactor
	articleRepo repositories.ArticleRepository
	commentRepo repositories.ArticleCommentRepository
	log         *zap.SugaredLogger
}

func NewArticleCommentService(tx repositories.Transactor, articleRepo repositories.ArticleRepository, commentRepo repositories.ArticleCommentRepository, log *zap.SugaredLogger) ArticleCommentService {
	return &articleCommentService{
		tx:          tx,
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		log:         log,
	}
}

// SearchArticleComments lists the comments of an article, newest first.
func (s *articleCommentService) SearchArticleComments(ctx context.Context, articleID uint) (dtos []models.ArticleCommentDto, err error) {
	ctx, span := startSpan(ctx, "ArticleCommentService.SearchArticleComments", attribute.Int64("article.id", int64(articleID)))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		comments, err := s.commentRepo.FindByArticleID(ctx, articleID)
		if err != nil {
			return err
		}
		dtos = make([]models.ArticleCommentDto, 0, len(comments))
		for _, c := range comments {
			dtos = append(dtos, models.ArticleCommentDtoFrom(c))
		}
		return nil
	})
	return dtos, err
}

func (s *articleCommentService) ListArticleComments(ctx context.Context, filter repositories.Filter, pageable models.Pageable) (page models.Page[models.ArticleCommentDto], err error) {
	ctx, span := startSpan(ctx, "ArticleCommentService.ListArticleComments")
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		comments, err := s.commentRepo.FindAllFiltered(ctx, filter, pageable)
		if err != nil {
			return err
		}
		page = models.MapPage(comments, models.ArticleCommentDtoFrom)
		return nil
	})
	return page, err
}

func (s *articleCommentService) GetArticleComment(ctx context.Context, id uint) (dto models.ArticleCommentDto, err error) {
	ctx, span := startSpan(ctx, "ArticleCommentService.GetArticleComment", attribute.Int64("article_comment.id", int64(id)))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		comment, err := s.commentRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if comment == nil {
			return models.ErrorNotFound{Resource: "article comment", ID: id}
		}
		dto = models.ArticleCommentDtoFrom(*comment)
		return nil
	})
	return dto, err
}

func (s *articleCommentService) GetArticleCommentCount(ctx context.Context) (count int64, err error) {
	ctx, span := startSpan(ctx, "ArticleCommentService.GetArticleCommentCount")
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		count, err = s.commentRepo.Count(ctx)
		return err
	})
	return count, err
}

// SaveArticleComment is skipped with a warning when the article does not exist.
func (s *articleCommentService) SaveArticleComment(ctx context.Context, dto models.ArticleCommentDto) (outcome models.UpdateOutcome, err error) {
	ctx, span := startSpan(ctx, "ArticleCommentService.SaveArticleComment", attribute.Int64("article.id", int64(dto.ArticleID)))
	defer func() { endSpan(span, err) }()

	outcome = models.UpdateApplied
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		article, err := s.articleRepo.GetReferenceByID(ctx, dto.ArticleID)
		var notFound models.ErrorNotFound
		if errors.As(err, &notFound) {
			s.log.Warnw("comment save skipped, article not found", "article_id", dto.ArticleID)
			outcome = models.UpdateSkippedNotFound
			return nil
		}
		if err != nil {
			return err
		}

		comment, err := models.NewArticleComment(article.ID, models.UserAccountReference(dto.UserAccount.UserID), dto.Content)
		if err != nil {
			return err
		}
		_, err = s.commentRepo.Save(ctx, comment)
		return err
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}

func (s *articleCommentService) UpdateArticleComment(ctx context.Context, id uint, content string) (outcome models.UpdateOutcome, err error) {
	ctx, span := startSpan(ctx, "ArticleCommentService.UpdateArticleComment", attribute.Int64("article_comment.id", int64(id)))
	defer func() { endSpan(span, err) }()

	outcome = models.UpdateApplied
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		comment, err := s.commentRepo.GetReferenceByID(ctx, id)
		var notFound models.ErrorNotFound
		if errors.As(err, &notFound) {
			s.log.Warnw("comment update skipped, comment not found", "article_comment_id", id)
			outcome = models.UpdateSkippedNotFound
			return nil
		}
		if err != nil {
			return err
		}
		if err := comment.SetContent(content); err != nil {
			return err
		}
		_, err = s.commentRepo.Save(ctx, comment)
		return err
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}

func (s *articleCommentService) DeleteArticleComment(ctx context.Context, id uint) (err error) {
	ctx, span := startSpan(ctx, "ArticleCommentService.DeleteArticleComment", attribute.Int64("article_comment.id", int64(id)))
	defer func() { endSpan(span, err) }()

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.commentRepo.DeleteByID(ctx, id)
	})
}
