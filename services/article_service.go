package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"project-board/models"
	"project-board/repositories"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ArticleService interface {
	SearchArticles(ctx context.Context, searchType models.SearchType, keyword string, pageable models.Pageable) (models.Page[models.ArticleDto], error)
	ListArticles(ctx context.Context, filter repositories.Filter, pageable models.Pageable) (models.Page[models.ArticleDto], error)
	GetArticle(ctx context.Context, id uint) (models.ArticleWithCommentsDto, error)
	GetArticleSummary(ctx context.Context, id uint) (models.ArticleDto, error)
	SaveArticle(ctx context.Context, dto models.ArticleDto) (models.ArticleDto, error)
	UpdateArticle(ctx context.Context, id uint, dto models.ArticleUpdateDto) (models.UpdateOutcome, error)
	DeleteArticle(ctx context.Context, id uint) error
	GetArticleCount(ctx context.Context) (int64, error)
	SearchArticlesViaHashtag(ctx context.Context, hashtag string, pageable models.Pageable) (models.Page[models.ArticleDto], error)
	GetHashtags(ctx context.Context) ([]string, error)
}

type articleService struct {
	tx          repositories.Transactor
	articleRepo repositories.ArticleRepository
	log         *zap.SugaredLogger
}

func NewArticleService(tx repositories.Transactor, articleRepo repositories.ArticleRepository, log *zap.SugaredLogger) ArticleService {
	return &articleService{
		tx:          tx,
		articleRepo: articleRepo,
		log:         log,
	}
}

// SearchArticles returns every article for a blank keyword. HASHTAG matches
// "#"+keyword exactly, ignoring case; the other types are substring searches.
func (s *articleService) SearchArticles(ctx context.Context, searchType models.SearchType, keyword string, pageable models.Pageable) (page models.Page[models.ArticleDto], err error) {
	ctx, span := startSpan(ctx, "ArticleService.SearchArticles",
		attribute.String("search.type", string(searchType)),
		attribute.String("search.keyword", keyword),
	)
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		var articles models.Page[models.Article]
		var err error
		if strings.TrimSpace(keyword) == "" {
			articles, err = s.articleRepo.FindAll(ctx, pageable)
		} else {
			articles, err = s.search(ctx, searchType, keyword, pageable)
		}
		if err != nil {
			return err
		}
		page = models.MapPage(articles, models.ArticleDtoFrom)
		return nil
	})
	return page, err
}

func (s *articleService) search(ctx context.Context, searchType models.SearchType, keyword string, pageable models.Pageable) (models.Page[models.Article], error) {
	switch searchType {
	case models.SearchTypeTitle:
		return s.articleRepo.FindByTitleContaining(ctx, keyword, pageable)
	case models.SearchTypeContent:
		return s.articleRepo.FindByContentContaining(ctx, keyword, pageable)
	case models.SearchTypeID:
		return s.articleRepo.FindByUserAccountUserIDContaining(ctx, keyword, pageable)
	case models.SearchTypeNickname:
		return s.articleRepo.FindByUserAccountNicknameContaining(ctx, keyword, pageable)
	case models.SearchTypeHashtag:
		return s.articleRepo.FindByHashtag(ctx, "#"+keyword, pageable)
	}
	panic(fmt.Sprintf("unhandled search type %q", searchType))
}

func (s *articleService) ListArticles(ctx context.Context, filter repositories.Filter, pageable models.Pageable) (page models.Page[models.ArticleDto], err error) {
	ctx, span := startSpan(ctx, "ArticleService.ListArticles")
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		articles, err := s.articleRepo.FindAllFiltered(ctx, filter, pageable)
		if err != nil {
			return err
		}
		page = models.MapPage(articles, models.ArticleDtoFrom)
		return nil
	})
	return page, err
}

func (s *articleService) GetArticle(ctx context.Context, id uint) (dto models.ArticleWithCommentsDto, err error) {
	ctx, span := startSpan(ctx, "ArticleService.GetArticle", attribute.Int64("article.id", int64(id)))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		article, err := s.articleRepo.FindWithCommentsByID(ctx, id)
		if err != nil {
			return err
		}
		if article == nil {
			return models.ErrorNotFound{Resource: "article", ID: id}
		}
		dto = models.ArticleWithCommentsDtoFrom(*article)
		return nil
	})
	return dto, err
}

func (s *articleService) GetArticleSummary(ctx context.Context, id uint) (dto models.ArticleDto, err error) {
	ctx, span := startSpan(ctx, "ArticleService.GetArticleSummary", attribute.Int64("article.id", int64(id)))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		article, err := s.articleRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if article == nil {
			return models.ErrorNotFound{Resource: "article", ID: id}
		}
		dto = models.ArticleDtoFrom(*article)
		return nil
	})
	return dto, err
}

// SaveArticle stores a new article owned by dto.UserAccount.UserID. The
// account is not loaded; a missing account fails on the foreign key.
func (s *articleService) SaveArticle(ctx context.Context, dto models.ArticleDto) (saved models.ArticleDto, err error) {
	ctx, span := startSpan(ctx, "ArticleService.SaveArticle", attribute.String("user_account.id", dto.UserAccount.UserID))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		article, err := dto.ToEntity(models.UserAccountReference(dto.UserAccount.UserID))
		if err != nil {
			return err
		}
		article, err = s.articleRepo.Save(ctx, article)
		if err != nil {
			return err
		}
		saved = models.ArticleDtoFrom(*article)
		saved.UserAccount = dto.UserAccount
		return nil
	})
	return saved, err
}

// UpdateArticle applies non-nil title and content. The hashtag is always
// applied, so a nil hashtag clears it. An unknown id is logged and skipped.
func (s *articleService) UpdateArticle(ctx context.Context, id uint, dto models.ArticleUpdateDto) (outcome models.UpdateOutcome, err error) {
	ctx, span := startSpan(ctx, "ArticleService.UpdateArticle", attribute.Int64("article.id", int64(id)))
	defer func() { endSpan(span, err) }()

	outcome = models.UpdateApplied
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		article, err := s.articleRepo.GetReferenceByID(ctx, id)
		var notFound models.ErrorNotFound
		if errors.As(err, &notFound) {
			s.log.Warnw("article update skipped, article not found", "article_id", id, "dto", dto)
			outcome = models.UpdateSkippedNotFound
			return nil
		}
		if err != nil {
			return err
		}

		if dto.Title != nil {
			if err := article.SetTitle(*dto.Title); err != nil {
				return err
			}
		}
		if dto.Content != nil {
			if err := article.SetContent(*dto.Content); err != nil {
				return err
			}
		}
		if err := article.SetHashtag(dto.Hashtag); err != nil {
			return err
		}

		_, err = s.articleRepo.Save(ctx, article)
		return err
	})
	if err != nil {
		return "", err
	}
	span.SetAttributes(attribute.String("update.outcome", string(outcome)))
	return outcome, nil
}

// DeleteArticle also removes the article's comments. Unknown ids are a no-op.
func (s *articleService) DeleteArticle(ctx context.Context, id uint) (err error) {
	ctx, span := startSpan(ctx, "ArticleService.DeleteArticle", attribute.Int64("article.id", int64(id)))
	defer func() { endSpan(span, err) }()

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.articleRepo.DeleteByID(ctx, id)
	})
}

func (s *articleService) GetArticleCount(ctx context.Context) (count int64, err error) {
	ctx, span := startSpan(ctx, "ArticleService.GetArticleCount")
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		count, err = s.articleRepo.Count(ctx)
		return err
	})
	return count, err
}

// SearchArticlesViaHashtag matches the stored hashtag exactly, "#" included.
func (s *articleService) SearchArticlesViaHashtag(ctx context.Context, hashtag string, pageable models.Pageable) (page models.Page[models.ArticleDto], err error) {
	if strings.TrimSpace(hashtag) == "" {
		return models.EmptyPage[models.ArticleDto](pageable), nil
	}

	ctx, span := startSpan(ctx, "ArticleService.SearchArticlesViaHashtag", attribute.String("article.hashtag", hashtag))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		articles, err := s.articleRepo.FindByHashtag(ctx, hashtag, pageable)
		if err != nil {
			return err
		}
		page = models.MapPage(articles, models.ArticleDtoFrom)
		return nil
	})
	return page, err
}

func (s *articleService) GetHashtags(ctx context.Context) (hashtags []string, err error) {
	ctx, span := startSpan(ctx, "ArticleService.GetHashtags")
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		hashtags, err = s.articleRepo.FindAllDistinctHashtags(ctx)
		return err
	})
	return hashtags, err
}
