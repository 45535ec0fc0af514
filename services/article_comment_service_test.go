package services

import (
	"context"
	"testing"
	"time"

	"project-board/models"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type ArticleCommentServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	tx          *passthroughTransactor
	articleRepo *mockArticleRepository
	commentRepo *mockArticleCommentRepository
	logs        *observer.ObservedLogs
	service     ArticleCommentService
}

func (s *ArticleCommentServiceTestSuite) SetupTest() {
	core, logs := observer.New(zapcore.InfoLevel)
	s.ctx = context.Background()
	s.tx = &passthroughTransactor{}
	s.articleRepo = new(mockArticleRepository)
	s.commentRepo = new(mockArticleCommentRepository)
	s.logs = logs
	s.service = NewArticleCommentService(s.tx, s.articleRepo, s.commentRepo, zap.New(core).Sugar())
}

func (s *ArticleCommentServiceTestSuite) TearDownTest() {
	s.articleRepo.AssertExpectations(s.T())
	s.commentRepo.AssertExpectations(s.T())
}

func (s *ArticleCommentServiceTestSuite) TestSearchArticleComments() {
	now := time.Now()
	s.commentRepo.On("FindByArticleID", mock.Anything, uint(1)).Return([]models.ArticleComment{
		{ID: 2, ArticleID: 1, Content: "second", AuditingFields: models.AuditingFields{CreatedAt: now}},
		{ID: 1, ArticleID: 1, Content: "first", AuditingFields: models.AuditingFields{CreatedAt: now.Add(-time.Minute)}},
	}, nil)

	comments, err := s.service.SearchArticleComments(s.ctx, 1)

	s.Require().NoError(err)
	s.Require().Len(comments, 2)
	s.Equal("second", comments[0].Content)
	s.Equal([]string{"ro"}, s.tx.kinds)
}

func (s *ArticleCommentServiceTestSuite) TestSearchArticleComments_NoneIsEmptySlice() {
	s.commentRepo.On("FindByArticleID", mock.Anything, uint(7)).Return(nil, nil)

	comments, err := s.service.SearchArticleComments(s.ctx, 7)

	s.Require().NoError(err)
	s.NotNil(comments)
	s.Empty(comments)
}

func (s *ArticleCommentServiceTestSuite) TestGetArticleComment() {
	s.commentRepo.On("FindByID", mock.Anything, uint(3)).Return(&models.ArticleComment{
		ID:          3,
		ArticleID:   1,
		Content:     "nice",
		UserAccount: models.UserAccount{UserID: "uno", Nickname: "Uno"},
	}, nil).Once()
	s.commentRepo.On("FindByID", mock.Anything, uint(4)).Return(nil, nil).Once()

	dto, err := s.service.GetArticleComment(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal("nice", dto.Content)
	s.Equal("Uno", dto.UserAccount.Nickname)

	_, err = s.service.GetArticleComment(s.ctx, 4)
	var notFound models.ErrorNotFound
	s.ErrorAs(err, &notFound)
}

func (s *ArticleCommentServiceTestSuite) TestGetArticleCommentCount() {
	s.commentRepo.On("Count", mock.Anything).Return(int64(12), nil)

	count, err := s.service.GetArticleCommentCount(s.ctx)

	s.Require().NoError(err)
	s.Equal(int64(12), count)
	s.Equal([]string{"ro"}, s.tx.kinds)
}

func (s *ArticleCommentServiceTestSuite) TestSaveArticleComment() {
	s.articleRepo.On("GetReferenceByID", mock.Anything, uint(1)).Return(createArticle(1), nil)
	s.commentRepo.On("Save", mock.Anything, mock.MatchedBy(func(c *models.ArticleComment) bool {
		return c.ArticleID == 1 && c.UserAccountID == "uno" && c.Content == "nice"
	})).Return(&models.ArticleComment{ID: 3}, nil)

	outcome, err := s.service.SaveArticleComment(s.ctx, models.ArticleCommentDto{
		ArticleID:   1,
		UserAccount: models.UserAccountDto{UserID: "uno"},
		Content:     "nice",
	})

	s.Require().NoError(err)
	s.Equal(models.UpdateApplied, outcome)
}

func (s *ArticleCommentServiceTestSuite) TestSaveArticleComment_MissingArticleIsSkipped() {
	s.articleRepo.On("GetReferenceByID", mock.Anything, uint(9)).
		Return(nil, models.ErrorNotFound{Resource: "article", ID: uint(9)})

	outcome, err := s.service.SaveArticleComment(s.ctx, models.ArticleCommentDto{
		ArticleID:   9,
		UserAccount: models.UserAccountDto{UserID: "uno"},
		Content:     "nice",
	})

	s.NoError(err)
	s.Equal(models.UpdateSkippedNotFound, outcome)
	s.Equal(1, s.logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func (s *ArticleCommentServiceTestSuite) TestUpdateArticleComment() {
	comment := &models.ArticleComment{ID: 4, ArticleID: 1, UserAccountID: "uno", Content: "old"}
	s.commentRepo.On("GetReferenceByID", mock.Anything, uint(4)).Return(comment, nil)
	s.commentRepo.On("Save", mock.Anything, comment).Return(comment, nil)

	outcome, err := s.service.UpdateArticleComment(s.ctx, 4, "new")

	s.Require().NoError(err)
	s.Equal(models.UpdateApplied, outcome)
	s.Equal("new", comment.Content)
}

func (s *ArticleCommentServiceTestSuite) TestUpdateArticleComment_Missing() {
	s.commentRepo.On("GetReferenceByID", mock.Anything, uint(4)).
		Return(nil, models.ErrorNotFound{Resource: "article comment", ID: uint(4)})

	outcome, err := s.service.UpdateArticleComment(s.ctx, 4, "new")

	s.NoError(err)
	s.Equal(models.UpdateSkippedNotFound, outcome)
}

func (s *ArticleCommentServiceTestSuite) TestDeleteArticleComment() {
	s.commentRepo.On("DeleteByID", mock.Anything, uint(4)).Return(nil)

	s.NoError(s.service.DeleteArticleComment(s.ctx, 4))
	s.Equal([]string{"rw"}, s.tx.kinds)
}

func TestArticleCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleCommentServiceTestSuite))
}
