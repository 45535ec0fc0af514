package models

import (
	"sort"
	"time"
)

type UserAccountDto struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Nickname   string    `json:"nickname"`
	Memo       string    `json:"memo"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by"`
	ModifiedAt time.Time `json:"modified_at"`
	ModifiedBy string    `json:"modified_by"`
}

func UserAccountDtoFrom(u UserAccount) UserAccountDto {
	return UserAccountDto{
		UserID:     u.UserID,
		Email:      u.Email,
		Nickname:   u.Nickname,
		Memo:       u.Memo,
		CreatedAt:  u.CreatedAt,
		CreatedBy:  u.CreatedBy,
		ModifiedAt: u.ModifiedAt,
		ModifiedBy: u.ModifiedBy,
	}
}

// ArticleDto is the read-only summary of an article.
type ArticleDto struct {
	ID          uint           `json:"id"`
	UserAccount UserAccountDto `json:"user_account"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Hashtag     *string        `json:"hashtag"`
	CreatedAt   time.Time      `json:"created_at"`
	CreatedBy   string         `json:"created_by"`
	ModifiedAt  time.Time      `json:"modified_at"`
	ModifiedBy  string         `json:"modified_by"`
}

func ArticleDtoFrom(a Article) ArticleDto {
	return ArticleDto{
		ID:          a.ID,
		UserAccount: UserAccountDtoFrom(a.UserAccount),
		Title:       a.Title,
		Content:     a.Content,
		Hashtag:     copyString(a.Hashtag),
		CreatedAt:   a.CreatedAt,
		CreatedBy:   a.CreatedBy,
		ModifiedAt:  a.ModifiedAt,
		ModifiedBy:  a.ModifiedBy,
	}
}

// ToEntity builds a new, unsaved article owned by account.
func (d ArticleDto) ToEntity(account UserAccount) (*Article, error) {
	return NewArticle(account, d.Title, d.Content, d.Hashtag)
}

type ArticleCommentDto struct {
	ID          uint           `json:"id"`
	ArticleID   uint           `json:"article_id"`
	UserAccount UserAccountDto `json:"user_account"`
	Content     string         `json:"content"`
	CreatedAt   time.Time      `json:"created_at"`
	CreatedBy   string         `json:"created_by"`
	ModifiedAt  time.Time      `json:"modified_at"`
	ModifiedBy  string         `json:"modified_by"`
}

func ArticleCommentDtoFrom(c ArticleComment) ArticleCommentDto {
	return ArticleCommentDto{
		ID:          c.ID,
		ArticleID:   c.ArticleID,
		UserAccount: UserAccountDtoFrom(c.UserAccount),
		Content:     c.Content,
		CreatedAt:   c.CreatedAt,
		CreatedBy:   c.CreatedBy,
		ModifiedAt:  c.ModifiedAt,
		ModifiedBy:  c.ModifiedBy,
	}
}

type ArticleWithCommentsDto struct {
	ArticleDto
	ArticleComments []ArticleCommentDto `json:"article_comments"`
}

// ArticleWithCommentsDtoFrom lists comments newest first.
func ArticleWithCommentsDtoFrom(a Article) ArticleWithCommentsDto {
	comments := make([]ArticleCommentDto, 0, len(a.ArticleComments))
	for _, c := range a.ArticleComments {
		comments = append(comments, ArticleCommentDtoFrom(c))
	}
	sort.SliceStable(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID > comments[j].ID
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return ArticleWithCommentsDto{
		ArticleDto:      ArticleDtoFrom(a),
		ArticleComments: comments,
	}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
