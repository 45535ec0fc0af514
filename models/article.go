package models

import (
	"strings"
	"unicode/utf8"
)

const (
	ArticleTitleMaxLength   = 255
	ArticleContentMaxLength = 10000
	HashtagMaxLength        = 255
)

// Article owns its comments: deleting an article deletes them in the same transaction.
type Article struct {
	ID              uint             `json:"id" gorm:"primarykey"`
	UserAccountID   string           `json:"user_account_id" gorm:"size:50;not null;index"`
	UserAccount     UserAccount      `json:"user_account" gorm:"foreignKey:UserAccountID;references:UserID"`
	Title           string           `json:"title" gorm:"size:255;not null;index"`
	Content         string           `json:"content" gorm:"size:10000;not null"`
	Hashtag         *string          `json:"hashtag" gorm:"size:255;index"`
	ArticleComments []ArticleComment `json:"article_comments,omitempty" gorm:"foreignKey:ArticleID"`
	AuditingFields
}

func NewArticle(account UserAccount, title, content string, hashtag *string) (*Article, error) {
	if strings.TrimSpace(account.UserID) == "" {
		return nil, ErrorValidation{Field: "user_account", Message: "is required"}
	}
	a := &Article{UserAccountID: account.UserID, UserAccount: account}
	if err := a.SetTitle(title); err != nil {
		return nil, err
	}
	if err := a.SetContent(content); err != nil {
		return nil, err
	}
	if err := a.SetHashtag(hashtag); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Article) SetTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrorValidation{Field: "title", Message: "must not be blank"}
	}
	if utf8.RuneCountInString(title) > ArticleTitleMaxLength {
		return ErrorValidation{Field: "title", Message: "is too long"}
	}
	a.Title = title
	return nil
}

func (a *Article) SetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrorValidation{Field: "content", Message: "must not be blank"}
	}
	if utf8.RuneCountInString(content) > ArticleContentMaxLength {
		return ErrorValidation{Field: "content", Message: "is too long"}
	}
	a.Content = content
	return nil
}

// SetHashtag accepts nil, which clears the hashtag.
func (a *Article) SetHashtag(hashtag *string) error {
	if hashtag != nil && utf8.RuneCountInString(*hashtag) > HashtagMaxLength {
		return ErrorValidation{Field: "hashtag", Message: "is too long"}
	}
	a.Hashtag = hashtag
	return nil
}

func (a *Article) IsPersisted() bool {
	return a.ID != 0
}

// Equal compares by id only, so two distinct unsaved articles are never equal.
func (a *Article) Equal(other *Article) bool {
	if a == nil || other == nil {
		return false
	}
	if a == other {
		return true
	}
	return a.IsPersisted() && a.ID == other.ID
}
