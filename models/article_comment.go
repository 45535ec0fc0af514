package models

import (
	"strings"
	"unicode/utf8"
)

const CommentContentMaxLength = 500

type ArticleComment struct {
	ID            uint        `json:"id" gorm:"primarykey"`
	ArticleID     uint        `json:"article_id" gorm:"not null;index"`
	UserAccountID string      `json:"user_account_id" gorm:"size:50;not null;index"`
	UserAccount   UserAccount `json:"user_account" gorm:"foreignKey:UserAccountID;references:UserID"`
	Content       string      `json:"content" gorm:"size:500;not null;index"`
	AuditingFields
}

func NewArticleComment(articleID uint, account UserAccount, content string) (*ArticleComment, error) {
	if articleID == 0 {
		return nil, ErrorValidation{Field: "article", Message: "is required"}
	}
	if strings.TrimSpace(account.UserID) == "" {
		return nil, ErrorValidation{Field: "user_account", Message: "is required"}
	}
	c := &ArticleComment{ArticleID: articleID, UserAccountID: account.UserID, UserAccount: account}
	if err := c.SetContent(content); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ArticleComment) SetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrorValidation{Field: "content", Message: "must not be blank"}
	}
	if utf8.RuneCountInString(content) > CommentContentMaxLength {
		return ErrorValidation{Field: "content", Message: "is too long"}
	}
	c.Content = content
	return nil
}

func (c *ArticleComment) IsPersisted() bool {
	return c.ID != 0
}

func (c *ArticleComment) Equal(other *ArticleComment) bool {
	if c == nil || other == nil {
		return false
	}
	if c == other {
		return true
	}
	return c.IsPersisted() && c.ID == other.ID
}
