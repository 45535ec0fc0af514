package models

import "strings"

type UserAccount struct {
	UserID       string `json:"user_id" gorm:"primaryKey;size:50"`
	UserPassword string `json:"-" gorm:"size:255;not null"`
	Email        string `json:"email" gorm:"size:100;index"`
	Nickname     string `json:"nickname" gorm:"size:100;index"`
	Memo         string `json:"memo" gorm:"size:500"`
	AuditingFields
}

// NewUserAccount expects an already hashed password.
func NewUserAccount(userID, passwordHash, email, nickname, memo string) (*UserAccount, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrorValidation{Field: "user_id", Message: "must not be blank"}
	}
	if passwordHash == "" {
		return nil, ErrorValidation{Field: "user_password", Message: "must not be blank"}
	}
	return &UserAccount{
		UserID:       userID,
		UserPassword: passwordHash,
		Email:        email,
		Nickname:     nickname,
		Memo:         memo,
	}, nil
}

// UserAccountReference is a handle carrying only the key, for use as a foreign key target.
func UserAccountReference(userID string) UserAccount {
	return UserAccount{UserID: userID}
}

func (u *UserAccount) IsPersisted() bool {
	return !u.CreatedAt.IsZero()
}

func (u *UserAccount) Equal(other *UserAccount) bool {
	if u == nil || other == nil {
		return false
	}
	return u.UserID != "" && u.UserID == other.UserID
}
