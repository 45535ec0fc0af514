package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const systemAuditor = "system"

type auditorKey struct{}

// WithAuditor stores the user id that created_by/modified_by are stamped with.
func WithAuditor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, auditorKey{}, userID)
}

// AuditorFrom returns the auditor stored in ctx, or "system".
func AuditorFrom(ctx context.Context) string {
	if ctx == nil {
		return systemAuditor
	}
	if userID, ok := ctx.Value(auditorKey{}).(string); ok && userID != "" {
		return userID
	}
	return systemAuditor
}

// AuditingFields is embedded by every entity. created_* never change after insert.
type AuditingFields struct {
	CreatedAt  time.Time `json:"created_at" gorm:"not null;index;autoCreateTime;<-:create"`
	CreatedBy  string    `json:"created_by" gorm:"size:100;not null;index;<-:create"`
	ModifiedAt time.Time `json:"modified_at" gorm:"not null;autoUpdateTime"`
	ModifiedBy string    `json:"modified_by" gorm:"size:100;not null"`
}

func (a *AuditingFields) BeforeCreate(tx *gorm.DB) error {
	auditor := AuditorFrom(tx.Statement.Context)
	if a.CreatedBy == "" {
		a.CreatedBy = auditor
	}
	if a.ModifiedBy == "" {
		a.ModifiedBy = auditor
	}
	return nil
}

func (a *AuditingFields) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("ModifiedBy", AuditorFrom(tx.Statement.Context))
	return nil
}
