package repositories

import (
	"context"
	"errors"
	"fmt"

	"project-board/models"

	"gorm.io/gorm"
)

type UserAccountRepository interface {
	FindByID(ctx context.Context, userID string) (*models.UserAccount, error)
	FindByEmail(ctx context.Context, email string) (*models.UserAccount, error)
	GetReferenceByID(ctx context.Context, userID string) (*models.UserAccount, error)
	Create(ctx context.Context, account *models.UserAccount) error
}

type userAccountRepository struct {
	db *gorm.DB
}

func NewUserAccountRepository(db *gorm.DB) UserAccountRepository {
	return &userAccountRepository{db: db}
}

func (r *userAccountRepository) FindByID(ctx context.Context, userID string) (*models.UserAccount, error) {
	var account models.UserAccount
	err := conn(ctx, r.db).Where("user_id = ?", userID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user account %q: %w", userID, err)
	}
	return &account, nil
}

// FindByEmail matches the address ignoring case.
func (r *userAccountRepository) FindByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	var account models.UserAccount
	err := conn(ctx, r.db).Where("LOWER(email) = LOWER(?)", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user account by email: %w", err)
	}
	return &account, nil
}

func (r *userAccountRepository) GetReferenceByID(ctx context.Context, userID string) (*models.UserAccount, error) {
	account, err := r.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, models.ErrorNotFound{Resource: "user account", ID: userID}
	}
	return account, nil
}

// Create inserts account and fails on a duplicate user id.
func (r *userAccountRepository) Create(ctx context.Context, account *models.UserAccount) error {
	if err := conn(ctx, r.db).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrorConflict{Message: "user account already exists"}
		}
		return fmt.Errorf("create user account: %w", err)
	}
	return nil
}
