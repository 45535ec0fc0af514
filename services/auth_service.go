package services

import (
	"context"
	"errors"
	"time"

	"project-board/models"
	"project-board/repositories"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetUserAccount(ctx context.Context, userID string) (*models.UserAccountDto, error)
}

type authService struct {
	tx         repositories.Transactor
	userRepo   repositories.UserAccountRepository
	secret     []byte
	expiration time.Duration
	log        *zap.SugaredLogger
}

func NewAuthService(tx repositories.Transactor, userRepo repositories.UserAccountRepository, secret []byte, expiration time.Duration, log *zap.SugaredLogger) AuthService {
	return &authService{
		tx:         tx,
		userRepo:   userRepo,
		secret:     secret,
		expiration: expiration,
		log:        log,
	}
}

var errInvalidCredentials = models.ErrorUnauthorized{Message: "invalid credentials"}

func (s *authService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account, err := models.NewUserAccount(req.UserID, string(hashedPassword), req.Email, req.Nickname, req.Memo)
	if err != nil {
		return nil, err
	}

	// the new account audits itself
	ctx = models.WithAuditor(ctx, account.UserID)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.userRepo.FindByID(ctx, account.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			return models.ErrorConflict{Message: "user account already exists"}
		}
		if account.Email != "" {
			owner, err := s.userRepo.FindByEmail(ctx, account.Email)
			if err != nil {
				return err
			}
			if owner != nil {
				return models.ErrorConflict{Message: "email already in use"}
			}
		}
		return s.userRepo.Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("user account signed up", "user_id", account.UserID)
	return s.respond(account)
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var account *models.UserAccount
	err := s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		var err error
		account, err = s.userRepo.FindByID(ctx, req.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.UserPassword), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	return s.respond(account)
}

func (s *authService) GetUserAccount(ctx context.Context, userID string) (*models.UserAccountDto, error) {
	var dto models.UserAccountDto
	err := s.tx.WithinReadOnlyTransaction(ctx, func(ctx context.Context) error {
		account, err := s.userRepo.GetReferenceByID(ctx, userID)
		if err != nil {
			return err
		}
		dto = models.UserAccountDtoFrom(*account)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

func (s *authService) respond(account *models.UserAccount) (*models.AuthResponse, error) {
	token, err := s.generateToken(account)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		Token:       token,
		UserAccount: models.UserAccountDtoFrom(*account),
	}, nil
}

func (s *authService) generateToken(account *models.UserAccount) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  account.UserID,
		"nickname": account.Nickname,
		"exp":      now.Add(s.expiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
