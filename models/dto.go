package models

type SignUpRequest struct {
	UserID   string `json:"user_id" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"omitempty,email,max=100"`
	Nickname string `json:"nickname" validate:"max=100"`
	Memo     string `json:"memo" validate:"max=500"`
}

type LoginRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token       string         `json:"token"`
	UserAccount UserAccountDto `json:"user_account"`
}

type ArticleRequest struct {
	Title   string  `json:"title" validate:"required,max=255"`
	Content string  `json:"content" validate:"required,max=10000"`
	Hashtag *string `json:"hashtag" validate:"omitempty,max=255"`
}

// ArticleUpdateRequest leaves title/content unchanged when absent; an absent hashtag clears it.
type ArticleUpdateRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content" validate:"omitempty,min=1,max=10000"`
	Hashtag *string `json:"hashtag" validate:"omitempty,max=255"`
}

type ArticleCommentRequest struct {
	ArticleID uint   `json:"article_id" validate:"required"`
	Content   string `json:"content" validate:"required,max=500"`
}

type ArticleCommentUpdateRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

// ArticleUpdateDto is the service-side partial update.
type ArticleUpdateDto struct {
	Title   *string
	Content *string
	Hashtag *string
}

// UpdateOutcome reports whether a mutation was applied or skipped because its target was missing.
type UpdateOutcome string

const (
	UpdateApplied         UpdateOutcome = "applied"
	UpdateSkippedNotFound UpdateOutcome = "skipped_not_found"
)
