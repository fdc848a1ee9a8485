// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"studyhub/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new user.
type SignUpInput struct {
	Nickname string `json:"nickname" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Birthday string `json:"birthday"`
	Job      string `json:"job"`
}

// LoginInput defines the data required for a user to log in with a password.
type LoginInput struct {
	Nickname string `json:"nickname" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// KakaoLoginInput carries the authorization code returned by Kakao.
type KakaoLoginInput struct {
	Code string `json:"code" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the authenticated user's id after a successful login.
type LoginOutput struct {
	ID int64 `json:"id"`
}

// UserView is the public projection of a user record. Credential material
// never leaves the usecase layer.
type UserView struct {
	ID            int64     `json:"id"`
	Nickname      string    `json:"nickname"`
	Email         string    `json:"email"`
	Birthday      string    `json:"birthday"`
	Job           string    `json:"job"`
	ProfileImgURL string    `json:"profile_img_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserSummary is the restricted projection exposed when another user looks
// up a profile: id, nickname and profile image only.
type UserSummary struct {
	ID            int64  `json:"id"`
	Nickname      string `json:"nickname"`
	ProfileImgURL string `json:"profile_img_url"`
}

// KakaoLoginOutput returns the account resolved for a Kakao login.
type KakaoLoginOutput struct {
	User *UserView `json:"user"`
}

// NewUserView maps a domain user to its public projection.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:            user.ID,
		Nickname:      user.Nickname,
		Email:         user.Email,
		Birthday:      user.Birthday,
		Job:           user.Job,
		ProfileImgURL: user.ProfileImgURL,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// NewUserSummary maps a domain user to its restricted projection.
func NewUserSummary(user *entity.User) *UserSummary {
	return &UserSummary{
		ID:            user.ID,
		Nickname:      user.Nickname,
		ProfileImgURL: user.ProfileImgURL,
	}
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	KakaoLogin(ctx context.Context, input *KakaoLoginInput) (*KakaoLoginOutput, error)
	GetUserSummary(ctx context.Context, userID int64) (*UserSummary, error)
	ListUsers(ctx context.Context) ([]*UserView, error)
}
