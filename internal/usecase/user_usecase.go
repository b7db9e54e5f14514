package usecase

import (
	"context"

	"adboard/internal/domain/entity"
)

// SetPasswordInput defines a password change.
type SetPasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required,max=64"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=64,strongpassword"`
}

// UpdateUserInput defines the editable profile fields.
type UpdateUserInput struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=16"`
	LastName  string `json:"lastName" validate:"required,min=2,max=16"`
	Phone     string `json:"phone" validate:"required,phone"`
}

// UserOutput is the public representation of an account.
type UserOutput struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Image     string `json:"image"`
}

// UpdateUserOutput echoes the profile fields after an update.
type UpdateUserOutput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// UserUsecase defines the account operations of the signed-in user.
type UserUsecase interface {
	GetCurrentUser(ctx context.Context, principal entity.Principal) (*UserOutput, error)
	SetPassword(ctx context.Context, principal entity.Principal, input *SetPasswordInput) error
	UpdateProfile(ctx context.Context, principal entity.Principal, input *UpdateUserInput) (*UpdateUserOutput, error)
	UpdateUserImage(ctx context.Context, principal entity.Principal, image *ImageUpload) error
	GetUserImage(ctx context.Context, username string) ([]byte, error)
	// ListUsers returns every account. Only administrators may call it.
	ListUsers(ctx context.Context, principal entity.Principal) ([]*UserOutput, error)
}

// SeedUsecase registers the configured accounts on startup.
type SeedUsecase interface {
	SeedUsers(ctx context.Context) error
}
