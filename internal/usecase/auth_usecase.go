// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"adboard/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Username string
	Password string
}

// RegisterInput defines the data required to register a new account.
// An empty Role registers a regular user.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      string
}

// --- Output DTOs ---

// LoginOutput carries the issued access token.
type LoginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthUsecase defines the login and registration operations.
type AuthUsecase interface {
	// Login verifies the credentials and issues an access token.
	// Unknown users and wrong passwords fail identically with ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Register creates the account. It reports false without error when the username is taken.
	Register(ctx context.Context, input *RegisterInput) (bool, error)

	// Authenticate verifies the credentials without issuing a token.
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)

	// ParsePrincipal validates a bearer token and returns the identity it carries.
	ParsePrincipal(ctx context.Context, token string) (entity.Principal, error)
}
