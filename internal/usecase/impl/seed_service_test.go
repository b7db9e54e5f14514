package impl

import (
	"context"
	"testing"

	"adboard/config"
	mockUsecase "adboard/internal/mocks/usecase"
	"adboard/internal/usecase"

	"adboard/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedConfig() *config.Config {
	return &config.Config{
		Seed: &config.SeedConfig{Users: []config.SeedUser{
			{Username: "admin@example.com", Password: "Password1!", FirstName: "Admin", LastName: "Account", Phone: "+7 (900) 000-00-01", Role: "ADMIN"},
			{Username: "user@example.com", Password: "Password1!", FirstName: "Demo", LastName: "User", Phone: "+7 (900) 000-00-02"},
		}},
	}
}

func TestSeedService_SeedUsers(t *testing.T) {
	ctx := context.Background()
	auth := mockUsecase.NewMockAuthUsecase(t)
	srv := NewSeedService(SeedServiceParams{Auth: auth, Config: seedConfig(), Logger: newDiscardLogger()})

	auth.EXPECT().
		Register(ctx, mock.MatchedBy(func(in *usecase.RegisterInput) bool { return in.Username == "admin@example.com" && in.Role == "ADMIN" })).
		Return(true, nil)
	auth.EXPECT().
		Register(ctx, mock.MatchedBy(func(in *usecase.RegisterInput) bool { return in.Username == "user@example.com" && in.Role == "" })).
		Return(false, nil)

	require.NoError(t, srv.SeedUsers(ctx))
}

func TestSeedService_SeedUsers_Failure(t *testing.T) {
	ctx := context.Background()
	auth := mockUsecase.NewMockAuthUsecase(t)
	srv := NewSeedService(SeedServiceParams{Auth: auth, Config: seedConfig(), Logger: newDiscardLogger()})

	auth.EXPECT().Register(ctx, mock.AnythingOfType("*usecase.RegisterInput")).Return(false, errors.New("database is down")).Once()

	err := srv.SeedUsers(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin@example.com")
}

func TestSeedService_NoConfig(t *testing.T) {
	srv := NewSeedService(SeedServiceParams{Auth: mockUsecase.NewMockAuthUsecase(t), Config: &config.Config{}, Logger: newDiscardLogger()})

	assert.NoError(t, srv.SeedUsers(context.Background()))
}
