//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"adboard/internal/domain/entity"
	"adboard/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("adboard"),
		tcpostgres.WithUsername("adboard"),
		tcpostgres.WithPassword("adboard"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, RunMigrations(sqlDB))

	return db
}

func createUser(t *testing.T, repo repository.UserRepository, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		PasswordHash: "$2a$10$hash",
		FirstName:    "Ivan",
		LastName:     "Petrov",
		Phone:        "+7 (900) 123-45-67",
		Role:         entity.RoleUser,
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	require.NoError(t, RunMigrations(sqlDB))

	for _, table := range []string{"users", "ads", "comments"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, repo, "ivan@example.com")
	assert.NotZero(t, user.ID)
	assert.Equal(t, int64(1), user.Version)

	t.Run("duplicate username", func(t *testing.T) {
		dup := &entity.User{Username: "ivan@example.com", PasswordHash: "x", FirstName: "A", LastName: "B", Phone: "+79001234567", Role: entity.RoleUser}
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, repository.ErrUserAlreadyExists)
	})

	t.Run("lookup", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "ivan@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		exists, err := repo.ExistsByUsername(ctx, "ivan@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		_, err = repo.FindByUsername(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("version guarded update", func(t *testing.T) {
		stale, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)

		user.FirstName = "Pyotr"
		require.NoError(t, repo.Update(ctx, user))
		assert.Equal(t, int64(2), user.Version)

		stale.FirstName = "Stale"
		assert.ErrorIs(t, repo.Update(ctx, stale), repository.ErrVersionConflict)

		reloaded, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pyotr", reloaded.FirstName)
	})

	t.Run("update of a missing user", func(t *testing.T) {
		ghost := &entity.User{ID: user.ID + 1000, Username: "ghost@example.com", FirstName: "Ghost", LastName: "Ghost", Role: entity.RoleUser, Version: 1}
		assert.ErrorIs(t, repo.Update(ctx, ghost), repository.ErrUserNotFound)
	})
}

func TestAdAndCommentRepositories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	ads := NewAdRepository(db)
	comments := NewCommentRepository(db)

	author := createUser(t, users, "author@example.com")
	other := createUser(t, users, "other@example.com")

	ad := &entity.Ad{Title: "Bike", Description: "Red road bike", Price: 15000, AuthorID: author.ID}
	require.NoError(t, ads.Create(ctx, ad))
	require.NoError(t, ads.Create(ctx, &entity.Ad{Title: "Lamp", Description: "Desk lamp", Price: 500, AuthorID: other.ID}))

	found, err := ads.FindByID(ctx, ad.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Author)
	assert.Equal(t, "author@example.com", found.Author.Username)

	mine, err := ads.ListByAuthor(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, ad.ID, mine[0].ID)

	all, err := ads.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	for _, text := range []string{"first", "second"} {
		require.NoError(t, comments.Create(ctx, &entity.Comment{Text: text, AdID: ad.ID, AuthorID: other.ID, CreatedAt: time.Now()}))
	}

	listed, err := comments.ListByAd(ctx, ad.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "first", listed[0].Text)
	require.NotNil(t, listed[0].Author)
	assert.Equal(t, other.ID, listed[0].Author.ID)

	err = db.Transaction(func(tx *gorm.DB) error {
		removed, err := NewCommentRepository(tx).DeleteByAd(ctx, ad.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, int64(2), removed)

		return NewAdRepository(tx).Delete(ctx, ad.ID)
	})
	require.NoError(t, err)

	_, err = ads.FindByID(ctx, ad.ID)
	assert.ErrorIs(t, err, repository.ErrAdNotFound)
	assert.ErrorIs(t, ads.Delete(ctx, ad.ID), repository.ErrAdNotFound)

	found.Title = "Gone bike"
	assert.ErrorIs(t, ads.Update(ctx, found), repository.ErrAdNotFound)
	assert.ErrorIs(t, comments.Update(ctx, listed[0]), repository.ErrCommentNotFound)
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		createUser(t, f.UserRepo(), "rollback@example.com")

		return repository.ErrVersionConflict
	})
	require.ErrorIs(t, err, repository.ErrVersionConflict)

	exists, err := NewUserRepository(db).ExistsByUsername(ctx, "rollback@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
