package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-links/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRow(user *models.UserDB) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"user_id", "username", "email", "password_hash",
		"processor_account_id", "onboarding_complete", "created_at", "updated_at",
	}).AddRow(
		user.UserID, user.Username, user.Email, user.PasswordHash,
		user.ProcessorAccountID, user.OnboardingComplete, user.CreatedAt, user.UpdatedAt,
	)
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	t.Run("found by username", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db)

		username := "seller"
		user := &models.UserDB{
			UserID:       uuid.New(),
			Username:     username,
			Email:        "seller@example.com",
			PasswordHash: "hash",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WithArgs(&username, nil).
			WillReturnRows(userRow(user))

		got, err := repo.GetByUsernameOrEmail(context.Background(), &username, nil)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.UserID, got.UserID)
		assert.False(t, got.OnboardingComplete)
		assert.Nil(t, got.ProcessorAccountID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db)

		username := "ghost"
		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WithArgs(&username, nil).
			WillReturnError(sql.ErrNoRows)

		got, err := repo.GetByUsernameOrEmail(context.Background(), &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	accountID := "acct_1"
	user := &models.UserDB{
		UserID:             uuid.New(),
		Username:           "seller",
		Email:              "seller@example.com",
		PasswordHash:       "hash",
		ProcessorAccountID: &accountID,
		OnboardingComplete: true,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs(user.UserID).
		WillReturnRows(userRow(user))

	got, err := repo.GetByID(context.Background(), user.UserID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.ProcessorAccountID)
	assert.Equal(t, "acct_1", *got.ProcessorAccountID)
	assert.True(t, got.OnboardingComplete)
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("seller", "seller@example.com", "hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), "seller", "hash", "seller@example.com")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_SetProcessorAccountID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	userID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("SET processor_account_id = $2")).
		WithArgs(userID, "acct_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetProcessorAccountID(context.Background(), userID, "acct_1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_SetOnboardingComplete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	userID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("SET onboarding_complete = $2")).
		WithArgs(userID, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetOnboardingComplete(context.Background(), userID, true)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
