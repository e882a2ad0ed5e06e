package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/joshua-takyi/tixgate/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newUserService(t *testing.T) (*UserService, *models.Repo) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	repo := models.NewRepo(db)
	return NewUserService(repo), repo
}

// Profile updates arrive keyed by JSON tag; "fullname" must land in the
// full_name column.
func TestUpdateUserProfileFields(t *testing.T) {
	us, repo := newUserService(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, &models.User{
		Username: "before",
		Email:    "profile@test.dev",
		Password: "hash",
	})
	require.NoError(t, err)

	updated, err := us.UpdateUser(ctx, user.ID, map[string]interface{}{
		"fullname":     "Ama Mensah",
		"phone_number": "+233201234567",
		"role":         "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ama Mensah", updated.FullName)
	assert.Equal(t, "+233201234567", updated.PhoneNumber)
	// role is not a profile field and must be ignored here
	assert.Equal(t, models.RoleUser, updated.Role)

	reloaded, err := repo.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ama Mensah", reloaded.FullName)
}

func TestUpdateUserRejectsUnknownFieldsOnly(t *testing.T) {
	us, repo := newUserService(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, &models.User{
		Username: "someone",
		Email:    "someone@test.dev",
		Password: "hash",
	})
	require.NoError(t, err)

	_, err = us.UpdateUser(ctx, user.ID, map[string]interface{}{
		"role":     "admin",
		"password": "sneaky",
	})
	require.ErrorIs(t, err, models.ErrValidation)
}
