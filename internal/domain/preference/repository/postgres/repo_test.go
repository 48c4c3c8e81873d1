package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Conte777/tubedigest/config"
	"github.com/Conte777/tubedigest/internal/domain/preference/entities"
	"github.com/Conte777/tubedigest/internal/infrastructure/database"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db, config.DatabaseConfig{
		DBName:         "test",
		MigrationsPath: "file://../../../../../migrations",
	}))
	return db
}

func createUser(t *testing.T, db *gorm.DB) string {
	t.Helper()
	id := "test-" + uuid.NewString()
	require.NoError(t, db.Exec("INSERT INTO users (id) VALUES (?)", id).Error)
	t.Cleanup(func() { db.Exec("DELETE FROM users WHERE id = ?", id) })
	return id
}

func newPreference(userID string, kind entities.ChannelType, dest string, cats ...string) *entities.NotificationPreference {
	return &entities.NotificationPreference{
		ID:          uuid.New(),
		UserID:      userID,
		ChannelType: kind,
		Destination: dest,
		Categories:  pq.StringArray(cats),
		Enabled:     true,
	}
}

func countRows(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&entities.NotificationPreference{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

func TestUpsert_ReplacesSingleRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := createUser(t, db)

	first, err := repo.Upsert(ctx, newPreference(userID, entities.ChannelEmail, "user@example.com", "tech", "science"))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	second, err := repo.Upsert(ctx, newPreference(userID, entities.ChannelWhatsApp, "+15551234567", "business"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), countRows(t, db, userID))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, entities.ChannelWhatsApp, second.ChannelType)
	assert.Equal(t, "+15551234567", second.Destination)
	assert.Equal(t, []string{"business"}, []string(second.Categories))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt), "updated_at should advance")
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))
}

func TestUpsert_KeepsDisabledFlag(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := createUser(t, db)

	_, err := repo.Upsert(ctx, newPreference(userID, entities.ChannelEmail, "user@example.com", "tech"))
	require.NoError(t, err)
	require.NoError(t, repo.SetEnabled(ctx, userID, false))

	saved, err := repo.Upsert(ctx, newPreference(userID, entities.ChannelEmail, "other@example.com", "diy"))
	require.NoError(t, err)

	assert.False(t, saved.Enabled)
	assert.Equal(t, "other@example.com", saved.Destination)
	assert.Equal(t, int64(1), countRows(t, db, userID))
}

func TestGetByUserID_AndSetEnabled_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	missing := "test-" + uuid.NewString()

	_, err := repo.GetByUserID(ctx, missing)
	assert.True(t, pkgerrors.IsNotFoundError(err))

	err = repo.SetEnabled(ctx, missing, true)
	assert.True(t, pkgerrors.IsNotFoundError(err))
}
