package postgres

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/Conte777/tubedigest/config"
	"github.com/Conte777/tubedigest/internal/domain/subscription/entities"
	"github.com/Conte777/tubedigest/internal/infrastructure/database"
	"github.com/google/uuid"
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

func TestGetOrCreateChannel_ConcurrentCreatesOneRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	externalID := "UC" + uuid.NewString()
	t.Cleanup(func() { db.Exec("DELETE FROM youtube_channels WHERE channel_id = ?", externalID) })

	const n = 10
	var wg sync.WaitGroup
	ids := make([]uuid.UUID, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			desc := entities.ChannelDescriptor{ExternalID: externalID, Name: "Race", URL: "https://www.youtube.com/channel/" + externalID}
			ch, err := repo.GetOrCreateChannel(ctx, desc.NewChannel())
			errs[i] = err
			if err == nil {
				ids[i] = ch.ID
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	var count int64
	require.NoError(t, db.Model(&entities.Channel{}).Where("channel_id = ?", externalID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubscriptionLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := createUser(t, db)

	externalID := "UC" + uuid.NewString()
	t.Cleanup(func() { db.Exec("DELETE FROM youtube_channels WHERE channel_id = ?", externalID) })
	ch, err := repo.GetOrCreateChannel(ctx, entities.ChannelDescriptor{ExternalID: externalID, Name: "Life", URL: "u"}.NewChannel())
	require.NoError(t, err)

	created, err := repo.AddSubscription(ctx, userID, ch.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.AddSubscription(ctx, userID, ch.ID)
	require.NoError(t, err)
	assert.False(t, created)

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, externalID, list[0].ChannelID)
	assert.False(t, list[0].SubscribedAt.IsZero())

	removed, err := repo.RemoveSubscription(ctx, userID, ch.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.RemoveSubscription(ctx, userID, ch.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	ok, err := repo.Exists(ctx, userID, ch.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
