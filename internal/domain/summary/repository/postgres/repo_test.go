package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Conte777/tubedigest/config"
	"github.com/Conte777/tubedigest/internal/domain/summary/dto"
	"github.com/Conte777/tubedigest/internal/domain/summary/entities"
	sumerrors "github.com/Conte777/tubedigest/internal/domain/summary/errors"
	"github.com/Conte777/tubedigest/internal/infrastructure/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type testData struct {
	db        *gorm.DB
	owner     string
	other     string
	channelID uuid.UUID
}

func setup(t *testing.T) testData {
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

	td := testData{
		db:        db,
		owner:     "test-" + uuid.NewString(),
		other:     "test-" + uuid.NewString(),
		channelID: uuid.New(),
	}
	require.NoError(t, db.Exec("INSERT INTO users (id) VALUES (?), (?)", td.owner, td.other).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO youtube_channels (id, channel_id, channel_name, channel_url) VALUES (?, ?, 'Test', 'u')",
		td.channelID, "UC"+td.channelID.String(),
	).Error)

	t.Cleanup(func() {
		db.Exec("DELETE FROM users WHERE id IN (?, ?)", td.owner, td.other)
		db.Exec("DELETE FROM youtube_channels WHERE id = ?", td.channelID)
	})
	return td
}

func (td testData) summary(videoID string, publishedAt time.Time) *entities.VideoSummary {
	return &entities.VideoSummary{
		ID:             uuid.New(),
		UserID:         td.owner,
		ChannelID:      td.channelID,
		VideoID:        videoID,
		VideoTitle:     "Video " + videoID,
		VideoURL:       "https://www.youtube.com/watch?v=" + videoID,
		PublishedAt:    publishedAt,
		SummaryContent: "content",
	}
}

func TestSetRead_OwnershipAndIdempotence(t *testing.T) {
	td := setup(t)
	repo := NewRepository(td.db)
	ctx := context.Background()

	s, created, err := repo.Create(ctx, td.summary("v1", time.Now()))
	require.NoError(t, err)
	require.True(t, created)

	res, err := repo.SetRead(ctx, s.ID, td.other, true)
	require.NoError(t, err)
	assert.Equal(t, dto.ReadResult{}, res)

	res, err = repo.SetRead(ctx, s.ID, td.owner, true)
	require.NoError(t, err)
	assert.Equal(t, dto.ReadResult{Found: true, Changed: true}, res)

	res, err = repo.SetRead(ctx, s.ID, td.owner, true)
	require.NoError(t, err)
	assert.Equal(t, dto.ReadResult{Found: true}, res)

	_, err = repo.Get(ctx, s.ID, td.other)
	assert.Equal(t, sumerrors.ErrSummaryNotFound, err)
}

func TestCreate_IdempotentAndOrdered(t *testing.T) {
	td := setup(t)
	repo := NewRepository(td.db)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	first, _, err := repo.Create(ctx, td.summary("a", base))
	require.NoError(t, err)
	again, created, err := repo.Create(ctx, td.summary("a", base))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	_, _, err = repo.Create(ctx, td.summary("b", base.Add(time.Hour)))
	require.NoError(t, err)

	list, err := repo.ListForChannel(ctx, td.channelID, td.owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].VideoID)
	assert.Equal(t, "a", list[1].VideoID)
}
