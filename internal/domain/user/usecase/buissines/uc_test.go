package buissines

import (
	"context"
	"testing"

	"github.com/Conte777/tubedigest/internal/domain/user/entities"
	usererrors "github.com/Conte777/tubedigest/internal/domain/user/errors"
	"github.com/Conte777/tubedigest/internal/domain/user/repository/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureUser(t *testing.T) {
	repo := memory.NewRepository()
	uc := NewUseCase(repo, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, uc.EnsureUser(ctx, entities.User{ID: " user-1 ", Name: " Ada "}))
	require.NoError(t, uc.EnsureUser(ctx, entities.User{ID: "user-1", Email: "ada@example.com"}))

	user, err := repo.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestEnsureUser_RequiresID(t *testing.T) {
	uc := NewUseCase(memory.NewRepository(), zerolog.Nop())

	err := uc.EnsureUser(context.Background(), entities.User{ID: "  "})
	assert.Equal(t, usererrors.ErrMissingIdentity, err)
}
