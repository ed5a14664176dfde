package sqlite

import (
	"context"
	"testing"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
	"github.com/ericfisherdev/foliopanel/internal/domain/port/driven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepo(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, model.AdminUser{
		Username:     "admin",
		PasswordHash: "$2a$10$notarealhashbutgoodenoughfortests",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	user, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "$2a$10$notarealhashbutgoodenoughfortests", user.PasswordHash)
}

func TestAdminRepo_GetUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepo(db)
	ctx := context.Background()

	_, err := repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, driven.ErrNotFound)
}

func TestAdminRepo_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, model.AdminUser{Username: "admin", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.AdminUser{Username: "admin", PasswordHash: "h2"})
	assert.Error(t, err, "username is unique")
}
