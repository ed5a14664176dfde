package sqlite

import (
	"context"
	"testing"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
	"github.com/ericfisherdev/foliopanel/internal/domain/port/driven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducationRepo_SeededDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEducationRepo(db)
	ctx := context.Background()

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "Bachelor of Science in Computer Science", entries[0].Degree)
	assert.Equal(t, "State University", entries[0].Institution)
	assert.Equal(t, "2020", entries[0].Year)
}

func TestEducationRepo_CreateAndListAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEducationRepo(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, model.Education{
		Degree:      "Master of Science in Distributed Systems",
		Institution: "Tech Institute",
		Location:    "Munich",
		Year:        "2022",
		Logo:        "/uploads/1700000000000-edu.png",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	got := entries[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Master of Science in Distributed Systems", got.Degree)
	assert.Equal(t, "Tech Institute", got.Institution)
	assert.Equal(t, "Munich", got.Location)
	assert.Equal(t, "2022", got.Year)
	assert.Equal(t, "/uploads/1700000000000-edu.png", got.Logo)
}

func TestEducationRepo_UpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEducationRepo(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, model.Education{
		Degree:      "BSc",
		Institution: "Tech Institute",
		Logo:        "/uploads/old.png",
	})
	require.NoError(t, err)

	err = repo.Update(ctx, id, model.EducationUpdate{Year: strPtr("2021")})
	require.NoError(t, err)

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)

	got := entries[0]
	assert.Equal(t, "2021", got.Year)
	assert.Equal(t, "BSc", got.Degree)
	assert.Equal(t, "/uploads/old.png", got.Logo)
}

func TestEducationRepo_UpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEducationRepo(db)
	ctx := context.Background()

	err := repo.Update(ctx, 9999, model.EducationUpdate{Degree: strPtr("x")})
	assert.ErrorIs(t, err, driven.ErrNotFound)
}

func TestEducationRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEducationRepo(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, model.Education{Degree: "BSc", Institution: "Tech Institute"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), driven.ErrNotFound)
}
