package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitTimeRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVisitTimeRepository(db)

	slots := []time.Time{
		time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC),
	}
	for _, s := range slots {
		require.NoError(t, db.Exec("INSERT INTO visittimes (time_slot, created_at, updated_at) VALUES (?, ?, ?)", s, s, s).Error)
	}

	found, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 3)

	assert.Equal(t, uint(1), found[0].ID())
	assert.Equal(t, "8:00 AM", found[0].FormattedLabel())
	assert.Equal(t, "1:00 PM", found[2].FormattedLabel())
}

func TestVisitTimeRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVisitTimeRepository(db)
	ctx := context.Background()

	slot := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, db.Exec("INSERT INTO visittimes (time_slot, created_at, updated_at) VALUES (?, ?, ?)", slot, slot, slot).Error)

	found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "10:00 AM", found.FormattedLabel())

	_, err = repo.FindByID(ctx, 9999)
	assert.Error(t, err)
}
