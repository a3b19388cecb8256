package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"antrean/internal/infrastructure/persistence/models"
)

func seedDoctors(t *testing.T, db *gorm.DB) {
	doctors := []models.DoctorModel{
		{Name: "dr. Citra Dewi", Specialization: "Gigi"},
		{Name: "dr. Ayu Lestari", Specialization: "Reproduksi"},
		{Name: "dr. Bagus Wirawan", Specialization: "Anak"},
		{Name: "dr. Eka Santoso", Specialization: "Anak"},
	}
	require.NoError(t, db.Create(&doctors).Error)
}

func TestDoctorRepository_List(t *testing.T) {
	db := setupTestDB(t)
	seedDoctors(t, db)
	repo := NewDoctorRepository(db)

	doctors, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 4)

	// ordered by name ascending
	assert.Equal(t, "dr. Ayu Lestari", doctors[0].Name())
	assert.Equal(t, "dr. Bagus Wirawan", doctors[1].Name())
	assert.Equal(t, "dr. Citra Dewi", doctors[2].Name())
	assert.Equal(t, "dr. Eka Santoso", doctors[3].Name())
}

func TestDoctorRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	seedDoctors(t, db)
	repo := NewDoctorRepository(db)
	ctx := context.Background()

	doc, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "dr. Ayu Lestari", doc.Name())
	assert.Equal(t, "Reproduksi", doc.Specialization())

	_, err = repo.FindByID(ctx, 9999)
	assert.Error(t, err)
}

func TestDoctorRepository_ListBySpecialization(t *testing.T) {
	db := setupTestDB(t)
	seedDoctors(t, db)
	repo := NewDoctorRepository(db)
	ctx := context.Background()

	t.Run("matches case-insensitively", func(t *testing.T) {
		doctors, err := repo.ListBySpecialization(ctx, "anak")
		require.NoError(t, err)
		require.Len(t, doctors, 2)
		assert.Equal(t, "dr. Bagus Wirawan", doctors[0].Name())
		assert.Equal(t, "dr. Eka Santoso", doctors[1].Name())
	})

	t.Run("unknown label returns empty", func(t *testing.T) {
		doctors, err := repo.ListBySpecialization(ctx, "Bedah")
		require.NoError(t, err)
		assert.Empty(t, doctors)
	})
}

func TestDoctorRepository_ListSpecializations(t *testing.T) {
	db := setupTestDB(t)
	seedDoctors(t, db)
	repo := NewDoctorRepository(db)

	specializations, err := repo.ListSpecializations(context.Background())
	require.NoError(t, err)

	// distinct, ordered ascending
	assert.Equal(t, []string{"Anak", "Gigi", "Reproduksi"}, specializations)
}
