package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"antrean/internal/domain/doctor"
	"antrean/internal/domain/patientqueue"
	"antrean/internal/domain/visittime"
	"antrean/internal/shared/errors"
)

func TestDeleteQueueUseCase_Execute_Success(t *testing.T) {
	entry, err := patientqueue.ReconstructEntry(5, "RE003", "Budi", 1, 2, time.Now())
	require.NoError(t, err)

	deleted := false
	entryRepo := &mockEntryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*patientqueue.Entry, error) {
			assert.Equal(t, uint(5), id)
			return entry, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	doctorRepo := &mockDoctorRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*doctor.Doctor, error) {
			return testDoctor(t, id, "Reproduksi"), nil
		},
	}
	visitTimeRepo := &mockVisitTimeRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*visittime.VisitTime, error) {
			return testSlot(t, id, 8), nil
		},
	}

	uc := NewDeleteQueueUseCase(entryRepo, doctorRepo, visitTimeRepo, mockLogger{})
	result, err := uc.Execute(context.Background(), DeleteQueueCommand{EntryID: 5})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, deleted)
	assert.Equal(t, uint(5), result.ID)
	assert.Equal(t, "RE003", result.QueueNumber)
}

func TestDeleteQueueUseCase_Execute_NotFound(t *testing.T) {
	deleteCalled := false
	entryRepo := &mockEntryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*patientqueue.Entry, error) {
			return nil, errors.NewNotFoundError("entry not found")
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleteCalled = true
			return nil
		},
	}

	uc := NewDeleteQueueUseCase(entryRepo, &mockDoctorRepository{}, &mockVisitTimeRepository{}, mockLogger{})
	_, err := uc.Execute(context.Background(), DeleteQueueCommand{EntryID: 99})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "Antrian tidak ditemukan")
	assert.False(t, deleteCalled, "missing entry must not reach the delete call")
}

func TestDeleteQueueUseCase_Execute_InvalidID(t *testing.T) {
	uc := NewDeleteQueueUseCase(&mockEntryRepository{}, &mockDoctorRepository{}, &mockVisitTimeRepository{}, mockLogger{})
	_, err := uc.Execute(context.Background(), DeleteQueueCommand{EntryID: 0})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
