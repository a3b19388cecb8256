package patientqueue

import (
	"context"
	"time"

	"antrean/internal/domain/doctor"
)

type mockDoctorRepository struct {
	ListFunc                 func(ctx context.Context) ([]*doctor.Doctor, error)
	FindByIDFunc             func(ctx context.Context, id uint) (*doctor.Doctor, error)
	ListBySpecializationFunc func(ctx context.Context, specialization string) ([]*doctor.Doctor, error)
	ListSpecializationsFunc  func(ctx context.Context) ([]string, error)
}

func (m *mockDoctorRepository) List(ctx context.Context) ([]*doctor.Doctor, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockDoctorRepository) FindByID(ctx context.Context, id uint) (*doctor.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDoctorRepository) ListBySpecialization(ctx context.Context, specialization string) ([]*doctor.Doctor, error) {
	if m.ListBySpecializationFunc != nil {
		return m.ListBySpecializationFunc(ctx, specialization)
	}
	return nil, nil
}

func (m *mockDoctorRepository) ListSpecializations(ctx context.Context) ([]string, error) {
	if m.ListSpecializationsFunc != nil {
		return m.ListSpecializationsFunc(ctx)
	}
	return nil, nil
}

type mockEntryRepository struct {
	SaveFunc                 func(ctx context.Context, entry *Entry) error
	FindByIDFunc             func(ctx context.Context, id uint) (*Entry, error)
	ListAllFunc              func(ctx context.Context) ([]*Entry, error)
	DeleteFunc               func(ctx context.Context, id uint) error
	ListBookedSlotIDsFunc    func(ctx context.Context, doctorID uint, from, to time.Time) ([]uint, error)
	CountForDoctorFunc       func(ctx context.Context, doctorID uint, from, to time.Time) (int64, error)
	ExistsForSlotFunc        func(ctx context.Context, doctorID, visitTimeID uint) (bool, error)
	ExistsForSlotBetweenFunc func(ctx context.Context, doctorID, visitTimeID uint, from, to time.Time) (bool, error)
}

func (m *mockEntryRepository) Save(ctx context.Context, entry *Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

func (m *mockEntryRepository) FindByID(ctx context.Context, id uint) (*Entry, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEntryRepository) ListAll(ctx context.Context) ([]*Entry, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockEntryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockEntryRepository) ListBookedSlotIDs(ctx context.Context, doctorID uint, from, to time.Time) ([]uint, error) {
	if m.ListBookedSlotIDsFunc != nil {
		return m.ListBookedSlotIDsFunc(ctx, doctorID, from, to)
	}
	return nil, nil
}

func (m *mockEntryRepository) CountForDoctor(ctx context.Context, doctorID uint, from, to time.Time) (int64, error) {
	if m.CountForDoctorFunc != nil {
		return m.CountForDoctorFunc(ctx, doctorID, from, to)
	}
	return 0, nil
}

func (m *mockEntryRepository) ExistsForSlot(ctx context.Context, doctorID, visitTimeID uint) (bool, error) {
	if m.ExistsForSlotFunc != nil {
		return m.ExistsForSlotFunc(ctx, doctorID, visitTimeID)
	}
	return false, nil
}

func (m *mockEntryRepository) ExistsForSlotBetween(ctx context.Context, doctorID, visitTimeID uint, from, to time.Time) (bool, error) {
	if m.ExistsForSlotBetweenFunc != nil {
		return m.ExistsForSlotBetweenFunc(ctx, doctorID, visitTimeID, from, to)
	}
	return false, nil
}
