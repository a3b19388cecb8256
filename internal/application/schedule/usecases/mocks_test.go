package usecases

import (
	"context"
	"time"

	"antrean/internal/domain/patientqueue"
	"antrean/internal/domain/visittime"
	"antrean/internal/shared/logger"
)

type mockEntryRepository struct {
	SaveFunc                 func(ctx context.Context, entry *patientqueue.Entry) error
	FindByIDFunc             func(ctx context.Context, id uint) (*patientqueue.Entry, error)
	ListAllFunc              func(ctx context.Context) ([]*patientqueue.Entry, error)
	DeleteFunc               func(ctx context.Context, id uint) error
	ListBookedSlotIDsFunc    func(ctx context.Context, doctorID uint, from, to time.Time) ([]uint, error)
	CountForDoctorFunc       func(ctx context.Context, doctorID uint, from, to time.Time) (int64, error)
	ExistsForSlotFunc        func(ctx context.Context, doctorID, visitTimeID uint) (bool, error)
	ExistsForSlotBetweenFunc func(ctx context.Context, doctorID, visitTimeID uint, from, to time.Time) (bool, error)
}

func (m *mockEntryRepository) Save(ctx context.Context, entry *patientqueue.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

func (m *mockEntryRepository) FindByID(ctx context.Context, id uint) (*patientqueue.Entry, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEntryRepository) ListAll(ctx context.Context) ([]*patientqueue.Entry, error) {
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

type mockVisitTimeRepository struct {
	ListFunc     func(ctx context.Context) ([]*visittime.VisitTime, error)
	FindByIDFunc func(ctx context.Context, id uint) (*visittime.VisitTime, error)
}

func (m *mockVisitTimeRepository) List(ctx context.Context) ([]*visittime.VisitTime, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockVisitTimeRepository) FindByID(ctx context.Context, id uint) (*visittime.VisitTime, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, args ...any)                   {}
func (mockLogger) Info(msg string, args ...any)                    {}
func (mockLogger) Warn(msg string, args ...any)                    {}
func (mockLogger) Error(msg string, args ...any)                   {}
func (m mockLogger) With(args ...any) logger.Interface             { return m }
func (m mockLogger) Named(name string) logger.Interface            { return m }
func (mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
