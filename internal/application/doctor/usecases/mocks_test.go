package usecases

import (
	"context"

	"antrean/internal/domain/doctor"
	"antrean/internal/shared/logger"
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
