package usecases

import (
	"context"

	"antrean/internal/application/patientqueue/dto"
	"antrean/internal/domain/doctor"
	"antrean/internal/domain/patientqueue"
	"antrean/internal/domain/visittime"
	"antrean/internal/shared/errors"
	"antrean/internal/shared/logger"
)

type RegisterPatientCommand struct {
	PatientName string
	DoctorID    uint
	VisitTimeID uint
}

// RegisterPatientUseCase runs the registration flow: validate the patient
// name, confirm the doctor exists, reject a (doctor, slot) pair that has
// ever been booked, then generate the queue number and persist the entry.
// The whole sequence runs inside one transaction and is serialized per
// doctor, so concurrent registrations cannot mint duplicate numbers or
// double-book a slot.
type RegisterPatientUseCase struct {
	entryRepo     patientqueue.Repository
	doctorRepo    doctor.Repository
	visitTimeRepo visittime.Repository
	numbers       patientqueue.NumberGenerator
	tx            TxRunner
	guard         *registerGuard
	logger        logger.Interface
}

func NewRegisterPatientUseCase(
	entryRepo patientqueue.Repository,
	doctorRepo doctor.Repository,
	visitTimeRepo visittime.Repository,
	numbers patientqueue.NumberGenerator,
	tx TxRunner,
	logger logger.Interface,
) *RegisterPatientUseCase {
	return &RegisterPatientUseCase{
		entryRepo:     entryRepo,
		doctorRepo:    doctorRepo,
		visitTimeRepo: visitTimeRepo,
		numbers:       numbers,
		tx:            tx,
		guard:         newRegisterGuard(),
		logger:        logger,
	}
}

func (uc *RegisterPatientUseCase) Execute(ctx context.Context, cmd RegisterPatientCommand) (*dto.QueueEntryDTO, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	lock := uc.guard.forDoctor(cmd.DoctorID)
	lock.Lock()
	defer lock.Unlock()

	var result dto.QueueEntryDTO
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		doc, err := uc.doctorRepo.FindByID(ctx, cmd.DoctorID)
		if err != nil {
			return errors.NewNotFoundError("Dokter tidak ditemukan")
		}

		// The duplicate check is deliberately unbounded in time: one
		// booking per (doctor, slot), ever.
		taken, err := uc.entryRepo.ExistsForSlot(ctx, cmd.DoctorID, cmd.VisitTimeID)
		if err != nil {
			uc.logger.Errorw("failed to check existing queue",
				"doctor_id", cmd.DoctorID, "visit_time_id", cmd.VisitTimeID, "error", err)
			return err
		}
		if taken {
			return errors.NewConflictError("Dokter sudah memiliki antrian pada waktu tersebut")
		}

		slot, err := uc.visitTimeRepo.FindByID(ctx, cmd.VisitTimeID)
		if err != nil {
			return errors.NewNotFoundError("Waktu kunjungan tidak ditemukan")
		}

		entry, err := patientqueue.NewEntry(cmd.PatientName, cmd.DoctorID, cmd.VisitTimeID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		number, err := uc.numbers.Generate(ctx, cmd.DoctorID)
		if err != nil {
			return err
		}
		if err := entry.SetQueueNumber(number); err != nil {
			return errors.NewInternalError(err.Error())
		}

		if err := uc.entryRepo.Save(ctx, entry); err != nil {
			uc.logger.Errorw("failed to save queue entry",
				"doctor_id", cmd.DoctorID, "queue_number", number, "error", err)
			return err
		}

		result = dto.FromEntry(entry, doc, slot)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("patient registered",
		"entry_id", result.ID,
		"doctor_id", result.DoctorID,
		"queue_number", result.QueueNumber)

	return &result, nil
}

func (uc *RegisterPatientUseCase) validateCommand(cmd RegisterPatientCommand) error {
	if len(cmd.PatientName) == 0 {
		return errors.NewValidationError("Nama pasien wajib diisi")
	}
	if len(cmd.PatientName) > patientqueue.MaxPatientNameLength {
		return errors.NewValidationError("Nama pasien tidak boleh lebih dari 50 karakter")
	}
	return nil
}
