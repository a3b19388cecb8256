package usecases

import (
	"context"

	"antrean/internal/application/patientqueue/dto"
)

type RegisterPatientExecutor interface {
	Execute(ctx context.Context, cmd RegisterPatientCommand) (*dto.QueueEntryDTO, error)
}

type ListQueuesExecutor interface {
	Execute(ctx context.Context) ([]dto.QueueEntryDTO, error)
}

type DeleteQueueExecutor interface {
	Execute(ctx context.Context, cmd DeleteQueueCommand) (*dto.QueueEntryDTO, error)
}

// TxRunner abstracts the transaction boundary so use cases stay testable
// without a database. Satisfied by db.TransactionManager.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
