package usecases

import (
	"context"

	"antrean/internal/application/schedule/dto"
)

type ListAvailableSlotsExecutor interface {
	Execute(ctx context.Context, query ListAvailableSlotsQuery) ([]dto.SlotDTO, error)
}

type CheckSlotExecutor interface {
	Execute(ctx context.Context, query CheckSlotQuery) (*CheckSlotResult, error)
}
