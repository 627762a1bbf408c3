package httpUsecase

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/gofiber/fiber/v2"
)

type GetVisibleRoomsUseCase interface {
	Execute(ctx context.Context) ([]domain.RoomSummary, int, error)
}

type getVisibleRoomsUseCase struct {
	manager GameManager
}

func NewGetVisibleRoomsUseCase(manager GameManager) GetVisibleRoomsUseCase {
	return &getVisibleRoomsUseCase{manager: manager}
}

// Execute, katılıma açık (waiting) odaları listeler.
func (u *getVisibleRoomsUseCase) Execute(ctx context.Context) ([]domain.RoomSummary, int, error) {
	return u.manager.ListWaitingRooms(), fiber.StatusOK, nil
}
