package httpUsecase

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GetRoomStateUseCase interface {
	Execute(ctx context.Context, code string, userID uuid.UUID) (*domain.Snapshot, int, error)
}

type getRoomStateUseCase struct {
	manager GameManager
}

func NewGetRoomStateUseCase(manager GameManager) GetRoomStateUseCase {
	return &getRoomStateUseCase{manager: manager}
}

// Execute, taze bir snapshot döndürür; isteyen kullanıcı dışındaki ellerin
// içeriği gizlenir.
func (u *getRoomStateUseCase) Execute(ctx context.Context, code string, userID uuid.UUID) (*domain.Snapshot, int, error) {
	snapshot, err := u.manager.GetSnapshot(code)
	if err != nil {
		return nil, statusForError(err), err
	}

	redacted := snapshot.RedactFor(userID)
	return &redacted, fiber.StatusOK, nil
}
