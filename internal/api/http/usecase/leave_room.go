package httpUsecase

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LeaveRoomUseCase interface {
	Execute(ctx context.Context, code string, userID uuid.UUID) (int, error)
}

type leaveRoomUseCase struct {
	manager   GameManager
	publisher RoomEventPublisher
}

func NewLeaveRoomUseCase(manager GameManager, publisher RoomEventPublisher) LeaveRoomUseCase {
	return &leaveRoomUseCase{
		manager:   manager,
		publisher: publisher,
	}
}

// Execute, ayrılma politikasını uygular. Oyun ortasında ayrılma odayı yok
// eder ve kalan abonelere "game_aborted" gider; bekleyen odadan ayrılma
// normal "player_left" olayıdır.
func (u *leaveRoomUseCase) Execute(ctx context.Context, code string, userID uuid.UUID) (int, error) {
	result, err := u.manager.LeaveRoom(code, userID)
	if err != nil {
		return statusForError(err), err
	}

	if result.Aborted {
		u.publisher.PublishEvent(ctx, domain.GameEvent{
			RoomID:   result.RoomID,
			Type:     domain.EventGameAborted,
			PlayerID: userID,
			Username: result.Username,
			Reason:   result.Username + " left the game",
		})
		return fiber.StatusOK, nil
	}

	u.publisher.PublishEvent(ctx, domain.GameEvent{
		RoomID:   result.RoomID,
		Type:     domain.EventPlayerLeft,
		PlayerID: userID,
		Username: result.Username,
		Snapshot: result.Snapshot,
	})
	return fiber.StatusOK, nil
}
