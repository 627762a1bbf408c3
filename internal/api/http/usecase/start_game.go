package httpUsecase

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StartGameUseCase interface {
	Execute(ctx context.Context, code string, userID uuid.UUID) (*domain.Snapshot, int, error)
}

type startGameUseCase struct {
	manager   GameManager
	publisher RoomEventPublisher
}

func NewStartGameUseCase(manager GameManager, publisher RoomEventPublisher) StartGameUseCase {
	return &startGameUseCase{
		manager:   manager,
		publisher: publisher,
	}
}

// Execute, oyunu başlatır ve "game_started" olayını yayınlar.
func (u *startGameUseCase) Execute(ctx context.Context, code string, userID uuid.UUID) (*domain.Snapshot, int, error) {
	snapshot, err := u.manager.StartGame(code, userID)
	if err != nil {
		return nil, statusForError(err), err
	}

	u.publisher.PublishEvent(ctx, domain.GameEvent{
		RoomID:   snapshot.Room.ID,
		Type:     domain.EventGameStarted,
		Snapshot: snapshot,
	})

	redacted := snapshot.RedactFor(userID)
	return &redacted, fiber.StatusOK, nil
}
