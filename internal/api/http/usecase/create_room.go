package httpUsecase

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateRoomUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) (*domain.Snapshot, int, error)
}

type createRoomUseCase struct {
	repository UserRepository
	manager    GameManager
}

func NewCreateRoomUseCase(repository UserRepository, manager GameManager) CreateRoomUseCase {
	return &createRoomUseCase{
		repository: repository,
		manager:    manager,
	}
}

// Execute, bekleyen bir oda oluşturur; kurucu ilk oyuncu olur.
func (u *createRoomUseCase) Execute(ctx context.Context, userID uuid.UUID) (*domain.Snapshot, int, error) {
	user, err := u.repository.GetUser(ctx, userID)
	if err != nil {
		return nil, statusForError(err), err
	}

	snapshot, err := u.manager.CreateRoom(user.ID, user.Username)
	if err != nil {
		return nil, statusForError(err), err
	}

	redacted := snapshot.RedactFor(userID)
	return &redacted, fiber.StatusCreated, nil
}
