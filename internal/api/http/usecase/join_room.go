package httpUsecase

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type JoinRoomUseCase interface {
	Execute(ctx context.Context, code string, userID uuid.UUID) (*domain.Snapshot, int, error)
}

type joinRoomUseCase struct {
	repository UserRepository
	manager    GameManager
	publisher  RoomEventPublisher
}

func NewJoinRoomUseCase(repository UserRepository, manager GameManager, publisher RoomEventPublisher) JoinRoomUseCase {
	return &joinRoomUseCase{
		repository: repository,
		manager:    manager,
		publisher:  publisher,
	}
}

// Execute, kullanıcıyı odaya ekler ve katılımı oda kanalında duyurur.
// Yayınlanan snapshot tamdır; hub her alıcı için redaksiyon uygular.
func (u *joinRoomUseCase) Execute(ctx context.Context, code string, userID uuid.UUID) (*domain.Snapshot, int, error) {
	user, err := u.repository.GetUser(ctx, userID)
	if err != nil {
		return nil, statusForError(err), err
	}

	snapshot, err := u.manager.JoinRoom(code, user.ID, user.Username)
	if err != nil {
		return nil, statusForError(err), err
	}

	u.publisher.PublishEvent(ctx, domain.GameEvent{
		RoomID:   snapshot.Room.ID,
		Type:     domain.EventPlayerJoined,
		PlayerID: userID,
		Username: user.Username,
		Snapshot: snapshot,
	})

	redacted := snapshot.RedactFor(userID)
	return &redacted, fiber.StatusOK, nil
}
