package httpUsecase

import (
	"context"
	"errors"

	"github.com/MkMuhammetKaradag/uno-backend/domain"
	"github.com/MkMuhammetKaradag/uno-backend/internal/game"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserRepository, kullanıcı kayıtlarının ve galibiyet/mağlubiyet sayaçlarının
// kalıcılığıdır. Oyun durumu kalıcı değildir; sadece kullanıcılar saklanır.
type UserRepository interface {
	CreateOrGetUser(ctx context.Context, username string) (domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error)
	RecordGameResult(ctx context.Context, winnerUserID uuid.UUID, loserUserIDs []uuid.UUID) error
}

// RoomEventPublisher, oda kanalına olay yayınlar. Kural motoru yayın yapmaz;
// usecase sonucu alır ve buradan duyurur.
type RoomEventPublisher interface {
	PublishEvent(ctx context.Context, event domain.GameEvent)
}

// GameManager, bellekteki oda kayıt defterinin usecase'lere açılan yüzüdür.
type GameManager interface {
	CreateRoom(userID uuid.UUID, username string) (*domain.Snapshot, error)
	JoinRoom(code string, userID uuid.UUID, username string) (*domain.Snapshot, error)
	StartGame(code string, userID uuid.UUID) (*domain.Snapshot, error)
	PlayCard(code string, userID uuid.UUID, card domain.Card, chosenColor domain.Color) (*game.PlayResult, *domain.Snapshot, error)
	DrawCard(code string, userID uuid.UUID) (*game.DrawResult, *domain.Snapshot, error)
	LeaveRoom(code string, userID uuid.UUID) (*game.LeaveResult, error)
	GetSnapshot(code string) (*domain.Snapshot, error)
	ListWaitingRooms() []domain.RoomSummary
}

// statusForError, oyun hatalarını HTTP durum kodlarına çevirir. Hepsi
// kullanıcıya dönen, kurtarılabilir hatalardır.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound), errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotAMember):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrRoomFull),
		errors.Is(err, domain.ErrAlreadyInProgress),
		errors.Is(err, domain.ErrAlreadyJoined),
		errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNotEnoughPlayers),
		errors.Is(err, domain.ErrNotYourTurn),
		errors.Is(err, domain.ErrGameNotInProgress),
		errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, domain.ErrCardNotInHand),
		errors.Is(err, domain.ErrInvalidPlay),
		errors.Is(err, domain.ErrMustChooseColor),
		errors.Is(err, domain.ErrMustPlayPlayableCard),
		errors.Is(err, domain.ErrNoCardsToDraw):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
