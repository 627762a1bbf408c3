package httpUsecase

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlayCardResult, kart oynama cevabıdır.
type PlayCardResult struct {
	CardPlayed   domain.Card     `json:"card_played"`
	GameFinished bool            `json:"game_finished"`
	Snapshot     domain.Snapshot `json:"snapshot"`
}

type PlayCardUseCase interface {
	Execute(ctx context.Context, code string, userID uuid.UUID, card domain.Card, chosenColor domain.Color) (*PlayCardResult, int, error)
}

type playCardUseCase struct {
	repository UserRepository
	manager    GameManager
	publisher  RoomEventPublisher
}

func NewPlayCardUseCase(repository UserRepository, manager GameManager, publisher RoomEventPublisher) PlayCardUseCase {
	return &playCardUseCase{
		repository: repository,
		manager:    manager,
		publisher:  publisher,
	}
}

// Execute, kartı kural motoruna oynatır. Oyun bittiyse sayaçları günceller ve
// "game_over", bitmediyse "card_played" yayınlar.
func (u *playCardUseCase) Execute(ctx context.Context, code string, userID uuid.UUID, card domain.Card, chosenColor domain.Color) (*PlayCardResult, int, error) {
	result, snapshot, err := u.manager.PlayCard(code, userID, card, chosenColor)
	if err != nil {
		return nil, statusForError(err), err
	}

	if result.GameFinished {
		if err := u.repository.RecordGameResult(ctx, result.Winner.UserID, result.LoserUserIDs); err != nil {
			// Sayaç güncellenemese de oyun sonucu geçerlidir; sadece loglanır.
			zap.L().Error("failed to record game result",
				zap.String("winner_user_id", result.Winner.UserID.String()),
				zap.Error(err))
		}

		u.publisher.PublishEvent(ctx, domain.GameEvent{
			RoomID:   snapshot.Room.ID,
			Type:     domain.EventGameOver,
			PlayerID: userID,
			Snapshot: snapshot,
		})
	} else {
		u.publisher.PublishEvent(ctx, domain.GameEvent{
			RoomID:   snapshot.Room.ID,
			Type:     domain.EventCardPlayed,
			PlayerID: userID,
			Card:     &result.CardPlayed,
			Snapshot: snapshot,
		})
	}

	response := &PlayCardResult{
		CardPlayed:   result.CardPlayed,
		GameFinished: result.GameFinished,
		Snapshot:     snapshot.RedactFor(userID),
	}
	return response, fiber.StatusOK, nil
}
