package httpUsecase

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// DrawCardResult, kart çekme cevabıdır. Çekilen kart sadece çeken oyuncuya
// döner; yayınlanan olay kartı içermez.
type DrawCardResult struct {
	CardDrawn domain.Card     `json:"card_drawn"`
	CanPlay   bool            `json:"can_play"`
	Snapshot  domain.Snapshot `json:"snapshot"`
}

type DrawCardUseCase interface {
	Execute(ctx context.Context, code string, userID uuid.UUID) (*DrawCardResult, int, error)
}

type drawCardUseCase struct {
	manager   GameManager
	publisher RoomEventPublisher
}

func NewDrawCardUseCase(manager GameManager, publisher RoomEventPublisher) DrawCardUseCase {
	return &drawCardUseCase{
		manager:   manager,
		publisher: publisher,
	}
}

func (u *drawCardUseCase) Execute(ctx context.Context, code string, userID uuid.UUID) (*DrawCardResult, int, error) {
	result, snapshot, err := u.manager.DrawCard(code, userID)
	if err != nil {
		return nil, statusForError(err), err
	}

	canPlay := result.CanPlay
	u.publisher.PublishEvent(ctx, domain.GameEvent{
		RoomID:   snapshot.Room.ID,
		Type:     domain.EventCardDrawn,
		PlayerID: userID,
		CanPlay:  &canPlay,
		Snapshot: snapshot,
	})

	response := &DrawCardResult{
		CardDrawn: result.CardDrawn,
		CanPlay:   result.CanPlay,
		Snapshot:  snapshot.RedactFor(userID),
	}
	return response, fiber.StatusOK, nil
}
