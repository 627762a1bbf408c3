package httpUsecase

import (
	"context"
	"testing"

	"github.com/MkMuhammetKaradag/uno-backend/domain"
	"github.com/MkMuhammetKaradag/uno-backend/internal/game"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepository struct {
	recordedWinner uuid.UUID
	recordedLosers []uuid.UUID
	recordCalls    int
	recordErr      error
}

func (f *fakeUserRepository) CreateOrGetUser(ctx context.Context, username string) (domain.User, error) {
	return domain.User{ID: uuid.New(), Username: username}, nil
}

func (f *fakeUserRepository) GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	return domain.User{ID: userID}, nil
}

func (f *fakeUserRepository) RecordGameResult(ctx context.Context, winnerUserID uuid.UUID, loserUserIDs []uuid.UUID) error {
	f.recordCalls++
	f.recordedWinner = winnerUserID
	f.recordedLosers = loserUserIDs
	return f.recordErr
}

type fakePublisher struct {
	events []domain.GameEvent
}

func (f *fakePublisher) PublishEvent(ctx context.Context, event domain.GameEvent) {
	f.events = append(f.events, event)
}

type fakeGameManager struct {
	GameManager

	playResult   *game.PlayResult
	playSnapshot *domain.Snapshot
	playErr      error
}

func (f *fakeGameManager) PlayCard(code string, userID uuid.UUID, card domain.Card, chosenColor domain.Color) (*game.PlayResult, *domain.Snapshot, error) {
	if f.playErr != nil {
		return nil, nil, f.playErr
	}
	return f.playResult, f.playSnapshot, nil
}

func snapshotWithHands(actor, other uuid.UUID) *domain.Snapshot {
	return &domain.Snapshot{
		Room: domain.RoomSummary{ID: uuid.New(), Code: "ABC234", Status: domain.StatusInProgress},
		Players: []domain.PlayerSummary{
			{UserID: actor, HandSize: 1, Hand: []domain.Card{{Color: domain.ColorRed, Value: "1", CardType: domain.CardNumber}}},
			{UserID: other, HandSize: 2, Hand: []domain.Card{{Color: domain.ColorBlue, Value: "1", CardType: domain.CardNumber}, {Color: domain.ColorBlue, Value: "2", CardType: domain.CardNumber}}},
		},
	}
}

func TestPlayCardUseCase(t *testing.T) {
	card := domain.Card{Color: domain.ColorRed, Value: "5", CardType: domain.CardNumber}

	t.Run("publishes card_played and redacts for the actor", func(t *testing.T) {
		actor, other := uuid.New(), uuid.New()
		repo := &fakeUserRepository{}
		publisher := &fakePublisher{}
		manager := &fakeGameManager{
			playResult:   &game.PlayResult{CardPlayed: card},
			playSnapshot: snapshotWithHands(actor, other),
		}

		usecase := NewPlayCardUseCase(repo, manager, publisher)
		result, status, err := usecase.Execute(context.Background(), "ABC234", actor, card, "")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, status)

		assert.Equal(t, 0, repo.recordCalls, "counters untouched while the game runs")

		require.Len(t, publisher.events, 1)
		event := publisher.events[0]
		assert.Equal(t, domain.EventCardPlayed, event.Type)
		require.NotNil(t, event.Card)
		assert.Equal(t, card, *event.Card)
		assert.NotNil(t, event.Snapshot.Players[1].Hand, "the event carries the full snapshot, the hub redacts per recipient")

		// cevaptaki snapshot oyuncuya göre redaksiyonludur
		require.Len(t, result.Snapshot.Players, 2)
		assert.NotNil(t, result.Snapshot.Players[0].Hand)
		assert.Nil(t, result.Snapshot.Players[1].Hand)
	})

	t.Run("game over records the result and publishes game_over", func(t *testing.T) {
		actor, other := uuid.New(), uuid.New()
		repo := &fakeUserRepository{}
		publisher := &fakePublisher{}
		manager := &fakeGameManager{
			playResult: &game.PlayResult{
				CardPlayed:   card,
				GameFinished: true,
				Winner:       &domain.Player{ID: uuid.New(), UserID: actor, Username: "ayse"},
				LoserUserIDs: []uuid.UUID{other},
			},
			playSnapshot: snapshotWithHands(actor, other),
		}

		usecase := NewPlayCardUseCase(repo, manager, publisher)
		result, status, err := usecase.Execute(context.Background(), "ABC234", actor, card, "")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, result.GameFinished)

		assert.Equal(t, 1, repo.recordCalls)
		assert.Equal(t, actor, repo.recordedWinner)
		assert.Equal(t, []uuid.UUID{other}, repo.recordedLosers)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, domain.EventGameOver, publisher.events[0].Type)
	})

	t.Run("counter failure does not fail the play", func(t *testing.T) {
		actor, other := uuid.New(), uuid.New()
		repo := &fakeUserRepository{recordErr: assert.AnError}
		publisher := &fakePublisher{}
		manager := &fakeGameManager{
			playResult: &game.PlayResult{
				CardPlayed:   card,
				GameFinished: true,
				Winner:       &domain.Player{ID: uuid.New(), UserID: actor, Username: "ayse"},
				LoserUserIDs: []uuid.UUID{other},
			},
			playSnapshot: snapshotWithHands(actor, other),
		}

		usecase := NewPlayCardUseCase(repo, manager, publisher)
		_, status, err := usecase.Execute(context.Background(), "ABC234", actor, card, "")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, status)
		require.Len(t, publisher.events, 1, "game_over is still announced")
	})

	t.Run("rule errors map to 422", func(t *testing.T) {
		manager := &fakeGameManager{playErr: domain.ErrNotYourTurn}
		usecase := NewPlayCardUseCase(&fakeUserRepository{}, manager, &fakePublisher{})

		_, status, err := usecase.Execute(context.Background(), "ABC234", uuid.New(), card, "")
		require.ErrorIs(t, err, domain.ErrNotYourTurn)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrRoomNotFound, fiber.StatusNotFound},
		{domain.ErrNotFound, fiber.StatusNotFound},
		{domain.ErrNotAMember, fiber.StatusForbidden},
		{domain.ErrRoomFull, fiber.StatusConflict},
		{domain.ErrAlreadyInProgress, fiber.StatusConflict},
		{domain.ErrAlreadyJoined, fiber.StatusConflict},
		{domain.ErrNotYourTurn, fiber.StatusUnprocessableEntity},
		{domain.ErrGameNotInProgress, fiber.StatusUnprocessableEntity},
		{domain.ErrInvalidPlay, fiber.StatusUnprocessableEntity},
		{domain.ErrMustChooseColor, fiber.StatusUnprocessableEntity},
		{domain.ErrMustPlayPlayableCard, fiber.StatusUnprocessableEntity},
		{domain.ErrInvalidInput, fiber.StatusBadRequest},
		{assert.AnError, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, statusForError(tt.err))
		})
	}
}
