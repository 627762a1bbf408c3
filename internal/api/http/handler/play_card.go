package handler

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"
	httpUsecase "github.com/MkMuhammetKaradag/uno-backend/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

// CardDescriptor, istemcinin oynamak istediği kartı tanımlar; kanonik deste
// üyeliği kural motorunda doğrulanır.
type CardDescriptor struct {
	Color    domain.Color    `json:"color" validate:"required"`
	Value    string          `json:"value" validate:"required"`
	CardType domain.CardType `json:"card_type" validate:"required"`
}

type PlayCardRequest struct {
	Code        string         `params:"code" validate:"required"`
	Card        CardDescriptor `json:"card" validate:"required"`
	ChosenColor domain.Color   `json:"chosen_color,omitempty"`
}

type PlayCardResponse struct {
	CardPlayed   domain.Card     `json:"card_played"`
	GameFinished bool            `json:"game_finished"`
	GameState    domain.Snapshot `json:"game_state"`
}

type PlayCardHandler struct {
	usecase httpUsecase.PlayCardUseCase
}

func NewPlayCardHandler(usecase httpUsecase.PlayCardUseCase) *PlayCardHandler {
	return &PlayCardHandler{usecase: usecase}
}

func (h *PlayCardHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *PlayCardRequest) (*PlayCardResponse, int, error) {
	userID, status, err := currentUserID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	card := domain.Card{
		Color:    req.Card.Color,
		Value:    req.Card.Value,
		CardType: req.Card.CardType,
	}

	result, status, err := h.usecase.Execute(ctx, req.Code, userID, card, req.ChosenColor)
	if err != nil {
		return nil, status, err
	}

	return &PlayCardResponse{
		CardPlayed:   result.CardPlayed,
		GameFinished: result.GameFinished,
		GameState:    result.Snapshot,
	}, status, nil
}
