package handler

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"
	httpUsecase "github.com/MkMuhammetKaradag/uno-backend/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type DrawCardRequest struct {
	Code string `params:"code" validate:"required"`
}

type DrawCardResponse struct {
	CardDrawn domain.Card     `json:"card_drawn"`
	CanPlay   bool            `json:"can_play"`
	GameState domain.Snapshot `json:"game_state"`
}

type DrawCardHandler struct {
	usecase httpUsecase.DrawCardUseCase
}

func NewDrawCardHandler(usecase httpUsecase.DrawCardUseCase) *DrawCardHandler {
	return &DrawCardHandler{usecase: usecase}
}

func (h *DrawCardHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *DrawCardRequest) (*DrawCardResponse, int, error) {
	userID, status, err := currentUserID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	result, status, err := h.usecase.Execute(ctx, req.Code, userID)
	if err != nil {
		return nil, status, err
	}

	return &DrawCardResponse{
		CardDrawn: result.CardDrawn,
		CanPlay:   result.CanPlay,
		GameState: result.Snapshot,
	}, status, nil
}
