package handler

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"
	httpUsecase "github.com/MkMuhammetKaradag/uno-backend/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetRoomStateRequest struct {
	Code string `params:"code" validate:"required"`
}

type GetRoomStateResponse struct {
	GameState domain.Snapshot `json:"game_state"`
}

type GetRoomStateHandler struct {
	usecase httpUsecase.GetRoomStateUseCase
}

func NewGetRoomStateHandler(usecase httpUsecase.GetRoomStateUseCase) *GetRoomStateHandler {
	return &GetRoomStateHandler{usecase: usecase}
}

func (h *GetRoomStateHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetRoomStateRequest) (*GetRoomStateResponse, int, error) {
	userID, status, err := currentUserID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	snapshot, status, err := h.usecase.Execute(ctx, req.Code, userID)
	if err != nil {
		return nil, status, err
	}
	return &GetRoomStateResponse{GameState: *snapshot}, status, nil
}
