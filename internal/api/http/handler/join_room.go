package handler

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"
	httpUsecase "github.com/MkMuhammetKaradag/uno-backend/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type JoinRoomRequest struct {
	Code string `params:"code" validate:"required"`
}

type JoinRoomResponse struct {
	Room domain.Snapshot `json:"room"`
}

type JoinRoomHandler struct {
	usecase httpUsecase.JoinRoomUseCase
}

func NewJoinRoomHandler(usecase httpUsecase.JoinRoomUseCase) *JoinRoomHandler {
	return &JoinRoomHandler{usecase: usecase}
}

func (h *JoinRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *JoinRoomRequest) (*JoinRoomResponse, int, error) {
	userID, status, err := currentUserID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	snapshot, status, err := h.usecase.Execute(ctx, req.Code, userID)
	if err != nil {
		return nil, status, err
	}
	return &JoinRoomResponse{Room: *snapshot}, status, nil
}
