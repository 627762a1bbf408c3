package handler

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"
	httpUsecase "github.com/MkMuhammetKaradag/uno-backend/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetVisibleRoomsRequest struct {
}

type GetVisibleRoomsResponse struct {
	Rooms []domain.RoomSummary `json:"rooms"`
}

type GetVisibleRoomsHandler struct {
	usecase httpUsecase.GetVisibleRoomsUseCase
}

func NewGetVisibleRoomsHandler(usecase httpUsecase.GetVisibleRoomsUseCase) *GetVisibleRoomsHandler {
	return &GetVisibleRoomsHandler{usecase: usecase}
}

func (h *GetVisibleRoomsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetVisibleRoomsRequest) (*GetVisibleRoomsResponse, int, error) {
	rooms, status, err := h.usecase.Execute(ctx)
	if err != nil {
		return nil, status, err
	}
	return &GetVisibleRoomsResponse{Rooms: rooms}, status, nil
}
