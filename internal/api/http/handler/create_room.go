package handler

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"
	httpUsecase "github.com/MkMuhammetKaradag/uno-backend/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type CreateRoomRequest struct {
}

type CreateRoomResponse struct {
	Room domain.Snapshot `json:"room"`
}

type CreateRoomHandler struct {
	usecase httpUsecase.CreateRoomUseCase
}

func NewCreateRoomHandler(usecase httpUsecase.CreateRoomUseCase) *CreateRoomHandler {
	return &CreateRoomHandler{usecase: usecase}
}

func (h *CreateRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateRoomRequest) (*CreateRoomResponse, int, error) {
	userID, status, err := currentUserID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	snapshot, status, err := h.usecase.Execute(ctx, userID)
	if err != nil {
		return nil, status, err
	}
	return &CreateRoomResponse{Room: *snapshot}, status, nil
}
