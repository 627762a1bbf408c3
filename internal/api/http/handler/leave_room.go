package handler

import (
	"context"

	httpUsecase "github.com/MkMuhammetKaradag/uno-backend/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type LeaveRoomRequest struct {
	Code string `params:"code" validate:"required"`
}

type LeaveRoomResponse struct {
	Message string `json:"message"`
}

type LeaveRoomHandler struct {
	usecase httpUsecase.LeaveRoomUseCase
}

func NewLeaveRoomHandler(usecase httpUsecase.LeaveRoomUseCase) *LeaveRoomHandler {
	return &LeaveRoomHandler{usecase: usecase}
}

func (h *LeaveRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *LeaveRoomRequest) (*LeaveRoomResponse, int, error) {
	userID, status, err := currentUserID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	status, err = h.usecase.Execute(ctx, req.Code, userID)
	if err != nil {
		return nil, status, err
	}
	return &LeaveRoomResponse{Message: "left room"}, status, nil
}
