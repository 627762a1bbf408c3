package handler

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"
	httpUsecase "github.com/MkMuhammetKaradag/uno-backend/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GetUserRequest struct {
	UserID uuid.UUID `params:"user_id"`
}

type GetUserResponse struct {
	User domain.User `json:"user"`
}

type GetUserHandler struct {
	usecase httpUsecase.GetUserUseCase
}

func NewGetUserHandler(usecase httpUsecase.GetUserUseCase) *GetUserHandler {
	return &GetUserHandler{usecase: usecase}
}

func (h *GetUserHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetUserRequest) (*GetUserResponse, int, error) {
	user, status, err := h.usecase.Execute(ctx, req.UserID)
	if err != nil {
		return nil, status, err
	}
	return &GetUserResponse{User: *user}, status, nil
}
