package handler

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"
	httpUsecase "github.com/MkMuhammetKaradag/uno-backend/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
}

type CreateUserResponse struct {
	User domain.User `json:"user"`
}

type CreateUserHandler struct {
	usecase httpUsecase.CreateUserUseCase
}

func NewCreateUserHandler(usecase httpUsecase.CreateUserUseCase) *CreateUserHandler {
	return &CreateUserHandler{usecase: usecase}
}

func (h *CreateUserHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, int, error) {
	user, status, err := h.usecase.Execute(ctx, req.Username)
	if err != nil {
		return nil, status, err
	}
	return &CreateUserResponse{User: *user}, status, nil
}
