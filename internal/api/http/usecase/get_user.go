package httpUsecase

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GetUserUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) (*domain.User, int, error)
}

type getUserUseCase struct {
	repository UserRepository
}

func NewGetUserUseCase(repository UserRepository) GetUserUseCase {
	return &getUserUseCase{repository: repository}
}

func (u *getUserUseCase) Execute(ctx context.Context, userID uuid.UUID) (*domain.User, int, error) {
	user, err := u.repository.GetUser(ctx, userID)
	if err != nil {
		return nil, statusForError(err), err
	}
	return &user, fiber.StatusOK, nil
}
