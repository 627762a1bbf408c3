package httpUsecase

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/gofiber/fiber/v2"
)

type CreateUserUseCase interface {
	Execute(ctx context.Context, username string) (*domain.User, int, error)
}

type createUserUseCase struct {
	repository UserRepository
}

func NewCreateUserUseCase(repository UserRepository) CreateUserUseCase {
	return &createUserUseCase{repository: repository}
}

// Execute, kullanıcıyı adıyla bulur, yoksa oluşturur.
func (u *createUserUseCase) Execute(ctx context.Context, username string) (*domain.User, int, error) {
	user, err := u.repository.CreateOrGetUser(ctx, username)
	if err != nil {
		return nil, statusForError(err), err
	}
	return &user, fiber.StatusCreated, nil
}
