package handler

import (
	"fmt"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserID, kimliği X-User-ID başlığından okur. Kimlik doğrulama bu
// servisin işi değildir; başlığı üst katmanın doldurduğu varsayılır.
func currentUserID(fbrCtx *fiber.Ctx) (uuid.UUID, int, error) {
	userIDStr := fbrCtx.Get("X-User-ID")
	if userIDStr == "" {
		return uuid.Nil, fiber.StatusUnauthorized, domain.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, fiber.StatusBadRequest, fmt.Errorf("invalid user id format")
	}
	return userID, 0, nil
}
