package bootstrap

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"
	"github.com/MkMuhammetKaradag/uno-backend/internal/game"
	"github.com/MkMuhammetKaradag/uno-backend/internal/initializer"

	"github.com/google/uuid"
)

type Hub interface {
	RegisterClient(client *domain.Client)
	UnregisterClient(client *domain.Client)
	GetRoomClientCount(roomID uuid.UUID) int
}

func InitWebsocket(ctx context.Context, redisRepo RoomRedisManager, manager *game.Manager) Hub {
	client := redisRepo.GetRedisClient()
	return initializer.InitWebsocket(ctx, client, manager)
}
