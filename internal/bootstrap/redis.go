package bootstrap

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/config"
	"github.com/MkMuhammetKaradag/uno-backend/domain"
	"github.com/MkMuhammetKaradag/uno-backend/internal/initializer"

	"github.com/redis/go-redis/v9"
)

type RoomRedisManager interface {
	Close() error
	GetRedisClient() *redis.Client
	PublishEvent(ctx context.Context, event domain.GameEvent)
}

func InitRoomRedis(config config.Config) RoomRedisManager {
	return initializer.InitRoomRedis(config)
}
