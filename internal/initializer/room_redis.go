package initializer

import (
	"github.com/MkMuhammetKaradag/uno-backend/config"
	"github.com/MkMuhammetKaradag/uno-backend/infra/redis"

	"go.uber.org/zap"
)

func InitRoomRedis(appConfig config.Config) *redis.RedisManager {
	redisManager, err := redis.NewRedisManager(appConfig.Redis.Address(), appConfig.Redis.Password, appConfig.Redis.DB)
	if err != nil {
		zap.L().Fatal("redis bağlantısı kurulamadı", zap.Error(err))
	}

	return redisManager
}
