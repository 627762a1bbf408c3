package initializer

import (
	"context"

	gameHub "github.com/MkMuhammetKaradag/uno-backend/internal/api/ws/hub"

	"github.com/redis/go-redis/v9"
)

func InitWebsocket(ctx context.Context, client *redis.Client, snapshot gameHub.SnapshotProvider) *gameHub.Hub {
	hub := gameHub.NewHub(client, snapshot)
	go hub.Run(ctx)
	return hub
}
