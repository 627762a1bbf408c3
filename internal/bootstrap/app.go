package bootstrap

import (
	"context"
	"time"

	"github.com/MkMuhammetKaradag/uno-backend/config"
	"github.com/MkMuhammetKaradag/uno-backend/internal/game"
	"github.com/MkMuhammetKaradag/uno-backend/pkg/graceful"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	config       config.Config
	postgresRepo PostgresRepository
	roomRedis    RoomRedisManager
	gameManager  *game.Manager
	wsHub        Hub
	fiberApp     *fiber.App
	httpHandlers map[string]interface{}
	wsHandlers   map[string]interface{}
}

func NewApp(config config.Config) *App {
	app := &App{
		config: config,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	a.postgresRepo = InitDatabase(a.config)
	a.roomRedis = InitRoomRedis(a.config)
	a.gameManager = game.NewManager(game.NewEngine())
	a.wsHub = InitWebsocket(context.Background(), a.roomRedis, a.gameManager)
	a.httpHandlers = SetupHTTPHandlers(a.postgresRepo, a.gameManager, a.roomRedis)
	a.wsHandlers = SetupWSHandlers(a.gameManager, a.wsHub)
	a.fiberApp = SetupServer(a.config, a.httpHandlers, a.wsHandlers)
}

func (a *App) Start() {
	go func() {
		port := a.config.Server.Port
		if err := a.fiberApp.Listen(":" + port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", a.config.Server.Port))

	defer func() {
		if err := a.postgresRepo.Close(); err != nil {
			zap.L().Error("Failed to close database", zap.Error(err))
		}
		if err := a.roomRedis.Close(); err != nil {
			zap.L().Error("Failed to close redis", zap.Error(err))
		}
	}()

	graceful.WaitForShutdown(a.fiberApp, 5*time.Second, context.Background())
}
