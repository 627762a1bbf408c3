package bootstrap

import (
	httpHandler "github.com/MkMuhammetKaradag/uno-backend/internal/api/http/handler"
	httpUsecase "github.com/MkMuhammetKaradag/uno-backend/internal/api/http/usecase"
	wsHandler "github.com/MkMuhammetKaradag/uno-backend/internal/api/ws/handler"
	wsUsecase "github.com/MkMuhammetKaradag/uno-backend/internal/api/ws/usecase"
	"github.com/MkMuhammetKaradag/uno-backend/internal/game"
)

func SetupHTTPHandlers(postgresRepository PostgresRepository, manager *game.Manager, roomRedisManager RoomRedisManager) map[string]interface{} {
	createUserUseCase := httpUsecase.NewCreateUserUseCase(postgresRepository)
	createUserHandler := httpHandler.NewCreateUserHandler(createUserUseCase)

	getUserUseCase := httpUsecase.NewGetUserUseCase(postgresRepository)
	getUserHandler := httpHandler.NewGetUserHandler(getUserUseCase)

	createRoomUseCase := httpUsecase.NewCreateRoomUseCase(postgresRepository, manager)
	createRoomHandler := httpHandler.NewCreateRoomHandler(createRoomUseCase)

	joinRoomUseCase := httpUsecase.NewJoinRoomUseCase(postgresRepository, manager, roomRedisManager)
	joinRoomHandler := httpHandler.NewJoinRoomHandler(joinRoomUseCase)

	startGameUseCase := httpUsecase.NewStartGameUseCase(manager, roomRedisManager)
	startGameHandler := httpHandler.NewStartGameHandler(startGameUseCase)

	playCardUseCase := httpUsecase.NewPlayCardUseCase(postgresRepository, manager, roomRedisManager)
	playCardHandler := httpHandler.NewPlayCardHandler(playCardUseCase)

	drawCardUseCase := httpUsecase.NewDrawCardUseCase(manager, roomRedisManager)
	drawCardHandler := httpHandler.NewDrawCardHandler(drawCardUseCase)

	leaveRoomUseCase := httpUsecase.NewLeaveRoomUseCase(manager, roomRedisManager)
	leaveRoomHandler := httpHandler.NewLeaveRoomHandler(leaveRoomUseCase)

	getRoomStateUseCase := httpUsecase.NewGetRoomStateUseCase(manager)
	getRoomStateHandler := httpHandler.NewGetRoomStateHandler(getRoomStateUseCase)

	getVisibleRoomsUseCase := httpUsecase.NewGetVisibleRoomsUseCase(manager)
	getVisibleRoomsHandler := httpHandler.NewGetVisibleRoomsHandler(getVisibleRoomsUseCase)

	return map[string]interface{}{
		"create-user":       createUserHandler,
		"get-user":          getUserHandler,
		"create-room":       createRoomHandler,
		"join-room":         joinRoomHandler,
		"start-game":        startGameHandler,
		"play-card":         playCardHandler,
		"draw-card":         drawCardHandler,
		"leave-room":        leaveRoomHandler,
		"get-room-state":    getRoomStateHandler,
		"get-visible-rooms": getVisibleRoomsHandler,
	}
}

func SetupWSHandlers(manager *game.Manager, wsHub Hub) map[string]interface{} {
	roomConnectUseCase := wsUsecase.NewRoomConnectUseCase(wsHub, manager)
	roomConnectHandler := wsHandler.NewRoomConnectHandler(roomConnectUseCase)

	return map[string]interface{}{
		"room-connect": roomConnectHandler,
	}
}
