package bootstrap

import (
	"time"

	"github.com/MkMuhammetKaradag/uno-backend/config"
	httpGameHandler "github.com/MkMuhammetKaradag/uno-backend/internal/api/http/handler"
	wsGameHandler "github.com/MkMuhammetKaradag/uno-backend/internal/api/ws/handler"
	"github.com/MkMuhammetKaradag/uno-backend/internal/handler"
	"github.com/MkMuhammetKaradag/uno-backend/internal/server"

	"github.com/gofiber/fiber/v2"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}, wsHandlers map[string]interface{}) *fiber.App {

	serverConfig := server.Config{
		Port:         config.Server.Port,
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	app := server.NewFiberApp(serverConfig)

	createUserHandler := httpHandlers["create-user"].(*httpGameHandler.CreateUserHandler)
	getUserHandler := httpHandlers["get-user"].(*httpGameHandler.GetUserHandler)
	createRoomHandler := httpHandlers["create-room"].(*httpGameHandler.CreateRoomHandler)
	joinRoomHandler := httpHandlers["join-room"].(*httpGameHandler.JoinRoomHandler)
	startGameHandler := httpHandlers["start-game"].(*httpGameHandler.StartGameHandler)
	playCardHandler := httpHandlers["play-card"].(*httpGameHandler.PlayCardHandler)
	drawCardHandler := httpHandlers["draw-card"].(*httpGameHandler.DrawCardHandler)
	leaveRoomHandler := httpHandlers["leave-room"].(*httpGameHandler.LeaveRoomHandler)
	getRoomStateHandler := httpHandlers["get-room-state"].(*httpGameHandler.GetRoomStateHandler)
	getVisibleRoomsHandler := httpHandlers["get-visible-rooms"].(*httpGameHandler.GetVisibleRoomsHandler)

	app.Post("/users", handler.HandleWithFiber[httpGameHandler.CreateUserRequest, httpGameHandler.CreateUserResponse](createUserHandler))
	app.Get("/users/:user_id", handler.HandleWithFiber[httpGameHandler.GetUserRequest, httpGameHandler.GetUserResponse](getUserHandler))

	app.Post("/rooms", handler.HandleWithFiber[httpGameHandler.CreateRoomRequest, httpGameHandler.CreateRoomResponse](createRoomHandler))
	app.Get("/rooms", handler.HandleWithFiber[httpGameHandler.GetVisibleRoomsRequest, httpGameHandler.GetVisibleRoomsResponse](getVisibleRoomsHandler))
	app.Get("/rooms/:code", handler.HandleWithFiber[httpGameHandler.GetRoomStateRequest, httpGameHandler.GetRoomStateResponse](getRoomStateHandler))
	app.Post("/rooms/:code/join", handler.HandleWithFiber[httpGameHandler.JoinRoomRequest, httpGameHandler.JoinRoomResponse](joinRoomHandler))
	app.Post("/rooms/:code/start", handler.HandleWithFiber[httpGameHandler.StartGameRequest, httpGameHandler.StartGameResponse](startGameHandler))
	app.Post("/rooms/:code/play", handler.HandleWithFiber[httpGameHandler.PlayCardRequest, httpGameHandler.PlayCardResponse](playCardHandler))
	app.Post("/rooms/:code/draw", handler.HandleWithFiber[httpGameHandler.DrawCardRequest, httpGameHandler.DrawCardResponse](drawCardHandler))
	app.Post("/rooms/:code/leave", handler.HandleWithFiber[httpGameHandler.LeaveRoomRequest, httpGameHandler.LeaveRoomResponse](leaveRoomHandler))

	wsRoute := app.Group("/ws")
	roomConnectHandler := wsHandlers["room-connect"].(*wsGameHandler.RoomConnectHandler)
	wsRoute.Get("/rooms/:code", handler.HandleWithFiberWS[wsGameHandler.RoomConnectRequest](roomConnectHandler))

	return app
}
