package wsHandler

import (
	"context"
	"fmt"

	"github.com/MkMuhammetKaradag/uno-backend/domain"
	wsUsecase "github.com/MkMuhammetKaradag/uno-backend/internal/api/ws/usecase"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// RoomConnectHandler, websocket bağlantı isteklerini doğrulayıp usecase'e
// devreder.
type RoomConnectHandler struct {
	usecase wsUsecase.RoomConnectUseCase
}

type RoomConnectRequest struct {
}

func NewRoomConnectHandler(usecase wsUsecase.RoomConnectUseCase) *RoomConnectHandler {
	return &RoomConnectHandler{usecase: usecase}
}

func (h *RoomConnectHandler) sendErrorAndClose(conn *websocket.Conn, msg string) {
	errorMessage := domain.WebSocketErrorMessage{
		Type:    "error",
		Message: msg,
	}
	conn.WriteJSON(errorMessage)
	conn.Close()
}

func (h *RoomConnectHandler) HandleWS(c *websocket.Conn, ctx context.Context, req *RoomConnectRequest) {
	userID := c.Headers("X-User-Id")

	currentUserID, err := uuid.Parse(userID)
	if err != nil {
		h.sendErrorAndClose(c, fmt.Sprintf("failed to parse user id: %v", err))
		return
	}

	roomCode := c.Params("code")
	if roomCode == "" {
		h.sendErrorAndClose(c, "room code is required")
		return
	}

	h.usecase.Execute(c, ctx, roomCode, currentUserID)
}
