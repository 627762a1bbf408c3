package wsUsecase

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomConnectUseCase interface {
	Execute(c *websocket.Conn, ctx context.Context, roomCode string, currentUserID uuid.UUID)
}

type roomConnectUseCase struct {
	hub      Hub
	registry RoomRegistry
}

func NewRoomConnectUseCase(hub Hub, registry RoomRegistry) RoomConnectUseCase {
	return &roomConnectUseCase{
		hub:      hub,
		registry: registry,
	}
}

// Execute, bağlantıyı oda üyeliği doğrulandıktan sonra hub'a kaydeder.
// Pompalar hub tarafında çalışır; bu goroutine bağlantı ömrü boyunca bekler.
func (u *roomConnectUseCase) Execute(c *websocket.Conn, ctx context.Context, roomCode string, currentUserID uuid.UUID) {
	sendErrorToClient := func(msg string) {
		errorMessage := domain.WebSocketErrorMessage{
			Type:    "error",
			Message: msg,
		}
		if err := c.WriteJSON(errorMessage); err != nil {
			zap.L().Debug("failed to send error message to client", zap.Error(err))
		}
	}

	roomID, err := u.registry.RoomIDByCode(roomCode)
	if err != nil {
		sendErrorToClient("room not found")
		c.Close()
		return
	}

	if !u.registry.IsMember(roomID, currentUserID) {
		sendErrorToClient("you are not in this room")
		c.Close()
		return
	}

	client := &domain.Client{
		ID:     currentUserID,
		RoomID: roomID,
		Conn:   c,
		Send:   make(chan []byte, 256),
		Done:   make(chan struct{}),
	}

	u.hub.RegisterClient(client)

	// Bağlantı kapanana kadar handler goroutine'ini canlı tut; fiber ws
	// handler dönerse bağlantı kapanır. Hub, unregister sırasında Done'ı
	// kapatır.
	<-client.Done
}
