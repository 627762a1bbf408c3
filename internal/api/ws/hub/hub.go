package hub

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/fasthttp/websocket"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Message, istemciye giden zarf.
type Message struct {
	Type    string      `json:"type"`
	Content interface{} `json:"content"`
}

// ClientAction, istemciden socket üzerinden gelen komut (ping,
// request_game_state). Oyun hamleleri HTTP API üzerinden yapılır.
type ClientAction struct {
	Action string `json:"action"`
}

// SnapshotProvider, hub'ın snapshot isteklerini karşılamak için oda kayıt
// defterine açılan dar arayüzüdür.
type SnapshotProvider interface {
	GetSnapshotByID(roomID uuid.UUID) (*domain.Snapshot, error)
	IsMember(roomID uuid.UUID, userID uuid.UUID) bool
}

// Hub, oda başına websocket istemcilerini izler ve Redis'ten gelen oyun
// olaylarını bağlı istemcilere dağıtır. Snapshot içeren olaylar her alıcı
// için ayrı redaksiyon ile gönderilir; kimse başkasının elini görmez.
type Hub struct {
	roomsClients map[uuid.UUID]map[uuid.UUID]*domain.Client

	redisClient *redis.Client
	register    chan *domain.Client
	unregister  chan *domain.Client

	mutex    sync.RWMutex
	snapshot SnapshotProvider
	roomHub  *roomHub
}

func NewHub(redisClient *redis.Client, snapshot SnapshotProvider) *Hub {
	hub := &Hub{
		roomsClients: make(map[uuid.UUID]map[uuid.UUID]*domain.Client),
		redisClient:  redisClient,
		register:     make(chan *domain.Client),
		unregister:   make(chan *domain.Client),
		snapshot:     snapshot,
	}
	hub.roomHub = NewRoomHub(redisClient, hub)
	return hub
}

func (h *Hub) Run(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.register:
				h.registerClient(client)
				go h.readPump(client)
				go h.writePump(client)
			case client := <-h.unregister:
				h.unregisterClient(client)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (h *Hub) RegisterClient(client *domain.Client) {
	h.register <- client
}

func (h *Hub) UnregisterClient(client *domain.Client) {
	h.unregister <- client
}

// registerClient, istemciyi oda haritasına ekler. Aynı kullanıcının eski
// bağlantısı varsa kapatılır (yeniden bağlanma). Odaya ilk istemci
// bağlandığında Redis aboneliği başlar.
func (h *Hub) registerClient(client *domain.Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	roomClients, ok := h.roomsClients[client.RoomID]
	if !ok {
		roomClients = make(map[uuid.UUID]*domain.Client)
		h.roomsClients[client.RoomID] = roomClients
	}

	isReconnection := false
	if existing, ok := roomClients[client.ID]; ok {
		zap.L().Info("user already connected, closing old connection",
			zap.String("user_id", client.ID.String()),
			zap.String("room_id", client.RoomID.String()))
		close(existing.Send)
		close(existing.Done)
		existing.Conn.Close()
		delete(roomClients, client.ID)
		isReconnection = true
	}

	firstInRoom := len(roomClients) == 0
	roomClients[client.ID] = client

	if !isReconnection && firstInRoom {
		h.roomHub.StartSubscriber(client.RoomID)
	}
}

func (h *Hub) unregisterClient(client *domain.Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	roomClients, ok := h.roomsClients[client.RoomID]
	if !ok {
		return
	}
	if current, exists := roomClients[client.ID]; !exists || current != client {
		// Eski bir bağlantının geç gelen unregister'ı; yeni bağlantıya dokunma.
		return
	}

	delete(roomClients, client.ID)
	close(client.Send)
	close(client.Done)

	zap.L().Debug("client unregistered",
		zap.String("user_id", client.ID.String()),
		zap.String("room_id", client.RoomID.String()),
		zap.Int("remaining", len(roomClients)))

	if len(roomClients) == 0 {
		h.roomHub.StopSubscriber(client.RoomID)
		delete(h.roomsClients, client.RoomID)
	}
}

// readPump, istemciden gelen komutları okur. Hız sınırlayıcı, socket'i
// floodlayan istemcinin komutlarını sessizce düşürür.
func (h *Hub) readPump(client *domain.Client) {
	defer func() {
		h.unregister <- client
		client.Conn.Close()
	}()

	limiter := rate.NewLimiter(rate.Limit(5), 10)

	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, payload, err := client.Conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.L().Debug("client read error", zap.Error(err))
			}
			break
		}

		if !limiter.Allow() {
			continue
		}

		var action ClientAction
		if err := json.Unmarshal(payload, &action); err != nil {
			zap.L().Debug("failed to unmarshal client action", zap.Error(err))
			continue
		}

		switch action.Action {
		case "ping":
			h.sendToClient(client, &Message{Type: "pong"})
		case "request_game_state":
			snapshot, err := h.snapshot.GetSnapshotByID(client.RoomID)
			if err != nil {
				h.sendToClient(client, &Message{Type: "error", Content: err.Error()})
				continue
			}
			redacted := snapshot.RedactFor(client.ID)
			h.sendToClient(client, &Message{Type: "game_state_update", Content: redacted})
		default:
			zap.L().Debug("unknown client action", zap.String("action", action.Action))
		}
	}
}

// writePump, Send kanalındaki mesajları yazar ve bağlantıyı ping'lerle
// canlı tutar.
func (h *Hub) writePump(client *domain.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.TextMessage, msg)
			client.WriteLock.Unlock()
			if err != nil {
				zap.L().Debug("websocket write error", zap.Error(err))
				return
			}

		case <-ticker.C:
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.PingMessage, nil)
			client.WriteLock.Unlock()
			if err != nil {
				return
			}

		case <-client.Done:
			return
		}
	}
}

func (h *Hub) sendToClient(client *domain.Client, msg *Message) {
	messageBytes, err := json.Marshal(msg)
	if err != nil {
		zap.L().Error("failed to marshal message", zap.Error(err))
		return
	}

	select {
	case client.Send <- messageBytes:
	default:
		zap.L().Warn("client send channel full, dropping message",
			zap.String("user_id", client.ID.String()))
	}
}

// BroadcastEvent, olayı odadaki tüm istemcilere gönderir. Snapshot taşıyan
// olaylarda her alıcı yalnızca kendi elini görür.
func (h *Hub) BroadcastEvent(roomID uuid.UUID, event domain.GameEvent) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	roomClients, ok := h.roomsClients[roomID]
	if !ok {
		return
	}

	for _, client := range roomClients {
		view := event
		if event.Snapshot != nil {
			redacted := event.Snapshot.RedactFor(client.ID)
			view.Snapshot = &redacted
		}
		h.sendToClient(client, &Message{Type: event.Type, Content: view})
	}
}

func (h *Hub) GetRoomClientCount(roomID uuid.UUID) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if clients, ok := h.roomsClients[roomID]; ok {
		return len(clients)
	}
	return 0
}
