package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// roomHub, oda kanallarının Redis aboneliklerini yönetir. Odaya ilk istemci
// bağlandığında abonelik açılır, son istemci ayrılınca kapanır.
type roomHub struct {
	redisClient *redis.Client
	hub         *Hub
	subscribers map[uuid.UUID]*redis.PubSub
	mutex       sync.Mutex
}

func NewRoomHub(redisClient *redis.Client, hub *Hub) *roomHub {
	return &roomHub{
		redisClient: redisClient,
		hub:         hub,
		subscribers: make(map[uuid.UUID]*redis.PubSub),
	}
}

func roomChannel(roomID uuid.UUID) string {
	return fmt.Sprintf("room:%s", roomID.String())
}

// StartSubscriber, oda kanalını dinlemeye başlar ve gelen olayları hub'a
// iletir.
func (rh *roomHub) StartSubscriber(roomID uuid.UUID) {
	rh.mutex.Lock()
	defer rh.mutex.Unlock()

	if _, ok := rh.subscribers[roomID]; ok {
		return
	}

	channel := roomChannel(roomID)
	pubsub := rh.redisClient.Subscribe(context.Background(), channel)
	rh.subscribers[roomID] = pubsub

	go func() {
		defer pubsub.Close()
		zap.L().Info("subscribed to room channel", zap.String("channel", channel))

		for msg := range pubsub.Channel() {
			var event domain.GameEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				zap.L().Error("failed to unmarshal room event",
					zap.String("channel", channel),
					zap.Error(err))
				continue
			}
			rh.hub.BroadcastEvent(roomID, event)
		}

		zap.L().Info("unsubscribed from room channel", zap.String("channel", channel))
	}()
}

// StopSubscriber, oda kanalının aboneliğini sonlandırır.
func (rh *roomHub) StopSubscriber(roomID uuid.UUID) {
	rh.mutex.Lock()
	defer rh.mutex.Unlock()

	if pubsub, ok := rh.subscribers[roomID]; ok {
		pubsub.Unsubscribe(context.Background(), roomChannel(roomID))
		delete(rh.subscribers, roomID)
	}
}
