package domain

import "github.com/google/uuid"

// Oda kanalında yayınlanan olay tipleri.
const (
	EventPlayerJoined = "player_joined"
	EventPlayerLeft   = "player_left"
	EventGameStarted  = "game_started"
	EventCardPlayed   = "card_played"
	EventCardDrawn    = "card_drawn"
	EventGameOver     = "game_over"
	EventGameAborted  = "game_aborted"
)

// GameEvent, kural motorunun sonucunu yayın katmanına taşıyan zarftır.
// Snapshot dolu ise hub her alıcı için RedactFor uygulayarak gönderir.
type GameEvent struct {
	RoomID   uuid.UUID `json:"room_id"`
	Type     string    `json:"type"`
	PlayerID uuid.UUID `json:"player_id,omitempty"`
	Username string    `json:"username,omitempty"`
	Card     *Card     `json:"card,omitempty"`
	CanPlay  *bool     `json:"can_play,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`
}
