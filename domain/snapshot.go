package domain

import "github.com/google/uuid"

// Snapshot, dışarıya açılan tek durum temsilidir. Eller değiştiği için her
// istekte yeniden hesaplanır, asla cache'lenmez.
type Snapshot struct {
	Room         RoomSummary     `json:"room"`
	Players      []PlayerSummary `json:"players"`
	TopCard      *Card           `json:"top_card,omitempty"`
	DrawPileSize int             `json:"draw_pile_size"`
	Winner       *WinnerSummary  `json:"winner,omitempty"`
}

type RoomSummary struct {
	ID           uuid.UUID  `json:"id"`
	Code         string     `json:"code"`
	Status       RoomStatus `json:"status"`
	Direction    Direction  `json:"direction"`
	CurrentColor Color      `json:"current_color,omitempty"`
	TurnPlayerID uuid.UUID  `json:"turn_player_id,omitempty"`
	PlayerCount  int        `json:"player_count"`
	CanStart     bool       `json:"can_start"`
	IsFull       bool       `json:"is_full"`
}

type PlayerSummary struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Position int       `json:"position"`
	HandSize int       `json:"hand_size"`
	Hand     []Card    `json:"hand,omitempty"`
}

type WinnerSummary struct {
	PlayerID uuid.UUID `json:"player_id"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// RedactFor, snapshot'ın bir kopyasını döndürür; verilen kullanıcı dışındaki
// oyuncuların el içerikleri çıkarılır (el boyutları kalır). Transport katmanı
// yayın yapmadan önce bunu çağırır.
func (s Snapshot) RedactFor(userID uuid.UUID) Snapshot {
	redacted := s
	redacted.Players = make([]PlayerSummary, len(s.Players))
	for i, p := range s.Players {
		redacted.Players[i] = p
		if p.UserID != userID {
			redacted.Players[i].Hand = nil
		}
	}
	return redacted
}
