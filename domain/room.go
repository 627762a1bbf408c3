package domain

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// RoomStatus, odanın yaşam döngüsünü temsil eder.
// waiting -> in_progress -> finished; "finished" terminaldir.
type RoomStatus string

const (
	StatusWaiting    RoomStatus = "waiting"
	StatusInProgress RoomStatus = "in_progress"
	StatusFinished   RoomStatus = "finished"
)

// Direction, tur dönüş yönü.
type Direction string

const (
	DirectionClockwise        Direction = "clockwise"
	DirectionCounterClockwise Direction = "counter_clockwise"
)

// MaxPlayers, bir odadaki en fazla oyuncu sayısı.
const (
	MaxPlayers   = 4
	MinPlayers   = 2
	InitialHand  = 7
	RoomCodeSize = 6
)

// Player, bir odadaki oyuncuyu temsil eder. Eli sadece kural motoru değiştirir.
type Player struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Position int       `json:"position"`
	Hand     []Card    `json:"hand"`
}

func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// RemoveCard, elden yapısal olarak eşleşen ilk kartı çıkarır.
// Kart elde yoksa false döner ve el değişmez.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Player) HasCard(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

func (p *Player) HandSize() int {
	return len(p.Hand)
}

func (p *Player) HasWon() bool {
	return len(p.Hand) == 0
}

// GameState, odanın çekme ve atma yığınlarını tutar. discard_pile'ın son
// elemanı üst (aktif) karttır; draw_pile'ın ilk elemanı sıradaki karttır.
type GameState struct {
	DrawPile    []Card `json:"draw_pile"`
	DiscardPile []Card `json:"discard_pile"`
}

func (gs *GameState) TopCard() (Card, bool) {
	if len(gs.DiscardPile) == 0 {
		return Card{}, false
	}
	return gs.DiscardPile[len(gs.DiscardPile)-1], true
}

func (gs *GameState) AddToDiscardPile(card Card) {
	gs.DiscardPile = append(gs.DiscardPile, card)
}

// DrawCard, çekme yığınının önünden bir kart alır.
func (gs *GameState) DrawCard() (Card, bool) {
	if len(gs.DrawPile) == 0 {
		return Card{}, false
	}
	card := gs.DrawPile[0]
	gs.DrawPile = gs.DrawPile[1:]
	return card, true
}

func (gs *GameState) CardsRemainingInDrawPile() int {
	return len(gs.DrawPile)
}

// ShuffleDiscardIntoDrawPile, atma yığınını (üst kart hariç) karıştırıp yeni
// çekme yığını yapar. Atma yığınında tek kart varsa hiçbir şey yapmaz.
func (gs *GameState) ShuffleDiscardIntoDrawPile() {
	if len(gs.DiscardPile) <= 1 {
		return
	}

	top := gs.DiscardPile[len(gs.DiscardPile)-1]
	toShuffle := make([]Card, len(gs.DiscardPile)-1)
	copy(toShuffle, gs.DiscardPile[:len(gs.DiscardPile)-1])

	rand.Shuffle(len(toShuffle), func(i, j int) {
		toShuffle[i], toShuffle[j] = toShuffle[j], toShuffle[i]
	})

	gs.DrawPile = toShuffle
	gs.DiscardPile = []Card{top}
}

// EnsureDrawPileHasCards, gerekirse atma yığınını geri karıştırır.
func (gs *GameState) EnsureDrawPileHasCards() {
	if len(gs.DrawPile) == 0 && len(gs.DiscardPile) > 1 {
		gs.ShuffleDiscardIntoDrawPile()
	}
}

// Room, oyun odasının kök aggregate'idir. Oyuncularını ve oyun durumunu o
// sahiplenir; oda yok edildiğinde hepsi birlikte gider.
type Room struct {
	ID           uuid.UUID  `json:"id"`
	Code         string     `json:"code"`
	Status       RoomStatus `json:"status"`
	Direction    Direction  `json:"direction"`
	CurrentColor Color      `json:"current_color,omitempty"` // oyun başlayana kadar boş
	TurnPlayerID uuid.UUID  `json:"turn_player_id,omitempty"`
	WinnerID     uuid.UUID  `json:"winner_player_id,omitempty"`
	Players      []*Player  `json:"players"` // pozisyon sırasına göre
	Game         *GameState `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewRoom(code string) *Room {
	return &Room{
		ID:        uuid.New(),
		Code:      code,
		Status:    StatusWaiting,
		Direction: DirectionClockwise,
		Players:   make([]*Player, 0, MaxPlayers),
		CreatedAt: time.Now(),
	}
}

func (r *Room) IsFull() bool {
	return len(r.Players) >= MaxPlayers
}

func (r *Room) CanStart() bool {
	return len(r.Players) >= MinPlayers && r.Status == StatusWaiting
}

func (r *Room) InProgress() bool {
	return r.Status == StatusInProgress
}

func (r *Room) PlayerByUserID(userID uuid.UUID) *Player {
	for _, p := range r.Players {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

func (r *Room) PlayerByID(playerID uuid.UUID) *Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// AddPlayer, kullanıcıyı bir sonraki pozisyona ekler. Kapasite ve tekrar
// katılım kontrolleri çağıranın sorumluluğundadır.
func (r *Room) AddPlayer(userID uuid.UUID, username string) *Player {
	player := &Player{
		ID:       uuid.New(),
		UserID:   userID,
		Username: username,
		Position: len(r.Players),
		Hand:     []Card{},
	}
	r.Players = append(r.Players, player)
	return player
}

// RemovePlayer, oyuncuyu çıkarır ve pozisyonları yeniden sıklaştırır
// (katılım sırası korunur). Oyuncu bulunamazsa false döner.
func (r *Room) RemovePlayer(userID uuid.UUID) bool {
	for i, p := range r.Players {
		if p.UserID == userID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			for pos, remaining := range r.Players {
				remaining.Position = pos
			}
			return true
		}
	}
	return false
}

// NextPlayer, mevcut yöne göre bir sonraki oyuncuyu bulur.
func (r *Room) NextPlayer(current *Player) *Player {
	count := len(r.Players)
	if count == 0 {
		return nil
	}

	index := 0
	for i, p := range r.Players {
		if p.ID == current.ID {
			index = i
			break
		}
	}

	if r.Direction == DirectionClockwise {
		index = (index + 1) % count
	} else {
		index = (index - 1 + count) % count
	}
	return r.Players[index]
}

func (r *Room) TurnPlayer() *Player {
	if r.TurnPlayerID == uuid.Nil {
		return nil
	}
	return r.PlayerByID(r.TurnPlayerID)
}

func (r *Room) ReverseDirection() {
	if r.Direction == DirectionClockwise {
		r.Direction = DirectionCounterClockwise
	} else {
		r.Direction = DirectionClockwise
	}
}
