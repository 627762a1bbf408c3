package game

import (
	"fmt"
	"math/rand"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine, tur tabanlı kural motorudur. Oda durumu üzerinde saf, yan etkisiz
// mutasyonlar yapar; yayın, kalıcılık ve kilitleme çağıranın işidir.
// Tüm metotlar odanın kilidi tutulurken çağrılmalıdır.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// PlayResult, başarılı bir kart oynama işleminin sonucudur.
type PlayResult struct {
	CardPlayed   domain.Card
	GameFinished bool
	Winner       *domain.Player
	LoserUserIDs []uuid.UUID
}

// DrawResult, başarılı bir kart çekme işleminin sonucudur. CanPlay, çekilen
// kartın şu an oynanabilir olduğunu söyler; tur otomatik ilerlemez.
type DrawResult struct {
	CardDrawn domain.Card
	CanPlay   bool
}

// StartGame, desteyi karıştırır, pozisyon sırasına göre her oyuncuya 7 kart
// dağıtır ve rastgele bir oyuncuya ilk turu verir. Atma yığını boş başlar,
// ilk kart açılmaz ve aktif renk belirlenmez.
func (e *Engine) StartGame(room *domain.Room) error {
	if room.Status != domain.StatusWaiting {
		return domain.ErrAlreadyInProgress
	}
	if len(room.Players) < domain.MinPlayers || len(room.Players) > domain.MaxPlayers {
		return domain.ErrNotEnoughPlayers
	}

	deck := domain.NewDeck()
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	// Deste yetersizse bu bir konfigürasyon hatasıdır, kullanıcı hatası değil.
	needed := len(room.Players) * domain.InitialHand
	if len(deck) < needed {
		zap.L().Error("deck too short to deal, deck construction is broken",
			zap.String("room_id", room.ID.String()),
			zap.Int("needed", needed),
			zap.Int("got", len(deck)))
		return fmt.Errorf("%w: needed %d, got %d", domain.ErrDeckExhausted, needed, len(deck))
	}

	for _, player := range room.Players {
		player.Hand = append([]domain.Card{}, deck[:domain.InitialHand]...)
		deck = deck[domain.InitialHand:]
	}

	room.Game = &domain.GameState{
		DrawPile:    deck,
		DiscardPile: []domain.Card{},
	}
	room.CurrentColor = ""
	room.TurnPlayerID = room.Players[rand.Intn(len(room.Players))].ID
	room.Status = domain.StatusInProgress

	return nil
}

// PlayCard, oyuncunun kartını doğrular ve oynar. Oyunun ilk kartı koşulsuz
// geçerlidir (atma yığını boşken CanPlayOn kontrolü atlanır). Joker kartlar
// için renk seçimi zorunludur; renk verilmemişse durum değişmeden hata döner.
func (e *Engine) PlayCard(room *domain.Room, player *domain.Player, card domain.Card, chosenColor domain.Color) (*PlayResult, error) {
	if room.Status != domain.StatusInProgress {
		return nil, domain.ErrGameNotInProgress
	}
	if player.ID != room.TurnPlayerID {
		return nil, domain.ErrNotYourTurn
	}
	if !domain.IsCanonical(card) {
		return nil, domain.ErrCardNotFound
	}
	if !player.HasCard(card) {
		return nil, domain.ErrCardNotInHand
	}

	if top, ok := room.Game.TopCard(); ok {
		if !card.CanPlayOn(top, room.CurrentColor) {
			return nil, domain.ErrInvalidPlay
		}
	}

	// Mutasyondan önce tüm hata yolları bitmiş olmalı.
	if card.IsWild() {
		if !domain.IsPlayableColor(chosenColor) {
			return nil, domain.ErrMustChooseColor
		}
	}

	player.RemoveCard(card)
	room.Game.AddToDiscardPile(card)

	if card.IsWild() {
		room.CurrentColor = chosenColor
	} else {
		room.CurrentColor = card.Color
	}

	if player.HasWon() {
		room.Status = domain.StatusFinished
		room.WinnerID = player.ID

		result := &PlayResult{
			CardPlayed:   card,
			GameFinished: true,
			Winner:       player,
		}
		for _, p := range room.Players {
			if p.ID != player.ID {
				result.LoserUserIDs = append(result.LoserUserIDs, p.UserID)
			}
		}
		// Kazanan belli: tur ilerletilmez, özel efekt uygulanmaz.
		return result, nil
	}

	e.applyCardEffects(room, card, player)

	return &PlayResult{CardPlayed: card}, nil
}

// DrawCard, gönüllü kart çekmedir. Oyuncunun elinde oynanabilir bir kart
// varsa çekemez; bu uygulamanın benimsediği ev kuralıdır. Çekme sonrası tur
// ilerlemez, oyuncu çektiği kartı oynayabilirse oynamak zorundadır.
func (e *Engine) DrawCard(room *domain.Room, player *domain.Player) (*DrawResult, error) {
	if room.Status != domain.StatusInProgress {
		return nil, domain.ErrGameNotInProgress
	}
	if player.ID != room.TurnPlayerID {
		return nil, domain.ErrNotYourTurn
	}
	if e.hasPlayableCard(room, player) {
		return nil, domain.ErrMustPlayPlayableCard
	}

	room.Game.EnsureDrawPileHasCards()
	card, ok := room.Game.DrawCard()
	if !ok {
		// 108 kart korunduğu sürece buraya düşülmemeli ama yine de ele alınır.
		return nil, domain.ErrNoCardsToDraw
	}

	player.AddCard(card)

	canPlay := false
	if top, ok := room.Game.TopCard(); ok {
		canPlay = card.CanPlayOn(top, room.CurrentColor)
	} else {
		canPlay = true // atma yığını boşsa her kart oynanabilir
	}

	return &DrawResult{CardDrawn: card, CanPlay: canPlay}, nil
}

// Snapshot, odanın dışa dönük durumunu her çağrıda taze kurar.
func (e *Engine) Snapshot(room *domain.Room) *domain.Snapshot {
	snapshot := &domain.Snapshot{
		Room: domain.RoomSummary{
			ID:           room.ID,
			Code:         room.Code,
			Status:       room.Status,
			Direction:    room.Direction,
			CurrentColor: room.CurrentColor,
			TurnPlayerID: room.TurnPlayerID,
			PlayerCount:  len(room.Players),
			CanStart:     room.CanStart(),
			IsFull:       room.IsFull(),
		},
		Players: make([]domain.PlayerSummary, 0, len(room.Players)),
	}

	for _, p := range room.Players {
		hand := make([]domain.Card, len(p.Hand))
		copy(hand, p.Hand)
		snapshot.Players = append(snapshot.Players, domain.PlayerSummary{
			ID:       p.ID,
			UserID:   p.UserID,
			Username: p.Username,
			Position: p.Position,
			HandSize: p.HandSize(),
			Hand:     hand,
		})
	}

	if room.Game != nil {
		if top, ok := room.Game.TopCard(); ok {
			snapshot.TopCard = &top
		}
		snapshot.DrawPileSize = room.Game.CardsRemainingInDrawPile()
	}

	if room.Status == domain.StatusFinished && room.WinnerID != uuid.Nil {
		if winner := room.PlayerByID(room.WinnerID); winner != nil {
			snapshot.Winner = &domain.WinnerSummary{
				PlayerID: winner.ID,
				UserID:   winner.UserID,
				Username: winner.Username,
			}
		}
	}

	return snapshot
}

// applyCardEffects, kazanmayan bir oynamadan sonra kartın özel efektini
// uygular; turu ilerletmek de buna dahildir.
func (e *Engine) applyCardEffects(room *domain.Room, card domain.Card, current *domain.Player) {
	switch card.CardType {
	case domain.CardSkip:
		e.advanceTurn(room)
		e.advanceTurn(room)
	case domain.CardReverse:
		// Yön değişir, tur yeni yönde bir kez ilerler. İki oyuncu için ayrı bir
		// özel durum yoktur.
		room.ReverseDirection()
		e.advanceTurn(room)
	case domain.CardDrawTwo, domain.CardWildDrawFour:
		next := room.NextPlayer(current)
		e.forceDrawCards(room, next, card.DrawPenalty())
		e.advanceTurn(room) // kart çeken oyuncu atlanır
		e.advanceTurn(room)
	default:
		// number ve düz wild: tur bir kez ilerler
		e.advanceTurn(room)
	}
}

func (e *Engine) advanceTurn(room *domain.Room) {
	current := room.TurnPlayer()
	if current == nil {
		return
	}
	room.TurnPlayerID = room.NextPlayer(current).ID
}

// forceDrawCards, cezalı oyuncuya n kart çektirir. Çekme yığını biterse atma
// yığını (üst kart sabit kalarak) geri karıştırılır.
func (e *Engine) forceDrawCards(room *domain.Room, player *domain.Player, count int) {
	for i := 0; i < count; i++ {
		room.Game.EnsureDrawPileHasCards()
		card, ok := room.Game.DrawCard()
		if !ok {
			zap.L().Warn("both piles exhausted during forced draw",
				zap.String("room_id", room.ID.String()),
				zap.Int("drawn", i),
				zap.Int("wanted", count))
			return
		}
		player.AddCard(card)
	}
}

func (e *Engine) hasPlayableCard(room *domain.Room, player *domain.Player) bool {
	top, ok := room.Game.TopCard()
	if !ok {
		// İlk kart hâlâ oynanmamış: elindeki her kart oynanabilir.
		return len(player.Hand) > 0
	}
	for _, c := range player.Hand {
		if c.CanPlayOn(top, room.CurrentColor) {
			return true
		}
	}
	return false
}
