package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPlayerPositions(t *testing.T) {
	room := NewRoom("ABC234")
	p1 := room.AddPlayer(uuid.New(), "ayse")
	p2 := room.AddPlayer(uuid.New(), "mehmet")
	p3 := room.AddPlayer(uuid.New(), "fatma")

	assert.Equal(t, 0, p1.Position)
	assert.Equal(t, 1, p2.Position)
	assert.Equal(t, 2, p3.Position)
}

func TestRemovePlayerCompactsPositions(t *testing.T) {
	room := NewRoom("ABC234")
	p1 := room.AddPlayer(uuid.New(), "ayse")
	p2 := room.AddPlayer(uuid.New(), "mehmet")
	p3 := room.AddPlayer(uuid.New(), "fatma")

	require.True(t, room.RemovePlayer(p2.UserID))
	require.Len(t, room.Players, 2)
	assert.Equal(t, 0, p1.Position)
	assert.Equal(t, 1, p3.Position)

	assert.False(t, room.RemovePlayer(p2.UserID), "already removed")
}

func TestNextPlayerBothDirections(t *testing.T) {
	room := NewRoom("ABC234")
	p1 := room.AddPlayer(uuid.New(), "ayse")
	p2 := room.AddPlayer(uuid.New(), "mehmet")
	p3 := room.AddPlayer(uuid.New(), "fatma")

	assert.Equal(t, p2.ID, room.NextPlayer(p1).ID)
	assert.Equal(t, p3.ID, room.NextPlayer(p2).ID)
	assert.Equal(t, p1.ID, room.NextPlayer(p3).ID, "wraps around")

	room.ReverseDirection()
	assert.Equal(t, p3.ID, room.NextPlayer(p1).ID)
	assert.Equal(t, p1.ID, room.NextPlayer(p2).ID)
	assert.Equal(t, p2.ID, room.NextPlayer(p3).ID)

	room.ReverseDirection()
	assert.Equal(t, p2.ID, room.NextPlayer(p1).ID, "double reverse restores order")
}

func TestRemoveCardExactMatch(t *testing.T) {
	redFive := Card{Color: ColorRed, Value: "5", CardType: CardNumber}
	blueFive := Card{Color: ColorBlue, Value: "5", CardType: CardNumber}

	player := &Player{Hand: []Card{redFive, blueFive, redFive}}

	require.True(t, player.RemoveCard(redFive))
	assert.Equal(t, []Card{blueFive, redFive}, player.Hand, "only the first structural match is removed")

	assert.False(t, player.RemoveCard(Card{Color: ColorGreen, Value: "5", CardType: CardNumber}))
	assert.Len(t, player.Hand, 2, "hand unchanged when card is absent")
}

func TestShuffleDiscardIntoDrawPile(t *testing.T) {
	top := Card{Color: ColorRed, Value: "5", CardType: CardNumber}
	buried := []Card{
		{Color: ColorBlue, Value: "1", CardType: CardNumber},
		{Color: ColorGreen, Value: "2", CardType: CardNumber},
		{Color: ColorYellow, Value: "3", CardType: CardNumber},
	}

	gs := &GameState{
		DrawPile:    []Card{},
		DiscardPile: append(append([]Card{}, buried...), top),
	}

	gs.ShuffleDiscardIntoDrawPile()

	require.Len(t, gs.DiscardPile, 1, "top card stays in the discard pile")
	assert.Equal(t, top, gs.DiscardPile[0])
	require.Len(t, gs.DrawPile, len(buried))

	// kart kaybı veya çoğalması yok
	counts := make(map[Card]int)
	for _, c := range gs.DrawPile {
		counts[c]++
	}
	for _, c := range buried {
		assert.Equal(t, 1, counts[c])
	}
}

func TestShuffleDiscardNoopWithSingleCard(t *testing.T) {
	top := Card{Color: ColorRed, Value: "5", CardType: CardNumber}
	gs := &GameState{DiscardPile: []Card{top}}

	gs.ShuffleDiscardIntoDrawPile()

	assert.Empty(t, gs.DrawPile)
	assert.Equal(t, []Card{top}, gs.DiscardPile)
}

func TestEnsureDrawPileHasCards(t *testing.T) {
	top := Card{Color: ColorRed, Value: "5", CardType: CardNumber}
	buried := Card{Color: ColorBlue, Value: "1", CardType: CardNumber}

	gs := &GameState{DiscardPile: []Card{buried, top}}
	gs.EnsureDrawPileHasCards()

	assert.Equal(t, []Card{buried}, gs.DrawPile)
	assert.Equal(t, []Card{top}, gs.DiscardPile)

	// çekme yığını doluysa dokunulmaz
	gs2 := &GameState{DrawPile: []Card{buried}, DiscardPile: []Card{top}}
	gs2.EnsureDrawPileHasCards()
	assert.Equal(t, []Card{buried}, gs2.DrawPile)
}

func TestSnapshotRedactFor(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	snapshot := &Snapshot{
		Players: []PlayerSummary{
			{UserID: me, HandSize: 2, Hand: []Card{{Color: ColorRed, Value: "1", CardType: CardNumber}, {Color: ColorRed, Value: "2", CardType: CardNumber}}},
			{UserID: other, HandSize: 3, Hand: []Card{{Color: ColorBlue, Value: "1", CardType: CardNumber}, {Color: ColorBlue, Value: "2", CardType: CardNumber}, {Color: ColorBlue, Value: "3", CardType: CardNumber}}},
		},
	}

	redacted := snapshot.RedactFor(me)

	require.Len(t, redacted.Players, 2)
	assert.Len(t, redacted.Players[0].Hand, 2, "own hand stays visible")
	assert.Nil(t, redacted.Players[1].Hand, "other hands are hidden")
	assert.Equal(t, 3, redacted.Players[1].HandSize, "hand size stays visible")

	// orijinal snapshot değişmemeli
	assert.Len(t, snapshot.Players[1].Hand, 3)
}
