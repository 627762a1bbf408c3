package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, DeckSize)

	counts := make(map[Card]int, DeckSize)
	for _, c := range deck {
		counts[c]++
	}

	for _, color := range []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow} {
		assert.Equal(t, 1, counts[Card{Color: color, Value: "0", CardType: CardNumber}], "one zero per color")

		for n := '1'; n <= '9'; n++ {
			card := Card{Color: color, Value: string(n), CardType: CardNumber}
			assert.Equal(t, 2, counts[card], "two %s of %s", card.Value, color)
		}

		for _, special := range []CardType{CardSkip, CardReverse, CardDrawTwo} {
			card := Card{Color: color, Value: string(special), CardType: special}
			assert.Equal(t, 2, counts[card], "two %s of %s", special, color)
		}
	}

	assert.Equal(t, 4, counts[Card{Color: ColorWild, Value: string(CardWild), CardType: CardWild}])
	assert.Equal(t, 4, counts[Card{Color: ColorWild, Value: string(CardWildDrawFour), CardType: CardWildDrawFour}])
}

func TestCanPlayOn(t *testing.T) {
	topRedFive := Card{Color: ColorRed, Value: "5", CardType: CardNumber}

	tests := []struct {
		name        string
		card        Card
		top         Card
		activeColor Color
		want        bool
	}{
		{
			name: "same color different value",
			card: Card{Color: ColorRed, Value: "9", CardType: CardNumber},
			top:  topRedFive,
			want: true,
		},
		{
			name: "same value different color",
			card: Card{Color: ColorBlue, Value: "5", CardType: CardNumber},
			top:  topRedFive,
			want: true,
		},
		{
			name: "different color and value",
			card: Card{Color: ColorBlue, Value: "9", CardType: CardNumber},
			top:  topRedFive,
			want: false,
		},
		{
			name: "wild always playable",
			card: Card{Color: ColorWild, Value: string(CardWild), CardType: CardWild},
			top:  topRedFive,
			want: true,
		},
		{
			name: "wild draw four always playable",
			card: Card{Color: ColorWild, Value: string(CardWildDrawFour), CardType: CardWildDrawFour},
			top:  topRedFive,
			want: true,
		},
		{
			name:        "matches chosen color on top of wild",
			card:        Card{Color: ColorGreen, Value: "3", CardType: CardNumber},
			top:         Card{Color: ColorWild, Value: string(CardWild), CardType: CardWild},
			activeColor: ColorGreen,
			want:        true,
		},
		{
			name:        "does not match chosen color on top of wild",
			card:        Card{Color: ColorRed, Value: "3", CardType: CardNumber},
			top:         Card{Color: ColorWild, Value: string(CardWild), CardType: CardWild},
			activeColor: ColorGreen,
			want:        false,
		},
		{
			name: "skip on skip of another color",
			card: Card{Color: ColorBlue, Value: string(CardSkip), CardType: CardSkip},
			top:  Card{Color: ColorRed, Value: string(CardSkip), CardType: CardSkip},
			want: true,
		},
		{
			name:        "active color overrides top color",
			card:        Card{Color: ColorYellow, Value: "7", CardType: CardNumber},
			top:         topRedFive,
			activeColor: ColorYellow,
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.CanPlayOn(tt.top, tt.activeColor))
		})
	}
}

func TestDrawPenalty(t *testing.T) {
	assert.Equal(t, 2, Card{Color: ColorRed, Value: string(CardDrawTwo), CardType: CardDrawTwo}.DrawPenalty())
	assert.Equal(t, 4, Card{Color: ColorWild, Value: string(CardWildDrawFour), CardType: CardWildDrawFour}.DrawPenalty())
	assert.Equal(t, 0, Card{Color: ColorRed, Value: "5", CardType: CardNumber}.DrawPenalty())
	assert.Equal(t, 0, Card{Color: ColorRed, Value: string(CardSkip), CardType: CardSkip}.DrawPenalty())
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical(Card{Color: ColorRed, Value: "0", CardType: CardNumber}))
	assert.True(t, IsCanonical(Card{Color: ColorWild, Value: string(CardWild), CardType: CardWild}))

	// renkli joker veya uydurma değerler destede yoktur
	assert.False(t, IsCanonical(Card{Color: ColorRed, Value: string(CardWild), CardType: CardWild}))
	assert.False(t, IsCanonical(Card{Color: ColorBlue, Value: "10", CardType: CardNumber}))
	assert.False(t, IsCanonical(Card{Color: ColorWild, Value: "5", CardType: CardNumber}))
}

func TestIsPlayableColor(t *testing.T) {
	for _, c := range []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow} {
		assert.True(t, IsPlayableColor(c))
	}
	assert.False(t, IsPlayableColor(ColorWild))
	assert.False(t, IsPlayableColor(Color("")))
	assert.False(t, IsPlayableColor(Color("purple")))
}
