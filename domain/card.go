package domain

// Color, bir kartın rengini temsil eder. "wild" sadece joker kartlarda kullanılır.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorWild   Color = "wild"
)

// CardType, kartın tipini temsil eder.
type CardType string

const (
	CardNumber       CardType = "number"
	CardSkip         CardType = "skip"
	CardReverse      CardType = "reverse"
	CardDrawTwo      CardType = "draw_two"
	CardWild         CardType = "wild"
	CardWildDrawFour CardType = "wild_draw_four"
)

// Card, değişmez bir kart değeridir. Eşitlik yapısaldır (color, value, card_type).
type Card struct {
	Color    Color    `json:"color"`
	Value    string   `json:"value"`
	CardType CardType `json:"card_type"`
}

func (c Card) IsWild() bool {
	return c.CardType == CardWild || c.CardType == CardWildDrawFour
}

func (c Card) IsSpecial() bool {
	return c.CardType != CardNumber
}

// CanPlayOn, kartın mevcut üst kartın üzerine oynanıp oynanamayacağını söyler.
// Oynanabilirlik sorusunun tek kaynağı bu fonksiyondur.
func (c Card) CanPlayOn(top Card, activeColor Color) bool {
	if c.IsWild() {
		return true
	}
	if c.Color == top.Color {
		return true
	}
	if c.Value == top.Value && c.CardType == top.CardType {
		return true
	}
	if activeColor != "" && c.Color == activeColor {
		return true
	}
	return false
}

// DrawPenalty, kartın bir sonraki oyuncuya çektirdiği kart sayısı.
func (c Card) DrawPenalty() int {
	switch c.CardType {
	case CardDrawTwo:
		return 2
	case CardWildDrawFour:
		return 4
	default:
		return 0
	}
}

// DeckSize, kanonik destedeki kart sayısı.
const DeckSize = 108

var playableColors = []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

// IsPlayableColor, joker sonrası seçilebilecek renkleri doğrular ("wild" seçilemez).
func IsPlayableColor(color Color) bool {
	for _, c := range playableColors {
		if c == color {
			return true
		}
	}
	return false
}

// NewDeck, kanonik 108 kartlık desteyi deterministik sırayla üretir:
// her renk için bir "0", "1".."9" ve skip/reverse/draw_two'dan ikişer adet,
// artı dörder adet wild ve wild_draw_four.
func NewDeck() []Card {
	cards := make([]Card, 0, DeckSize)

	for _, color := range playableColors {
		cards = append(cards, Card{Color: color, Value: "0", CardType: CardNumber})

		for n := '1'; n <= '9'; n++ {
			card := Card{Color: color, Value: string(n), CardType: CardNumber}
			cards = append(cards, card, card)
		}

		for _, special := range []CardType{CardSkip, CardReverse, CardDrawTwo} {
			card := Card{Color: color, Value: string(special), CardType: special}
			cards = append(cards, card, card)
		}
	}

	for i := 0; i < 4; i++ {
		cards = append(cards, Card{Color: ColorWild, Value: string(CardWild), CardType: CardWild})
		cards = append(cards, Card{Color: ColorWild, Value: string(CardWildDrawFour), CardType: CardWildDrawFour})
	}

	return cards
}

var canonicalCards = func() map[Card]struct{} {
	set := make(map[Card]struct{}, DeckSize)
	for _, c := range NewDeck() {
		set[c] = struct{}{}
	}
	return set
}()

// IsCanonical, kartın kanonik destede var olup olmadığını kontrol eder.
// Veritabanı sorgusu yok; statik tabloya bakılır.
func IsCanonical(c Card) bool {
	_, ok := canonicalCards[c]
	return ok
}
