package domain

import "errors"

// Oyun hataları kullanıcıya dönecek, kurtarılabilir hatalardır.
var (
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomFull             = errors.New("room is full")
	ErrAlreadyInProgress    = errors.New("game is already in progress or has finished")
	ErrAlreadyJoined        = errors.New("you are already in this room")
	ErrNotAMember           = errors.New("you are not in this room")
	ErrNotEnoughPlayers     = errors.New("need 2-4 players to start")
	ErrNotYourTurn          = errors.New("not your turn")
	ErrGameNotInProgress    = errors.New("game not in progress")
	ErrCardNotFound         = errors.New("card not found")
	ErrCardNotInHand        = errors.New("card not in hand")
	ErrInvalidPlay          = errors.New("invalid play")
	ErrMustChooseColor      = errors.New("a color must be chosen for a wild card")
	ErrMustPlayPlayableCard = errors.New("you hold a playable card and cannot draw")
	ErrNoCardsToDraw        = errors.New("no cards to draw")
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

// ErrDeckExhausted, deste kurulumundaki bir hatayı işaret eder; kullanıcı
// hatası değildir, start işlemini iptal eder ve loglanması gerekir.
var ErrDeckExhausted = errors.New("not enough cards in deck to deal")
