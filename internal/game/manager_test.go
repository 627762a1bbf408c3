package game

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() *Manager {
	return NewManager(NewEngine())
}

func TestCreateRoom(t *testing.T) {
	manager := newManager()
	userID := uuid.New()

	snapshot, err := manager.CreateRoom(userID, "ayse")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusWaiting, snapshot.Room.Status)
	assert.Len(t, snapshot.Room.Code, domain.RoomCodeSize)
	require.Len(t, snapshot.Players, 1)
	assert.Equal(t, userID, snapshot.Players[0].UserID)
	assert.Equal(t, 0, snapshot.Players[0].Position)

	for _, r := range snapshot.Room.Code {
		assert.True(t, strings.ContainsRune(roomCodeAlphabet, r), "code uses the safe alphabet")
	}
}

func TestJoinRoom(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		manager := newManager()
		snapshot, err := manager.CreateRoom(uuid.New(), "ayse")
		require.NoError(t, err)

		joined, err := manager.JoinRoom(snapshot.Room.Code, uuid.New(), "mehmet")
		require.NoError(t, err)
		assert.Equal(t, 2, joined.Room.PlayerCount)
		assert.True(t, joined.Room.CanStart)
	})

	t.Run("unknown code", func(t *testing.T) {
		manager := newManager()
		_, err := manager.JoinRoom("ZZZZZZ", uuid.New(), "mehmet")
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	})

	t.Run("already joined", func(t *testing.T) {
		manager := newManager()
		userID := uuid.New()
		snapshot, err := manager.CreateRoom(userID, "ayse")
		require.NoError(t, err)

		_, err = manager.JoinRoom(snapshot.Room.Code, userID, "ayse")
		assert.ErrorIs(t, err, domain.ErrAlreadyJoined)
	})

	t.Run("room full", func(t *testing.T) {
		manager := newManager()
		snapshot, err := manager.CreateRoom(uuid.New(), "ayse")
		require.NoError(t, err)

		for i := 1; i < domain.MaxPlayers; i++ {
			_, err := manager.JoinRoom(snapshot.Room.Code, uuid.New(), "player")
			require.NoError(t, err)
		}

		_, err = manager.JoinRoom(snapshot.Room.Code, uuid.New(), "latecomer")
		assert.ErrorIs(t, err, domain.ErrRoomFull)
	})

	t.Run("game already in progress", func(t *testing.T) {
		manager := newManager()
		userID := uuid.New()
		snapshot, err := manager.CreateRoom(userID, "ayse")
		require.NoError(t, err)
		_, err = manager.JoinRoom(snapshot.Room.Code, uuid.New(), "mehmet")
		require.NoError(t, err)
		_, err = manager.StartGame(snapshot.Room.Code, userID)
		require.NoError(t, err)

		_, err = manager.JoinRoom(snapshot.Room.Code, uuid.New(), "latecomer")
		assert.ErrorIs(t, err, domain.ErrAlreadyInProgress)
	})
}

func TestStartGameRequiresMembership(t *testing.T) {
	manager := newManager()
	snapshot, err := manager.CreateRoom(uuid.New(), "ayse")
	require.NoError(t, err)
	_, err = manager.JoinRoom(snapshot.Room.Code, uuid.New(), "mehmet")
	require.NoError(t, err)

	_, err = manager.StartGame(snapshot.Room.Code, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotAMember)
}

func TestStartGameNotEnoughPlayers(t *testing.T) {
	manager := newManager()
	userID := uuid.New()
	snapshot, err := manager.CreateRoom(userID, "ayse")
	require.NoError(t, err)

	_, err = manager.StartGame(snapshot.Room.Code, userID)
	assert.ErrorIs(t, err, domain.ErrNotEnoughPlayers)
}

func TestPlayCardRequiresMembership(t *testing.T) {
	manager := newManager()
	userID := uuid.New()
	snapshot, err := manager.CreateRoom(userID, "ayse")
	require.NoError(t, err)
	_, err = manager.JoinRoom(snapshot.Room.Code, uuid.New(), "mehmet")
	require.NoError(t, err)
	_, err = manager.StartGame(snapshot.Room.Code, userID)
	require.NoError(t, err)

	card := domain.Card{Color: domain.ColorRed, Value: "5", CardType: domain.CardNumber}
	_, _, err = manager.PlayCard(snapshot.Room.Code, uuid.New(), card, "")
	assert.ErrorIs(t, err, domain.ErrNotAMember)
}

func TestLeaveRoomPolicies(t *testing.T) {
	t.Run("leaving a waiting room", func(t *testing.T) {
		manager := newManager()
		creator := uuid.New()
		snapshot, err := manager.CreateRoom(creator, "ayse")
		require.NoError(t, err)
		other := uuid.New()
		_, err = manager.JoinRoom(snapshot.Room.Code, other, "mehmet")
		require.NoError(t, err)

		result, err := manager.LeaveRoom(snapshot.Room.Code, other)
		require.NoError(t, err)
		assert.False(t, result.Aborted)
		assert.False(t, result.RoomDestroyed)
		require.NotNil(t, result.Snapshot)
		assert.Equal(t, 1, result.Snapshot.Room.PlayerCount)
	})

	t.Run("last player leaving destroys the room", func(t *testing.T) {
		manager := newManager()
		creator := uuid.New()
		snapshot, err := manager.CreateRoom(creator, "ayse")
		require.NoError(t, err)

		result, err := manager.LeaveRoom(snapshot.Room.Code, creator)
		require.NoError(t, err)
		assert.True(t, result.RoomDestroyed)
		assert.False(t, result.Aborted)

		_, err = manager.GetSnapshot(snapshot.Room.Code)
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	})

	t.Run("leaving mid-game aborts", func(t *testing.T) {
		manager := newManager()
		creator := uuid.New()
		snapshot, err := manager.CreateRoom(creator, "ayse")
		require.NoError(t, err)
		_, err = manager.JoinRoom(snapshot.Room.Code, uuid.New(), "mehmet")
		require.NoError(t, err)
		_, err = manager.StartGame(snapshot.Room.Code, creator)
		require.NoError(t, err)

		result, err := manager.LeaveRoom(snapshot.Room.Code, creator)
		require.NoError(t, err)
		assert.True(t, result.Aborted)
		assert.True(t, result.RoomDestroyed)
		assert.Equal(t, "ayse", result.Username)

		_, err = manager.GetSnapshot(snapshot.Room.Code)
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	})

	t.Run("not a member", func(t *testing.T) {
		manager := newManager()
		snapshot, err := manager.CreateRoom(uuid.New(), "ayse")
		require.NoError(t, err)

		_, err = manager.LeaveRoom(snapshot.Room.Code, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotAMember)
	})
}

func TestListWaitingRooms(t *testing.T) {
	manager := newManager()

	creator := uuid.New()
	waiting, err := manager.CreateRoom(creator, "ayse")
	require.NoError(t, err)

	started, err := manager.CreateRoom(uuid.New(), "mehmet")
	require.NoError(t, err)
	startedCreator := uuid.New()
	_, err = manager.JoinRoom(started.Room.Code, startedCreator, "fatma")
	require.NoError(t, err)
	_, err = manager.StartGame(started.Room.Code, startedCreator)
	require.NoError(t, err)

	rooms := manager.ListWaitingRooms()
	require.Len(t, rooms, 1)
	assert.Equal(t, waiting.Room.Code, rooms[0].Code)
}

func TestRoomIDByCodeAndMembership(t *testing.T) {
	manager := newManager()
	userID := uuid.New()
	snapshot, err := manager.CreateRoom(userID, "ayse")
	require.NoError(t, err)

	roomID, err := manager.RoomIDByCode(snapshot.Room.Code)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Room.ID, roomID)

	assert.True(t, manager.IsMember(roomID, userID))
	assert.False(t, manager.IsMember(roomID, uuid.New()))

	_, err = manager.RoomIDByCode("ZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

// Aynı odaya eşzamanlı hamle yağdığında her istek oda kilidi altında tek tek
// değerlendirilir; sıra sahibi olmayan ErrNotYourTurn alır ve state bozulmaz.
// Açılışta atma yığını boş olduğundan sıra sahibi de çekemez, oynamak zorundadır.
func TestConcurrentDrawsSingleWinner(t *testing.T) {
	manager := newManager()
	creator := uuid.New()
	second := uuid.New()
	snapshot, err := manager.CreateRoom(creator, "ayse")
	require.NoError(t, err)
	_, err = manager.JoinRoom(snapshot.Room.Code, second, "mehmet")
	require.NoError(t, err)
	_, err = manager.StartGame(snapshot.Room.Code, creator)
	require.NoError(t, err)

	code := snapshot.Room.Code

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, id := range []uuid.UUID{creator, second} {
		wg.Add(1)
		go func(userID uuid.UUID) {
			defer wg.Done()
			_, _, err := manager.DrawCard(code, userID)
			results <- err
		}(id)
	}
	wg.Wait()
	close(results)

	notYourTurn := 0
	mustPlay := 0
	for err := range results {
		switch {
		case errors.Is(err, domain.ErrNotYourTurn):
			notYourTurn++
		case errors.Is(err, domain.ErrMustPlayPlayableCard):
			mustPlay++
		default:
			require.NoError(t, err)
		}
	}
	assert.Equal(t, 1, notYourTurn, "exactly one player is out of turn")
	assert.Equal(t, 1, mustPlay, "the turn holder must play, not draw")

	state, err := manager.GetSnapshot(code)
	require.NoError(t, err)

	total := state.DrawPileSize
	for _, p := range state.Players {
		total += p.HandSize
	}
	if state.TopCard != nil {
		total++
	}
	assert.Equal(t, domain.DeckSize, total, "cards are conserved under concurrency")
}
