package game

import (
	"math/rand"
	"sync"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Manager, bellekteki oda kayıt defteridir. Odalar birbirinden bağımsızdır;
// her odanın kendi kilidi vardır ve tek bir operasyon boyunca tutulur. Global
// kilit sadece harita erişimini korur.
type Manager struct {
	mu     sync.RWMutex
	rooms  map[uuid.UUID]*roomEntry
	byCode map[string]uuid.UUID
	engine *Engine
}

type roomEntry struct {
	mu   sync.Mutex
	room *domain.Room
}

func NewManager(engine *Engine) *Manager {
	return &Manager{
		rooms:  make(map[uuid.UUID]*roomEntry),
		byCode: make(map[string]uuid.UUID),
		engine: engine,
	}
}

// LeaveResult, ayrılma politikasının sonucunu taşır: oyun ortasında ayrılma
// odayı yok eder ve "aborted" olayı gerektirir; bekleyen odadan ayrılma
// normal "player left" olayıdır.
type LeaveResult struct {
	RoomID        uuid.UUID
	Aborted       bool
	RoomDestroyed bool
	Username      string
	Snapshot      *domain.Snapshot // oda hâlâ yaşıyorsa dolu
}

// CreateRoom, bekleyen yeni bir oda oluşturur ve kurucuyu 0. pozisyona ekler.
func (m *Manager) CreateRoom(userID uuid.UUID, username string) (*domain.Snapshot, error) {
	m.mu.Lock()
	code := m.generateCodeLocked()
	room := domain.NewRoom(code)
	room.AddPlayer(userID, username)
	entry := &roomEntry{room: room}
	m.rooms[room.ID] = entry
	m.byCode[code] = room.ID
	m.mu.Unlock()

	zap.L().Info("room created",
		zap.String("room_id", room.ID.String()),
		zap.String("code", code),
		zap.String("creator", username))

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return m.engine.Snapshot(room), nil
}

// JoinRoom, kullanıcıyı koduyla bulunan odaya ekler.
func (m *Manager) JoinRoom(code string, userID uuid.UUID, username string) (*domain.Snapshot, error) {
	entry, err := m.entryByCode(code)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	room := entry.room
	if room.Status != domain.StatusWaiting {
		return nil, domain.ErrAlreadyInProgress
	}
	if room.IsFull() {
		return nil, domain.ErrRoomFull
	}
	if room.PlayerByUserID(userID) != nil {
		return nil, domain.ErrAlreadyJoined
	}

	room.AddPlayer(userID, username)
	return m.engine.Snapshot(room), nil
}

// StartGame, odadaki bir üyenin isteğiyle oyunu başlatır.
func (m *Manager) StartGame(code string, userID uuid.UUID) (*domain.Snapshot, error) {
	entry, err := m.entryByCode(code)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	room := entry.room
	if room.PlayerByUserID(userID) == nil {
		return nil, domain.ErrNotAMember
	}
	if err := m.engine.StartGame(room); err != nil {
		return nil, err
	}
	return m.engine.Snapshot(room), nil
}

// PlayCard, kartı kural motoruna oynatır ve taze snapshot ile döner.
func (m *Manager) PlayCard(code string, userID uuid.UUID, card domain.Card, chosenColor domain.Color) (*PlayResult, *domain.Snapshot, error) {
	entry, err := m.entryByCode(code)
	if err != nil {
		return nil, nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	room := entry.room
	player := room.PlayerByUserID(userID)
	if player == nil {
		return nil, nil, domain.ErrNotAMember
	}

	result, err := m.engine.PlayCard(room, player, card, chosenColor)
	if err != nil {
		return nil, nil, err
	}
	return result, m.engine.Snapshot(room), nil
}

// DrawCard, oyuncuya çekme yığınından kart çektirir.
func (m *Manager) DrawCard(code string, userID uuid.UUID) (*DrawResult, *domain.Snapshot, error) {
	entry, err := m.entryByCode(code)
	if err != nil {
		return nil, nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	room := entry.room
	player := room.PlayerByUserID(userID)
	if player == nil {
		return nil, nil, domain.ErrNotAMember
	}

	result, err := m.engine.DrawCard(room, player)
	if err != nil {
		return nil, nil, err
	}
	return result, m.engine.Snapshot(room), nil
}

// LeaveRoom, ayrılma politikasını oda kilidi altında uygular: oyun devam
// ederken ayrılan oyuncu odayı yok eder; bekleyen odada sadece oyuncu çıkar,
// oda boşalırsa yok edilir.
func (m *Manager) LeaveRoom(code string, userID uuid.UUID) (*LeaveResult, error) {
	entry, err := m.entryByCode(code)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	room := entry.room
	player := room.PlayerByUserID(userID)
	if player == nil {
		return nil, domain.ErrNotAMember
	}

	result := &LeaveResult{RoomID: room.ID, Username: player.Username}

	if room.InProgress() {
		result.Aborted = true
		result.RoomDestroyed = true
		m.destroyRoom(room)
		zap.L().Info("room aborted, player left mid-game",
			zap.String("room_id", room.ID.String()),
			zap.String("username", player.Username))
		return result, nil
	}

	room.RemovePlayer(userID)

	if len(room.Players) == 0 {
		result.RoomDestroyed = true
		m.destroyRoom(room)
		return result, nil
	}

	result.Snapshot = m.engine.Snapshot(room)
	return result, nil
}

// GetSnapshot, odanın tam (redaksiyonsuz) snapshot'ını döndürür.
func (m *Manager) GetSnapshot(code string) (*domain.Snapshot, error) {
	entry, err := m.entryByCode(code)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return m.engine.Snapshot(entry.room), nil
}

// GetSnapshotByID, hub'ın oda UUID'si ile snapshot almasını sağlar.
func (m *Manager) GetSnapshotByID(roomID uuid.UUID) (*domain.Snapshot, error) {
	m.mu.RLock()
	entry, ok := m.rooms[roomID]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return m.engine.Snapshot(entry.room), nil
}

// RoomIDByCode, oda kodunu kalıcı iç kimliğe çevirir. Kod insanlar için,
// UUID sahiplik ve abonelik içindir; ikisi bağımsız anahtarlardır.
func (m *Manager) RoomIDByCode(code string) (uuid.UUID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	roomID, ok := m.byCode[code]
	if !ok {
		return uuid.Nil, domain.ErrRoomNotFound
	}
	return roomID, nil
}

// IsMember, kullanıcının odada oyuncusu olup olmadığını söyler.
func (m *Manager) IsMember(roomID uuid.UUID, userID uuid.UUID) bool {
	m.mu.RLock()
	entry, ok := m.rooms[roomID]
	m.mu.RUnlock()
	if !ok {
		return false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.room.PlayerByUserID(userID) != nil
}

// ListWaitingRooms, katılıma açık odaların özetlerini döndürür.
func (m *Manager) ListWaitingRooms() []domain.RoomSummary {
	m.mu.RLock()
	entries := make([]*roomEntry, 0, len(m.rooms))
	for _, entry := range m.rooms {
		entries = append(entries, entry)
	}
	m.mu.RUnlock()

	summaries := make([]domain.RoomSummary, 0, len(entries))
	for _, entry := range entries {
		entry.mu.Lock()
		if entry.room.Status == domain.StatusWaiting {
			summaries = append(summaries, m.engine.Snapshot(entry.room).Room)
		}
		entry.mu.Unlock()
	}
	return summaries
}

func (m *Manager) entryByCode(code string) (*roomEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	roomID, ok := m.byCode[code]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	entry, ok := m.rooms[roomID]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return entry, nil
}

// destroyRoom, odayı kayıt defterinden düşürür. Çağıran oda kilidini tutuyor
// olmalıdır; harita kilidi burada ayrıca alınır.
func (m *Manager) destroyRoom(room *domain.Room) {
	m.mu.Lock()
	delete(m.rooms, room.ID)
	delete(m.byCode, room.Code)
	m.mu.Unlock()
}

// generateCodeLocked, insan girebilecek kısa bir oda kodu üretir. Karışan
// karakterler (0/O, 1/I) alfabede yoktur. m.mu tutulurken çağrılmalıdır.
func (m *Manager) generateCodeLocked() string {
	for {
		code := make([]byte, domain.RoomCodeSize)
		for i := range code {
			code[i] = roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))]
		}
		if _, exists := m.byCode[string(code)]; !exists {
			return string(code)
		}
	}
}
