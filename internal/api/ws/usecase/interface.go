package wsUsecase

import (
	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/google/uuid"
)

type Hub interface {
	RegisterClient(client *domain.Client)
}

// RoomRegistry, ws bağlantısının oda koduyla odayı bulmasını ve üyelik
// kontrolünü sağlar.
type RoomRegistry interface {
	RoomIDByCode(code string) (uuid.UUID, error)
	IsMember(roomID uuid.UUID, userID uuid.UUID) bool
}
