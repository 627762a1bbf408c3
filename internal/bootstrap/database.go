package bootstrap

import (
	"context"

	"github.com/MkMuhammetKaradag/uno-backend/config"
	"github.com/MkMuhammetKaradag/uno-backend/domain"
	"github.com/MkMuhammetKaradag/uno-backend/internal/initializer"

	"github.com/google/uuid"
)

type PostgresRepository interface {
	Close() error
	CreateOrGetUser(ctx context.Context, username string) (domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error)
	RecordGameResult(ctx context.Context, winnerUserID uuid.UUID, loserUserIDs []uuid.UUID) error
}

func InitDatabase(config config.Config) PostgresRepository {
	return initializer.InitDatabase(config)
}
