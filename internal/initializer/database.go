package initializer

import (
	"github.com/MkMuhammetKaradag/uno-backend/config"
	"github.com/MkMuhammetKaradag/uno-backend/infra/postgres"

	"go.uber.org/zap"
)

func InitDatabase(appConfig config.Config) *postgres.Repository {
	repo, err := postgres.NewRepository(appConfig.Postgres.ConnString())
	if err != nil {
		zap.L().Fatal("postgres bağlantısı kurulamadı", zap.Error(err))
	}
	return repo
}
