package main

import (
	"github.com/MkMuhammetKaradag/uno-backend/config"
	"github.com/MkMuhammetKaradag/uno-backend/internal/bootstrap"
	_ "github.com/MkMuhammetKaradag/uno-backend/log"

	"go.uber.org/zap"
)

func main() {
	appConfig := config.Read()
	defer zap.L().Sync()
	zap.L().Info("app starting...", zap.String("app name", appConfig.App.Name))

	app := bootstrap.NewApp(appConfig)

	app.Start()
}
