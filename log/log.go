// Package log, uygulama genelinde kullanılan zap logger'ı kurar.
// Yan etkisi için boş import edilir; sonrasında zap.L() her yerden erişilebilir.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func init() {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(config)
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	logger := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(logger)
}
