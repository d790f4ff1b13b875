// Package logger оборачивает zap с настройкой через окружение (dev/prod).
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Zap struct {
	*zap.Logger
}

func New(env, level string) (*Zap, error) {
	var cfg zap.Config
	if env == "prod" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("неизвестный уровень логирования %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &Zap{Logger: log}, nil
}

// Nop возвращает логгер-заглушку для тестов и опциональных зависимостей.
func Nop() *Zap {
	return &Zap{Logger: zap.NewNop()}
}
