package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"

	"github.com/paxosraft/quorumbot/internal/app"
	"github.com/paxosraft/quorumbot/internal/config"
	"github.com/paxosraft/quorumbot/internal/logger"
)

func main() {
	// a missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
