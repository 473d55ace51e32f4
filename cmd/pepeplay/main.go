package main

import (
	"context"
	"errors"
	"os"

	"github.com/borislavgotsev27/pepeplay/internal/logger"

	"github.com/borislavgotsev27/pepeplay/internal/app"
	"github.com/borislavgotsev27/pepeplay/internal/config"
)

func main() {
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
