package main

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlite/backend/internal/config"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	db, err := models.Connect(cfg.DatabaseFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := models.SeedCategories(db); err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.New(cfg, db)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
