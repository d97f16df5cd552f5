package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/james997788/monyfun/internal/advice"
	"github.com/james997788/monyfun/internal/router"
	"github.com/james997788/monyfun/internal/storage"
	"github.com/james997788/monyfun/internal/store"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Optional .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dbPath, ok := os.LookupEnv("DB_PATH")
	if !ok {
		dataDir := filepath.Join(".", "data")
		err := os.MkdirAll(dataDir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		dbPath = filepath.Join(dataDir, "monyfun.db")
	}

	db, err := storage.Connect(dbPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	transactions, err := store.NewTransactionStore(db, time.Now)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	goals, err := store.NewGoalStore(db, time.Now)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	attendance, err := store.NewAttendanceStore(db, time.Now)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Mark today as absent when nobody checked in before the cutoff
	created, err := attendance.SweepAbsences()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	if created {
		log.Info().Msg("no check-in recorded before the cutoff, today marked as absent")
	}

	// Advice generation is optional, everything else works without a key
	var adviceService *advice.Service
	client, err := advice.NewGeminiClient(context.Background(), os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		if !errors.Is(err, advice.ErrNoAPIKey) {
			log.Fatal().Msg(err.Error())
		}

		log.Info().Msg("GEMINI_API_KEY is not set, advice generation is disabled")
	} else {
		adviceService = advice.NewService(client)
	}

	r, err := router.Router(router.Dependencies{
		Transactions: transactions,
		Goals:        goals,
		Attendance:   attendance,
		Advice:       adviceService,
	})
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
