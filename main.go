package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/cashflow"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/config"
	v1 "github.com/rpmartinrodriguez/Reporte-Financiero/internal/controllers/v1"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/insights"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/jobs"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/ledger"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/notify"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/router"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

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

	// Create data directory
	if cfg.Database.Driver == "sqlite" {
		err = os.MkdirAll(filepath.Dir(cfg.Database.DSN), os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	// Connect to the database and migrate the schema
	db, err := models.Connect(models.Dialector(cfg.Database.Driver, cfg.Database.DSN))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	money, err := insights.NewMoney(cfg.Locale, cfg.Currency)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	today := func() types.Date {
		return types.Today(cfg.Location)
	}

	co := v1.Controller{
		DB:         db,
		Ledger:     ledger.New(db),
		Engine:     cashflow.NewEngine(db),
		Today:      today,
		NotifyDays: cfg.NotifyDays,
	}

	if cfg.Gemini.Enabled() {
		gemini, err := insights.NewGemini(ctx, cfg.Gemini)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		co.Narrator = insights.NewNarrator(gemini, money)
	} else {
		log.Info().Msg("GEMINI_API_KEY is not set, text generation is disabled")
	}

	if cfg.SMTP.Enabled() {
		co.Mailer, err = notify.NewMailer(cfg.SMTP, money)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	} else {
		log.Info().Msg("SMTP_HOST or DIGEST_RECIPIENTS is not set, e-mail digests are disabled")
	}

	scheduler := jobs.NewScheduler(
		jobs.Reconciliation(co.Ledger, cfg.ReconcileInterval),
		jobs.Digest(co.Engine, co.Mailer, today, cfg.NotifyDays, cfg.DigestInterval),
	)

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(co, r.Group("/"), cfg.EnablePprof)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Strs("jobs", scheduler.Jobs()).Msg("Starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Msg(err.Error())
	}

	stop()
	<-done
	log.Info().Msg("Server stopped")
}
