package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"matomeru/internal/archive"
	"matomeru/internal/bot"
	"matomeru/internal/config"
	"matomeru/internal/database"
	"matomeru/internal/extract"
	"matomeru/internal/pipeline"
	"matomeru/internal/summarizer"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WarnContext(ctx, "Failed to load .env file",
			"error", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return
	}

	db, err := database.New(ctx, cfg.DBPath, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize db",
			"error", err,
			"dbPath", cfg.DBPath)

		return
	}
	defer func() {
		if err = db.Close(); err != nil {
			log.ErrorContext(ctx, "Failed to close db",
				"error", err,
				"dbPath", cfg.DBPath)
		}
	}()
	log.InfoContext(ctx, "DB is initialized",
		"dbPath", cfg.DBPath)

	s, err := summarizer.NewOpenAISummarizer(cfg.OpenAIAPIKey, cfg.Model)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create OpenAI summarizer",
			"error", err,
			"model", cfg.Model)

		return
	}
	log.InfoContext(ctx, "OpenAI summarizer is initialized",
		"provider", "openai",
		"model", cfg.Model)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load AWS config",
			"error", err)

		return
	}

	writer, err := archive.NewS3Writer(s3.NewFromConfig(awsCfg), cfg.BucketName)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create archive writer",
			"error", err,
			"bucket", cfg.BucketName)

		return
	}

	p := pipeline.New(
		db,
		extract.NewPageExtractor(log),
		extract.NewTranscriptExtractor(cfg.TranscriptLangs, log),
		s,
		writer,
		log,
	)

	botInst, err := bot.New(cfg.ChannelSecret, cfg.ChannelToken, p, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize bot",
			"error", err)

		return
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.POST("/callback", botInst.Callback)

	go func() {
		if startErr := e.Start(cfg.Addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			log.ErrorContext(ctx, "Server stopped",
				"error", startErr,
				"addr", cfg.Addr)
			cancel()
		}
	}()
	log.InfoContext(ctx, "Server is started",
		"addr", cfg.Addr)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-c:
		log.InfoContext(ctx, "Shutdown signal is received",
			"signal", sig.String())
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "Failed to shut down server",
			"error", err)
	}

	log.InfoContext(ctx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())
}
