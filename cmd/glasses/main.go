package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"

	"smart-glasses/config"
	"smart-glasses/internal/application"
	"smart-glasses/internal/domain"
	"smart-glasses/internal/infra/audio"
	"smart-glasses/internal/infra/camera"
	"smart-glasses/internal/infra/counter"
	"smart-glasses/internal/infra/display"
	"smart-glasses/internal/infra/dropbox"
	"smart-glasses/internal/infra/espeak"
	"smart-glasses/internal/infra/news"
	"smart-glasses/internal/infra/openai"
	"smart-glasses/internal/infra/twilio"
	"smart-glasses/internal/infra/wikipedia"
	"smart-glasses/internal/infra/wolfram"
)

func main() {
	configPath := pflag.StringP("config", "c", "config.yaml", "path to config file")
	envFile := pflag.StringP("env", "e", ".env", "env file path")
	logLevel := pflag.StringP("log", "l", "", "log level override")
	pflag.Parse()

	// Missing .env is fine, credentials may already be in the environment.
	_ = godotenv.Load(*envFile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logger := setupLogger(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	// An unreachable display is the one startup failure that aborts the
	// process before the loop starts.
	surface := display.NewConsole(os.Stdout)
	if err := surface.Open(); err != nil {
		logger.Error("display unreachable", "error", err)
		os.Exit(1)
	}
	defer surface.Close()

	recorder := createRecorder(cfg.Audio, logger)
	transcriber := openai.NewWhisperClient(cfg.OpenAI.APIKey, cfg.OpenAI.Language)
	speaker := espeak.NewSpeaker(cfg.Speech.Voice, cfg.Speech.Speed)

	knowledge := application.NewChain(logger,
		wolfram.NewClient(cfg.Wolfram.AppID),
		wikipedia.NewClient(),
	)

	var uploader application.Uploader = &application.NoopUploader{}
	if cfg.Dropbox.AccessToken != "" {
		uploader = dropbox.NewClient(cfg.Dropbox.AccessToken, cfg.Dropbox.Folder)
	}

	assistant := application.NewAssistant(application.Deps{
		Recorder:    recorder,
		Transcriber: transcriber,
		Speaker:     speaker,
		Display:     surface,
		Knowledge:   knowledge,
		News:        news.NewFetcher(cfg.News.FeedURL),
		SMS:         twilio.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber),
		Camera:      camera.New(cfg.Camera.StillCommand, cfg.Camera.VideoCommand),
		Transcoder:  camera.NewTranscoder(cfg.Camera.TranscodeCommand),
		Uploader:    uploader,
		Contacts:    domain.NewDirectory(cfg.Contacts),
		PhotoCount:  counter.NewFile(cfg.Counters.PhotoFile),
		VideoCount:  counter.NewFile(cfg.Counters.VideoFile),
		Logger:      logger,
	}, application.Options{
		MediaDir:      cfg.Camera.MediaDir,
		WeatherQuery:  cfg.Weather.Query,
		HeadlineCount: cfg.News.Headlines,
		VideoWindow:   time.Duration(cfg.Camera.VideoSeconds) * time.Second,
	})

	logger.Info("starting smart glasses assistant",
		"audio_source", cfg.Audio.Source,
		"contacts", len(cfg.Contacts),
	)

	if err := assistant.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("assistant error", "error", err)
		os.Exit(1)
	}
}

func createRecorder(cfg config.AudioConfig, logger *slog.Logger) application.Recorder {
	window := time.Duration(cfg.ListenSeconds) * time.Second
	switch cfg.Source {
	case "file":
		return audio.NewFileRecorder(cfg.FileDir)
	case "microphone":
		return audio.NewMicrophoneRecorder(cfg.SampleRate, window, logger)
	default:
		logger.Warn("unknown audio source, using microphone", "source", cfg.Source)
		return audio.NewMicrophoneRecorder(cfg.SampleRate, window, logger)
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: level})
	}

	return slog.New(handler)
}
