package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordquiz/internal/config"
	"wordquiz/internal/database"
	"wordquiz/internal/handler"
	"wordquiz/internal/logger"
	"wordquiz/internal/middleware"
	"wordquiz/internal/quizstate"
	"wordquiz/internal/repository/postgres"
	"wordquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting vocabulary bot", zap.String("env", cfg.Env))

	if err := cfg.ValidateBot(); err != nil {
		log.Fatal("Invalid bot config", zap.Error(err))
	}

	// Connect to database with retries
	db, err := database.Connect(cfg.DSN(), database.DefaultConnectOptions(), log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Database connection established")

	// Run migrations
	if err := database.Migrate(db, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	wordRepo := postgres.NewWordRepo(db)
	vocabRepo := postgres.NewVocabularyRepo(db)

	// Initialize services
	wordService := service.NewWordService(wordRepo, vocabRepo, log, cfg.Quiz.PageSize)
	quizService := service.NewQuizService(wordRepo, vocabRepo, quizstate.NewStore(), log, service.QuizOptions{
		PadSize:     cfg.Quiz.PadSize,
		Distractors: cfg.Quiz.Distractors,
	})
	statsService := service.NewStatsService(vocabRepo, log)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := wordService.SeedStarterWords(seedCtx); err != nil {
		cancelSeed()
		log.Fatal("Failed to seed starter words", zap.Error(err))
	}
	cancelSeed()

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			log.Error("Unhandled bot error", zap.Error(err))
		},
	})
	if err != nil {
		log.Fatal("Failed to create bot", zap.Error(err))
	}

	log.Info("Telegram bot initialized")

	bot.Use(middleware.Recover(log), middleware.Logging(log))

	// Initialize handler
	h := handler.NewHandler(bot, wordService, quizService, statsService, log)
	h.RegisterHandlers()

	log.Info("Handlers registered")

	// Start bot in background
	go func() {
		log.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	log.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()

	log.Info("Bot stopped gracefully")
}
