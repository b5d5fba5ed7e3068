package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sulnaq/snti/backend/internal/config"
	"github.com/sulnaq/snti/backend/internal/handler"
	"github.com/sulnaq/snti/backend/internal/metrics"
	"github.com/sulnaq/snti/backend/internal/question"
	"github.com/sulnaq/snti/backend/internal/service/ai"
	"github.com/sulnaq/snti/backend/internal/service/conversation"
	"github.com/sulnaq/snti/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// The archive is optional; without a database path sessions live only in
	// memory.
	var archive store.Archive
	if cfg.Assessment.DBPath != "" {
		sqliteArchive, err := store.NewSQLiteArchive(cfg.Assessment.DBPath)
		if err != nil {
			log.Fatalf("failed to open session archive: %v", err)
		}
		defer sqliteArchive.Close()
		archive = sqliteArchive
		log.Printf("session archive enabled at %s", cfg.Assessment.DBPath)
	} else {
		log.Println("SNTI_DB_PATH not set, session archive disabled")
	}

	sessions := store.NewMemoryStore(archive)
	go drainArchiveErrors(ctx, sessions.ArchiveErrors())
	go store.RunSweeper(ctx, sessions, cfg.Assessment.SweepInterval, cfg.Assessment.SessionMaxAge)

	// Initialize AI follow-up service
	var generator conversation.Generator
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI follow-up, check the Ark environment variables")
		} else {
			generator = aiService
			log.Println("AI follow-up service initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, skipping AI follow-up initialization")
	}

	recorder, metricsHandler := metrics.NewPrometheus()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	convService := conversation.NewService(
		sessions,
		question.NewStaticProvider(),
		recorder,
		generator,
		rng,
		conversation.Config{
			ClassicQuestions:  cfg.Assessment.ClassicQuestions,
			BalancedQuestions: cfg.Assessment.BalancedQuestions,
		},
	)

	router := handler.NewRouter(convService, sessions, metricsHandler)

	startServer(ctx, cfg.Server, router)
}

// drainArchiveErrors keeps the persistence failure channel from filling up
// and surfaces failures in the log.
func drainArchiveErrors(ctx context.Context, errs <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-errs:
			log.Printf("[main] session archive write failed: %v", err)
		}
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("SNTI assessment backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
