package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/maumcare/counseling-backend/internal/config"
	"github.com/maumcare/counseling-backend/internal/handler"
	"github.com/maumcare/counseling-backend/internal/model/institution"
	"github.com/maumcare/counseling-backend/internal/orchestrator"
	"github.com/maumcare/counseling-backend/internal/service/ai"
	"github.com/maumcare/counseling-backend/internal/service/search"
	"github.com/maumcare/counseling-backend/internal/session"
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

	store := session.NewStore()

	// Initialize AI service
	var generator orchestrator.Generator
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing with fallback replies - Ark 모델 환경 변수를 확인하세요")
		} else {
			generator = aiService
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("Ark 자격 증명이 없어 모델 없이 키워드 선별로 동작합니다")
	}

	// Initialize search capability
	var searcher orchestrator.Searcher
	if cfg.Search.Enabled {
		searcher = search.NewWebSearcher(cfg.Search)
		log.Println("Web search enabled for crisis support lookup")
	} else {
		directory := institution.NewMemoryStore(institution.Seed())
		searcher = search.NewDirectorySearcher(directory, cfg.Search.Region)
		log.Println("Web search disabled, using seeded institution directory")
	}

	orch := orchestrator.New(generator, searcher, store, orchestrator.Config{
		StepLimit:   cfg.Orchestrator.StepLimit,
		SearchQuery: fmt.Sprintf("%s 정신건강 상담 기관 연락처", cfg.Search.Region),
	})

	router := handler.NewRouter(orch, store)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("counseling backend listening on %s", addr)
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
