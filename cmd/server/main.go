package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ebookforge/internal/api"
	"ebookforge/internal/config"
	"ebookforge/internal/engine"
	"ebookforge/internal/render"
	"ebookforge/internal/store"
	"ebookforge/internal/worker"
)

func main() {
	// Optional .env next to the binary; real env vars win.
	_ = godotenv.Load()
	cfg := config.Load()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}
	if err := os.MkdirAll(cfg.ScratchDir, 0o755); err != nil {
		log.Fatalf("create scratch dir: %v", err)
	}

	renderer, err := render.NewChromeRenderer()
	if err != nil {
		log.Fatalf("start renderer: %v", err)
	}
	defer renderer.Close()

	var archiver engine.Archiver
	if cfg.MySQL.Enabled() {
		archiver = store.New(cfg.MySQL)
		log.Println("archive store enabled")
	} else {
		log.Println("archive store not configured, records will not be persisted")
	}

	pipeline := engine.New(cfg, engine.GeminiFactory, engine.OpenAIImageFactory, renderer, archiver)

	// Start scratch janitor in background.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	janitor := worker.New(cfg.ScratchDir, cfg.ScratchTTL, cfg.SweepInterval)
	go janitor.Start(ctx)

	// Start API server.
	srv := api.New(pipeline, cfg)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Handler(),
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		cancel()
		httpServer.Shutdown(context.Background())
	}()

	fmt.Printf("ebookforge server listening on http://localhost:%s\n", cfg.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
