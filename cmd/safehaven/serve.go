package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/PabloGalante/safehaven/internal/adapters/http"
	memstore "github.com/PabloGalante/safehaven/internal/adapters/storage/memory"
	"github.com/PabloGalante/safehaven/internal/app/chat"
	"github.com/PabloGalante/safehaven/internal/app/forum"
	"github.com/PabloGalante/safehaven/internal/app/journal"
	"github.com/PabloGalante/safehaven/internal/knowledge"
	"github.com/PabloGalante/safehaven/internal/observability"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (overrides SAFEHAVEN_PORT)")
	return cmd
}

func runServe(port int) error {
	cfg, kb, err := setup()
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Port = port
	}
	log := observability.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()
	llmClient, chatReady := newLLM(ctx, cfg, log)
	postStore := newPostStore(ctx, cfg, log)

	handler, err := httpadapter.NewServer(httpadapter.Deps{
		Chat:          chat.NewService(llmClient, chatReady, kb, metrics),
		Journal:       journal.NewService(),
		Forum:         forum.NewService(postStore, cfg.FeedCacheTTL, metrics),
		Search:        knowledge.NewIndex(kb),
		Sessions:      memstore.NewSessionStore(cfg.SessionTTL),
		Metrics:       metrics,
		SecureCookies: !cfg.IsDevelopment(),
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("environment", string(cfg.Environment)).
			Bool("chat_available", chatReady).
			Bool("store_available", postStore != nil).
			Msg("SafeHaven listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("server forced to shutdown")
			return err
		}
		log.Info().Msg("server exited")
		return nil
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}
