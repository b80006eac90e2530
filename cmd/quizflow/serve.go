package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/conorfennell/quizflow/internal/bank"
	"github.com/conorfennell/quizflow/internal/config"
	"github.com/conorfennell/quizflow/internal/logging"
	"github.com/conorfennell/quizflow/internal/session"
	"github.com/conorfennell/quizflow/internal/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	questions, err := bank.Load(cfg.Quiz.Bank)
	if err != nil {
		return err
	}
	version := bank.Fingerprint(questions)
	logger.Info("question bank loaded",
		zap.Int("questions", len(questions)),
		zap.String("version", version),
		zap.String("source", bankSource(cfg.Quiz.Bank)),
	)

	store := session.NewStore(questions, cfg.FlowOptions(), cfg.Session.IdleTTL, logger.Named("session"))
	handler, err := web.NewServer(store, web.Options{
		CheckoutURL: cfg.Offer.CheckoutURL,
		BankVersion: version,
	}, logger.Named("http"))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return store.Run(gctx, cfg.Session.SweepInterval)
	})
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func bankSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
