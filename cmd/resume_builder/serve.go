package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/voice"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds the graceful shutdown of the HTTP server.
const shutdownTimeout = 15 * time.Second

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the resume document, the live preview, PDF export,
AI assist and voice commands. Every change is saved to the configured snapshot backend.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	port := a.cfg.Port
	if servePort != 0 {
		port = servePort
	}

	editor, err := a.editor(ctx)
	if err != nil {
		return err
	}

	var classifier voice.Classifier
	if client, _ := a.llmClient(ctx); client != nil {
		classifier = voice.NewLLMClassifier(client)
	}

	exporter := export.NewPDFExporter(export.Options{
		ChromePath: a.cfg.ChromePath,
		Logger:     a.logger,
	})
	if !exporter.Available() {
		a.logger.Warn("chrome not found, PDF export disabled")
	}

	autosaver := storage.Autosave(a.store, a.snaps, a.logger)
	defer autosaver.Close()

	srv, err := server.New(server.Config{Port: port}, server.Deps{
		Store:      a.store,
		Editor:     editor,
		Classifier: classifier,
		Exporter:   exporter,
		Metrics:    a.metrics,
		Logger:     a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	a.logger.Info("resume builder ready",
		zap.Int("port", port),
		zap.String("storage", a.snaps.Backend().Name()),
		zap.Bool("ai", editor.Available()),
		zap.Bool("export", exporter.Available()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
