package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"todo-list-app/internal/config"
	"todo-list-app/internal/httpapi"
	"todo-list-app/internal/logging"
	"todo-list-app/internal/store/filestore"
	"todo-list-app/internal/store/memorystore"
	"todo-list-app/internal/task"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "todo-server: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("todo-server", pflag.ContinueOnError)
	flags := config.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	flags.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if flags.PrintConfig {
		return config.WriteTOML(os.Stdout, cfg)
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	repo, err := openStore(cfg.Store, logger)
	if err != nil {
		return err
	}
	service := task.NewService(repo)
	handler := httpapi.NewServer(service, logger, httpapi.Options{MaxBodyBytes: cfg.HTTP.MaxBodyBytes})

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           handler,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
	logger.Info("bye")
	return nil
}

func openStore(cfg config.StoreConfig, logger *log.Logger) (task.Repository, error) {
	if cfg.Memory {
		logger.Warn("using in-memory store; tasks are lost on exit")
		return memorystore.NewTaskStore(), nil
	}

	st, err := filestore.New(cfg.Path, filestore.Options{Validate: cfg.Validate})
	if err != nil {
		return nil, err
	}
	// Touch the file so a bad path or corrupt file fails at startup.
	tasks, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("open task store: %w", err)
	}
	logger.Info("task store ready", "path", st.Path(), "tasks", len(tasks), "validate", cfg.Validate)
	return st, nil
}
