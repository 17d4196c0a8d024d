package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"itemsvc/pkg/api"
	"itemsvc/pkg/config"
	"itemsvc/pkg/logger"
	"itemsvc/pkg/otel"
)

// @title Items API
// @version 1.0
// @description Demo API for managing a list of items
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	cmd := &cobra.Command{
		Use:          "api",
		Short:        "Serve the items HTTP API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}

	f := cmd.Flags()
	f.Int("port", config.DefaultPort, "listen port (env PORT)")
	f.String("store", config.StoreMemory, "store backend: memory, sqlite, postgres, redis (env STORE)")
	f.String("sqlite-path", config.DefaultSQLitePath, "SQLite database file (env SQLITE_PATH)")
	f.String("log-level", "info", "minimum log level (env LOG_LEVEL)")
	_ = v.BindPFlag("port", f.Lookup("port"))
	_ = v.BindPFlag("store", f.Lookup("store"))
	_ = v.BindPFlag("sqlite_path", f.Lookup("sqlite-path"))
	_ = v.BindPFlag("log_level", f.Lookup("log-level"))

	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.New(os.Stdout, level, cfg.ServiceName, otel.GetTraceID)
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.ServiceName,
		Host:        cfg.OTELHost,
		Probability: cfg.TraceProbability,
	})
	if err != nil {
		log.Error(ctx, "init tracing", "error", err)
		return err
	}
	defer shutdown(context.Background())

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Error(ctx, "open store", "store", cfg.Store, "error", err)
		return err
	}
	defer closeStore()
	log.Info(ctx, "store ready", "store", cfg.Store)

	h := api.NewHandler(repo, log, cfg.ServiceName)
	router := api.NewRouter(h, log, tp.Tracer(cfg.ServiceName))
	srv := api.NewServer(router, log, api.ServerOptions{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.ShutdownTimeout,
	})
	if err := srv.Run(ctx); err != nil {
		log.Error(ctx, "server closed", "error", err)
		return err
	}
	return nil
}
