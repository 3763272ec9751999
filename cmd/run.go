package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kubev2v/clause-builder/internal/config"
	"github.com/kubev2v/clause-builder/internal/handlers"
	"github.com/kubev2v/clause-builder/internal/logger"
	"github.com/kubev2v/clause-builder/internal/server"
	"github.com/kubev2v/clause-builder/internal/services"
	"github.com/kubev2v/clause-builder/internal/store"
	"github.com/kubev2v/clause-builder/internal/store/migrations"
	"github.com/kubev2v/clause-builder/pkg/scheduler"
)

const shutdownTimeout = 10 * time.Second

func NewRunCommand(cfg *config.Configuration) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the clause builder API server",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			viper.AutomaticEnv()
			viper.SetEnvPrefix(envPrefix)
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			cobraflags.PresetRequiredFlags(envPrefix, make(map[*pflag.Flag]bool), cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfiguration(cfg); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	registerFlags(runCmd.Flags(), cfg)

	return runCmd
}

func registerFlags(flags *pflag.FlagSet, cfg *config.Configuration) {
	// server
	flags.IntVar(&cfg.Server.HTTPPort, "server-http-port", cfg.Server.HTTPPort, "Port the API listens on")
	flags.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "Server mode: dev serves plain HTTP, prod serves TLS and statics")
	flags.StringVar(&cfg.Server.StaticsFolder, "server-statics-folder", cfg.Server.StaticsFolder, "Folder holding the UI statics (prod mode)")
	flags.Int64Var(&cfg.Server.MaxUploadSize, "server-max-upload-size", cfg.Server.MaxUploadSize, "Maximum size of an uploaded file in bytes")
	flags.IntVar(&cfg.Server.PreviewRows, "server-preview-rows", cfg.Server.PreviewRows, "Rows returned in a workspace preview")

	// store
	flags.StringVar(&cfg.Store.DBPath, "store-db-path", cfg.Store.DBPath, "DuckDB file holding workspaces; empty keeps them in memory")

	// warehouse
	flags.StringVar(&cfg.Warehouse.Driver, "warehouse-driver", cfg.Warehouse.Driver, "Warehouse driver (duckdb, mysql, sqlite)")
	flags.StringVar(&cfg.Warehouse.DSN, "warehouse-dsn", cfg.Warehouse.DSN, "Warehouse data source name")
	flags.IntVar(&cfg.Warehouse.NumWorkers, "warehouse-num-workers", cfg.Warehouse.NumWorkers, "Source queries run concurrently")
	flags.IntVar(&cfg.Warehouse.MaxRows, "warehouse-max-rows", cfg.Warehouse.MaxRows, "Maximum rows read from a source query; 0 is unlimited")

	// cache
	flags.DurationVar(&cfg.Cache.TTL, "cache-ttl", cfg.Cache.TTL, "How long workspaces stay in the memory cache")
}

func validateConfiguration(cfg *config.Configuration) error {
	switch cfg.Server.ServerMode {
	case server.DevServer:
	case server.ProductionServer:
		if cfg.Server.StaticsFolder == "" {
			return errors.New("statics folder must be set when server mode is prod")
		}
	default:
		return fmt.Errorf("invalid server mode %q: must be %q or %q", cfg.Server.ServerMode, server.DevServer, server.ProductionServer)
	}

	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http-port %d: must be between 1 and 65535", cfg.Server.HTTPPort)
	}

	if cfg.Warehouse.NumWorkers <= 0 {
		return fmt.Errorf("invalid num-workers %d: must be greater than 0", cfg.Warehouse.NumWorkers)
	}

	switch cfg.Warehouse.Driver {
	case store.DriverDuckDB:
	case store.DriverMySQL, store.DriverSQLite:
		if cfg.Warehouse.DSN == "" {
			return fmt.Errorf("warehouse-dsn must be set for the %s driver", cfg.Warehouse.Driver)
		}
	default:
		return fmt.Errorf("invalid warehouse driver %q", cfg.Warehouse.Driver)
	}

	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("invalid cache-ttl %s: must be positive", cfg.Cache.TTL)
	}

	return cfg.Validate()
}

func run(ctx context.Context, cfg *config.Configuration) error {
	undo, err := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer undo()

	log := zap.S().Named("run")

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPath := cfg.Store.DBPath
	if dbPath == "" {
		dbPath = ":memory:"
	}
	db, err := store.NewDB(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	if err := migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	st := store.NewStore(db)
	defer st.Close()

	whDB, err := store.OpenWarehouse(cfg.Warehouse.Driver, cfg.Warehouse.DSN)
	if err != nil {
		return fmt.Errorf("failed to open warehouse: %w", err)
	}
	defer whDB.Close()

	sched := scheduler.NewScheduler(cfg.Warehouse.NumWorkers)
	defer sched.Close()

	workspaceSrv := services.NewWorkspaceService(st, sched, store.NewWarehouse(whDB, cfg.Warehouse.MaxRows), cfg.Cache.TTL)
	clauseSrv := services.NewClauseService(workspaceSrv)
	h := handlers.New(workspaceSrv, clauseSrv, cfg.Server.PreviewRows, cfg.Server.MaxUploadSize)

	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		h.RegisterRoutes(router)
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("starting server", "port", cfg.Server.HTTPPort, "mode", cfg.Server.ServerMode, "warehouse", cfg.Warehouse.Driver)
		if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	srv.Stop(shutdownCtx)

	return nil
}
