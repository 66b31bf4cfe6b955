package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	pb "github.com/wiltonos/lemniscate/gen/lemniscatepb"
	"github.com/wiltonos/lemniscate/internal/config"
	"github.com/wiltonos/lemniscate/internal/engine"
	"github.com/wiltonos/lemniscate/internal/journal"
	"github.com/wiltonos/lemniscate/internal/rpc"
	"github.com/wiltonos/lemniscate/internal/taskstore"
)

// #region command

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the coherence engine and gRPC service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// #endregion command

// #region serve

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := applyLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	jstore, err := journal.NewStore(cfg.JournalPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer jstore.Close()

	tasks, err := taskstore.NewStore(cfg.TaskDir)
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}

	eng := engine.New(cfg.EngineConfig(), logger, engine.WithJournal(jstore))
	if cfg.Goal != (config.GoalConfig{}) {
		if err := eng.SetGoal(cfg.Goal.Innovation, cfg.Goal.Stability); err != nil {
			return err
		}
	}

	session, err := openSession(tasks)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}
	grpcServer := grpc.NewServer()
	pb.RegisterLemniscateServiceServer(grpcServer, rpc.NewServer(eng, logger))

	if err := eng.Start(ctx); err != nil {
		return err
	}
	defer eng.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("grpc listening", zap.String("addr", cfg.GRPCAddr))
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		grpcServer.GracefulStop()
		return nil
	})
	if configPath != "" {
		g.Go(func() error {
			return config.Watch(gctx, configPath, logger, func(next config.Config) {
				if err := eng.SetGoal(next.Goal.Innovation, next.Goal.Stability); err != nil {
					logger.Warn("reloaded goal rejected", zap.Error(err))
				}
			})
		})
	}

	err = g.Wait()
	closeSession(tasks, session)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	logger.Info("daemon shut down", zap.String("session", session.ID))
	return nil
}

// #endregion serve

// #region session

// openSession records the daemon run in the task store so operators can
// audit when daemons ran and whether they shut down cleanly.
func openSession(tasks *taskstore.Store) (taskstore.Task, error) {
	now := time.Now().UTC()
	session := taskstore.Task{
		ID:        uuid.NewString(),
		Title:     "daemon session",
		Status:    taskstore.StatusInProgress,
		Tags:      []string{"session"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tasks.SaveTask(session); err != nil {
		return taskstore.Task{}, fmt.Errorf("record session: %w", err)
	}
	return session, nil
}

func closeSession(tasks *taskstore.Store, session taskstore.Task) {
	session.Status = taskstore.StatusDone
	session.UpdatedAt = time.Now().UTC()
	if err := tasks.SaveTask(session); err != nil {
		logger.Warn("close session", zap.Error(err))
	}
}

// #endregion session

// #region logging

// applyLogLevel rebuilds the root logger at the configured level. The
// --verbose flag wins over the config file.
func applyLogLevel(level string) error {
	if verbose || level == "" {
		return nil
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	rebuilt, err := newLogger(parsed)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = rebuilt
	return nil
}

// #endregion logging
