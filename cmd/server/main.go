// Command officehub-server starts the hub gRPC API and its HTTP side car
// (websocket sessions, metrics, health).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/officehub/gen/go/hub/v1"
	"github.com/and161185/officehub/internal/audit"
	"github.com/and161185/officehub/internal/config"
	"github.com/and161185/officehub/internal/content"
	"github.com/and161185/officehub/internal/fanout"
	"github.com/and161185/officehub/internal/migrate"
	"github.com/and161185/officehub/internal/principal"
	"github.com/and161185/officehub/internal/repository/postgres"
	grpcserver "github.com/and161185/officehub/internal/server/grpc"
	httpserver "github.com/and161185/officehub/internal/server/http"
	"github.com/and161185/officehub/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves until SIGINT/SIGTERM.
func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	logger, _ := zap.NewProduction()
	if cfg.Dev {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("grpc", cfg.GRPCAddr),
		zap.String("http", cfg.HTTPAddr),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if err := migrate.Up(ctx, cfg.DSN); err != nil {
		return err
	}

	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := content.NewDisk(cfg.Storage.Dir, cfg.Storage.MaxUpload)
	if err != nil {
		return err
	}

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	deptRepo := postgres.NewDepartmentRepo(db)
	fileRepo := postgres.NewFileRepo(db)
	grantRepo := postgres.NewGrantRepo(db)
	messageRepo := postgres.NewMessageRepo(db)
	noteRepo := postgres.NewNotificationRepo(db)
	activityRepo := postgres.NewActivityRepo(db)

	// Fan-out: bus -> (redis relay ->) local registry -> sessions
	registry := fanout.NewRegistry(cfg.Fanout.SendTimeout, logger)
	var sink fanout.Sink = registry
	var relay *fanout.RedisRelay
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer func() { _ = rdb.Close() }()
		relay = fanout.NewRedisRelay(rdb, cfg.Redis.Channel, registry, logger)
		sink = relay
	}
	bus := fanout.NewBus(cfg.Fanout.QueueSize, sink, logger)

	// Services
	recorder := audit.NewRecorder(activityRepo, logger)
	notes := service.NewNotificationService(noteRepo, bus)
	svc := grpcserver.Services{
		Shares:        service.NewShareService(fileRepo, grantRepo, userRepo, notes, recorder, logger),
		Messages:      service.NewMessageService(messageRepo, userRepo, deptRepo, notes, bus, recorder, logger),
		Notifications: notes,
		Files:         service.NewFileService(fileRepo, grantRepo, store, recorder, logger),
		Activity:      service.NewActivityService(activityRepo),
	}
	auth := &principal.Authenticator{
		Verifier: principal.NewVerifier([]byte(cfg.JWTKey)),
		Resolver: principal.NewResolver(userRepo, cfg.Principal.CacheSize, cfg.Principal.CacheTTL),
	}

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(grpcserver.MessageLimit(cfg.Storage.MaxUpload)),
		grpc.MaxSendMsgSize(grpcserver.MessageLimit(cfg.Storage.MaxUpload)),
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.MetricsUnary(),
			grpcserver.LoggingUnary(logger),
			grpcserver.AuthUnary(auth),
		),
		grpc.ChainStreamInterceptor(
			grpcserver.RecoverStream(logger),
			grpcserver.MetricsStream(),
			grpcserver.LoggingStream(logger),
			grpcserver.AuthStream(auth),
		),
	}
	if cfg.TLS.Enabled() {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLS.Cert, cfg.TLS.Key)
		if err != nil {
			return err
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("TLS disabled; serving plaintext gRPC")
	}
	gs := grpc.NewServer(opts...)
	pb.RegisterHubServer(gs, grpcserver.New(svc, registry, cfg.Fanout.SessionBuffer, logger))

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	if cfg.Dev {
		reflection.Register(gs)
	}

	hsrv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpserver.NewRouter(httpserver.Deps{
			Auth: auth,
			Sessions: &fanout.WebSocket{
				Registry:       registry,
				Buffer:         cfg.Fanout.SessionBuffer,
				WriteTimeout:   cfg.Fanout.WriteTimeout,
				OriginPatterns: cfg.Fanout.OriginPatterns,
				Log:            logger,
			},
			DB:  db,
			Log: logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return bus.Run(gctx) })
	if relay != nil {
		g.Go(func() error { return relay.Listen(gctx) })
	}
	g.Go(func() error {
		logger.Info("grpc listening", zap.String("addr", cfg.GRPCAddr), zap.Bool("tls", cfg.TLS.Enabled()))
		return gs.Serve(lis)
	})
	g.Go(func() error {
		logger.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := hsrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		hs.Shutdown()
		shutdown(gs, hsrv, logger)
		return nil
	})
	return g.Wait()
}

// shutdown drains both servers, forcing them closed after five seconds.
func shutdown(gs *grpc.Server, hsrv *http.Server, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := hsrv.Shutdown(ctx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	done := make(chan struct{})
	go func() {
		gs.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		gs.Stop()
	}
}
