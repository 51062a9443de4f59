package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hushryd/tracking-service/internal/pkg/config"
	"github.com/hushryd/tracking-service/internal/pkg/database"
	"github.com/hushryd/tracking-service/internal/pkg/health"
	"github.com/hushryd/tracking-service/internal/pkg/logger"
	natspkg "github.com/hushryd/tracking-service/internal/pkg/nats"
	nsqpkg "github.com/hushryd/tracking-service/internal/pkg/nsq"
	"github.com/hushryd/tracking-service/internal/pkg/server"
	pkgws "github.com/hushryd/tracking-service/internal/pkg/websocket"
	"github.com/hushryd/tracking-service/services/tracking/gateway"
	"github.com/hushryd/tracking-service/services/tracking/handler"
	natsHandler "github.com/hushryd/tracking-service/services/tracking/handler/nats"
	"github.com/hushryd/tracking-service/services/tracking/repository"
	"github.com/hushryd/tracking-service/services/tracking/usecase"
)

func main() {
	configs := config.InitConfig(".env")

	appLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Type:     configs.Logger.Type,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()
	logger.SetGlobalLogger(appLogger)

	instanceID, err := os.Hostname()
	if err != nil || instanceID == "" {
		instanceID = "tracking-local"
	}

	// Infrastructure clients
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	pgClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer pgClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer nsqProducer.Stop()

	// Repositories
	locationCache := repository.NewLocationCache(redisClient, configs.Tracking)
	historyRepo := repository.NewHistoryRepo(pgClient.DB)
	stationaryRepo := repository.NewStationaryRepo(pgClient.DB)
	sosRepo := repository.NewSOSRepo(pgClient.DB)
	sessionRepo := repository.NewSessionRepo(redisClient, configs.Tracking)
	tripRepo := repository.NewTripRepo(pgClient.DB)
	ticketRepo := repository.NewTicketRepo(pgClient.DB)

	// WebSocket connection manager and the fabric relay it feeds. The relay
	// is also the broadcast gateway's local fallback when the bus is down.
	wsManager := pkgws.NewManager(configs.JWT)
	fabric := natsHandler.NewHandler(natsClient, wsManager)

	// Gateways
	broadcastGW := gateway.NewBroadcastGW(natsClient, fabric)
	notifyGW := gateway.NewNotifyGW(nsqProducer, configs.Notification)

	// Use cases
	buffer := usecase.NewBuffer(historyRepo, configs.Tracking)
	buffer.Start()

	trackingUC := usecase.NewTrackingUC(locationCache, historyRepo, tripRepo, broadcastGW, buffer, instanceID, configs.Tracking)
	escalator := usecase.NewEscalator(stationaryRepo, tripRepo, ticketRepo, broadcastGW, notifyGW, configs.Safety)
	sosUC := usecase.NewSOSUsecase(sosRepo, locationCache, historyRepo, tripRepo, broadcastGW, notifyGW, escalator, configs.Safety, configs.Tracking)
	safetyUC := usecase.NewSafetyUC(stationaryRepo, tripRepo, sosUC, broadcastGW, notifyGW, escalator, configs.Safety)

	// Restore trackers and escalation timers for alerts that were live when
	// the previous process exited. The database rows are the durable record.
	rehydrateCtx, cancelRehydrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := sosUC.Rehydrate(rehydrateCtx); err != nil {
		logger.Warn("Failed to restore active alert trackers", logger.Err(err))
	}
	if err := safetyUC.Rehydrate(rehydrateCtx); err != nil {
		logger.Warn("Failed to restore escalation timers", logger.Err(err))
	}
	cancelRehydrate()

	// Transport surfaces
	h := handler.NewHandler(wsManager, trackingUC, safetyUC, sosUC, sessionRepo, fabric, configs)
	if err := h.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to start fabric consumers", logger.Err(err))
	}
	if err := h.StartNSQWorkers(); err != nil {
		logger.Fatal("Failed to start notification workers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	h.RegisterRoutes(e)

	healthHandler := health.NewHandler(configs.App.Name, configs.App.Version)
	healthHandler.Register("redis", redisClient.Ping)
	healthHandler.Register("postgres", pgClient.Ping)
	healthHandler.Register("nats", func(ctx context.Context) error {
		if !natsClient.IsConnected() {
			return errors.New("nats connection down")
		}
		return nil
	})
	healthHandler.RegisterRoutes(e)

	shutdownMgr := server.NewShutdownManager()
	shutdownMgr.Register(func(ctx context.Context) error {
		h.Stop()
		return nil
	})
	shutdownMgr.Register(func(ctx context.Context) error {
		return buffer.Stop(ctx)
	})

	srv := server.NewGracefulServer(e, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	shutdownMgr.Shutdown(shutdownCtx)
}
