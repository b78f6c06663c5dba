package main

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/viper"

	"github.com/openconf/meetpool/internal/bbb"
	"github.com/openconf/meetpool/internal/config"
	"github.com/openconf/meetpool/internal/httputil"
	"github.com/openconf/meetpool/internal/jwt"
	"github.com/openconf/meetpool/internal/log"
	"github.com/openconf/meetpool/internal/otel"
	"github.com/openconf/meetpool/internal/redis"
	"github.com/openconf/meetpool/internal/retry"
	streamredis "github.com/openconf/meetpool/internal/stream/redis"
	"github.com/openconf/meetpool/internal/workflow"
	"github.com/openconf/meetpool/meetings/registry"
	"github.com/openconf/meetpool/meetings/service"
	"github.com/openconf/meetpool/meetings/store"
	"github.com/openconf/meetpool/meetings/transport"
)

type Config struct {
	App                 config.App      `mapstructure:"app"`
	HTTP                httputil.Config `mapstructure:"http"`
	Redis               redis.Config    `mapstructure:"redis"`
	Otel                otel.Config     `mapstructure:"otel"`
	RedisRecordPrefix   string          `mapstructure:"redis_record_prefix"`
	RedisEventStream    string          `mapstructure:"redis_event_stream"`
	HealthProbeInterval time.Duration   `mapstructure:"health_probe_interval"`
	BackendRetryInitial time.Duration   `mapstructure:"backend_retry_initial"`
	BackendRetryMax     time.Duration   `mapstructure:"backend_retry_max"`
	BackendRetryElapsed time.Duration   `mapstructure:"backend_retry_elapsed"`
	JWTSecret           string          `mapstructure:"jwt_secret"`
}

func loadConfig() (*Config, error) {
	return config.Load(&Config{}, func(v *viper.Viper) {
		v.SetDefault("redis_record_prefix", "meetpool/")
		v.SetDefault("redis_event_stream", "meetpool:meeting-event-stream")
		v.SetDefault("health_probe_interval", 30*time.Second)
		v.SetDefault("backend_retry_initial", 500*time.Millisecond)
		v.SetDefault("backend_retry_max", 5*time.Second)
		v.SetDefault("backend_retry_elapsed", 30*time.Second)
		v.SetDefault("jwt_secret", "MY-secret-key-change-in-production")

		config.Setup(v, "app")
		redis.Setup(v, "redis")
		otel.Setup(v, "otel")
		httputil.Setup(v, "http")

		// override default addrs to ease testing
		v.SetDefault("http.addr", "0.0.0.0:8090")
	})
}

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	logger, err := log.NewLogger(config.App.LogConfigFile)
	if err != nil {
		log.Fatal("Failed to create logger", err)
	}
	defer func() { _ = logger.Sync() }()

	// global background context
	ctx := context.Background()

	// Initialize OpenTelemetry
	otelShutdown, err := otel.Init(ctx, &config.Otel, logger)
	if err != nil {
		logger.Fatal("Failed to initialize OTEL provider", log.Error(err))
	}

	logger.Info("Starting Meeting service",
		log.String("addr", config.HTTP.Addr),
		log.String("eventStream", config.RedisEventStream))

	// Initialize Redis client
	redisClient := redis.NewClient(&config.Redis)
	// check Redis
	if err := redis.Ping(redisClient); err != nil {
		logger.Fatal("Failed to connect to Redis", log.Error(err))
	}
	forever := redis.NewForever(redisClient,
		100*time.Millisecond, 10*time.Second, logger.Module("Redis"))

	events, err := streamredis.NewProducer(redisClient, config.RedisEventStream, logger.Module("Events"))
	if err != nil {
		logger.Fatal("Failed to create event producer", log.Error(err))
	}

	// Create components
	clock := clockwork.NewRealClock()
	reg := registry.New(clock, logger.Module("Registry"))
	sched := service.NewScheduler(reg, logger.Module("Scheduler"))
	recordStore := store.NewRecordStore(forever, config.RedisRecordPrefix, logger.Module("RecordStore"))

	bbbLogger := logger.Module("BBB")
	clients := service.NewClientPool(func(url, secret string) bbb.Client {
		return bbb.New(url, secret, bbbLogger)
	})

	backendRetry := retry.New(
		logger.Module("Retry"),
		config.BackendRetryInitial,
		config.BackendRetryMax,
		config.BackendRetryElapsed,
	)

	meetingSvc := service.NewMeetingService(
		reg,
		sched,
		recordStore,
		events,
		clients,
		backendRetry,
		clock,
		logger.Module("MeetingSvc"),
	)
	memberSvc := service.NewMembershipService(
		reg,
		sched,
		clients,
		clock,
		logger.Module("MemberSvc"),
	)

	monitor := service.NewHealthMonitor(
		reg,
		service.NewBackendProbe(reg, clients, logger.Module("Probe")),
		config.HealthProbeInterval,
		logger.Module("HealthMon"),
	)
	if err := monitor.Start(ctx); err != nil {
		logger.Fatal("Failed to start health monitor", log.Error(err))
	}

	// Initialize JWT Auth for the admin API
	jwtAuth := jwt.NewAuth(config.JWTSecret)

	// Setup router
	router := transport.NewRouter(meetingSvc, memberSvc, reg, sched, recordStore, jwtAuth, logger.Module("Router"))
	server := httputil.NewServer(&config.HTTP, router.Handler())

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server", log.String("addr", config.HTTP.Addr))
		if err := server.Listen(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", log.Error(err))
		}
	}()

	logger.Info("Meeting service started")

	// Setup graceful shutdown
	cleanup := func(ctx context.Context) {
		_ = server.Shutdown(ctx)

		if err := monitor.Stop(); err != nil {
			logger.Error("Error stopping health monitor", log.Error(err))
		}
		if err := redisClient.Close(); err != nil {
			logger.Error("Error closing Redis client", log.Error(err))
		}
		if err := otelShutdown(ctx); err != nil {
			logger.Error("Failed to shutdown OTEL", log.Error(err))
		}
	}
	workflow.WaitGracefulShutdown(ctx, logger.Module("CleanUp"), cleanup, config.App.ShutdownTimeout)
}
