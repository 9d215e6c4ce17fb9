package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	consumer "github.com/ribgsilva/assistant-api/app/api/consumers/v1/backup"
	"github.com/ribgsilva/assistant-api/app/api/docs"
	"github.com/ribgsilva/assistant-api/app/api/handlers"
	"github.com/ribgsilva/assistant-api/business/v1/assistant"
	"github.com/ribgsilva/assistant-api/persistence/v1/userdata"
	"github.com/ribgsilva/assistant-api/platform/env"
	"github.com/ribgsilva/assistant-api/platform/logger"
	"github.com/ribgsilva/assistant-api/platform/web/mid"
	"github.com/ribgsilva/assistant-api/sys"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub/awssnssqs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// @title AI Personal Assistant API
// @version 1.0
// @description Notes and tasks backup with analytics and assistant suggestions.
// @contact.name Gabriel Ribeiro Silva
func main() {
	log, err := logger.New("Assistant-API")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	sys.Configs.Http.Host = env.OrDefault(log, "HTTP_HOST", "0.0.0.0")
	sys.Configs.Http.Port = env.OrDefault(log, "HTTP_PORT", "8001")
	sys.Configs.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	sys.Configs.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	sys.Configs.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	sys.Configs.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	sys.Configs.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	sys.Configs.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+sys.Configs.Http.Port)
	sys.Configs.Cache.Enabled = env.BoolDefault(log, "CACHE_ENABLED", "f")
	sys.Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "1s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
	sys.Configs.Messaging.TopicName = env.OrDefault(log, "MESSAGING_TOPIC_NAME", "")
	sys.Configs.Messaging.MaxWorkers = env.IntDefault(log, "MESSAGING_MAX_WORKERS", "1")
	sys.Configs.Messaging.WaitTime = env.DurationDefault(log, "MESSAGING_WAIT_TIME", "10s")
	sys.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")
	sys.Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "assistant-api")
	sys.Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	sys.Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	sys.Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	sys.Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup static resources

	// logger
	sys.R.Log = log

	// in memory store, lost on restart
	sys.R.Store = userdata.New()

	// redis, analytics cache only
	if sys.Configs.Cache.Enabled {
		// doing in a func, so I can use defer to cancel the contexts
		var rdb *redis.Client
		if err := func() error {
			rdb = redis.NewClient(&redis.Options{
				Addr:     sys.Configs.Cache.ConnectionURL,
				Username: sys.Configs.Cache.User,
				Password: sys.Configs.Cache.Pass,
			})
			rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
			defer rdsCancel()
			if err := rdb.Ping(rdsCtx).Err(); err != nil {
				return fmt.Errorf("could not connect to redis: %w", err)
			}
			return nil
		}(); err != nil {
			return err
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Errorf("could not close redis conn gracefully: %s", err)
			}
		}()

		sys.R.Cache = rdb
	}

	// =======================================================================================================
	// NR

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(sys.Configs.NewRelic.AppName),
		newrelic.ConfigLicense(sys.Configs.NewRelic.Licence),
		newrelic.ConfigEnabled(sys.Configs.NewRelic.Enabled),
	)
	if err != nil {
		return err
	}
	if err := nrApp.WaitForConnection(sys.Configs.NewRelic.ConnectionTimeout); err != nil {
		return err
	}
	defer nrApp.Shutdown(sys.Configs.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Messaging configuration

	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	consumerErrors := make(chan error, 1)
	if sys.Configs.Messaging.TopicName != "" {
		cfg, err := config.LoadDefaultConfig(context.Background())
		if err != nil {
			return err
		}

		subscription := awssnssqs.OpenSubscriptionV2(
			context.Background(),
			sqs.NewFromConfig(cfg),
			sys.Configs.Messaging.TopicName,
			&awssnssqs.SubscriptionOptions{
				Raw:      true,
				WaitTime: sys.Configs.Messaging.WaitTime,
			})

		defer func() {
			stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
			defer stdCancel()

			if err := subscription.Shutdown(stdCtx); err != nil {
				log.Errorf("could not stop subscription gracefully: %s", err)
			}
		}()

		go func() {
			log.Infow("startup", "status", "backup consumer started", "topic", sys.Configs.Messaging.TopicName)
			consumerErrors <- consumer.Consume(consumerCtx, subscription, sys.Configs.Messaging.MaxWorkers)
		}()
	}

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/health"},
	}), gin.Recovery(), mid.Cors(), mid.RequestID(), nrgin.Middleware(nrApp))

	handlers.MapDefaults(router)
	handlers.MapApi(router, assistant.Placeholder{})

	docs.SwaggerInfo.Host = sys.Configs.Swagger.Host
	url := ginSwagger.URL(fmt.Sprintf("%s://%s/swagger/doc.json", sys.Configs.Swagger.Protocol, sys.Configs.Swagger.Host))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         net.JoinHostPort(sys.Configs.Http.Host, sys.Configs.Http.Port),
		Handler:      router,
		ReadTimeout:  sys.Configs.Http.ReadTimeout,
		WriteTimeout: sys.Configs.Http.WriteTimeout,
		IdleTimeout:  sys.Configs.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("startup", "status", "started http server", "addr", svr.Addr)
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case err := <-consumerErrors:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("listener error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		consumerCancel()

		ctx, cancel := context.WithTimeout(context.Background(), sys.Configs.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
