package sys

import (
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/assistant-api/persistence/v1/userdata"
	"go.uber.org/zap"
	"time"
)

// Configs contains all the configs gathered from env vars
var Configs struct {
	Http struct {
		Host            string
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Cache struct {
		Enabled          bool
		ConnectionURL    string
		User             string
		Pass             string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
		CacheTTL         time.Duration
	}
	Messaging struct {
		TopicName       string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}

// R holds static resources across the project
var R struct {
	Log *zap.SugaredLogger
	// Cache is nil when the analytics cache is disabled
	Cache *redis.Client
	Store *userdata.Store
}
