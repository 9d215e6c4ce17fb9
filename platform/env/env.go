package env

import (
	"go.uber.org/zap"
	"os"
	"strconv"
	"time"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	log.Debugw("config", "env", env, "default", def)
	return def
}

// DurationDefault return the result of searching an env var, if the env var value is empty, return a default value as time.Duration
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	orDefault := OrDefault(log, env, def)
	duration, err := time.ParseDuration(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as duration: ", err)
		duration, _ = time.ParseDuration(def)
	}
	return duration
}

// BoolDefault return the result of searching an env var, if the env var value is empty, return a default value as bool
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	orDefault := OrDefault(log, env, def)
	b, err := strconv.ParseBool(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as bool: ", err)
		b, _ = strconv.ParseBool(def)
	}
	return b
}
