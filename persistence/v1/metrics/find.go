package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/assistant-api/sys"
)

// Find looks up the analytics of a user record version within one store. Cache misses and failures both return false.
func Find(ctx context.Context, user, store string, version uint64) (Analytics, bool) {
	logger := sys.R.Log
	cache := sys.R.Cache
	if cache == nil {
		return Analytics{}, false
	}

	key := fmt.Sprintf(analyticsKey, user, store, version)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failure to get analytics ", key, " from cache: ", err.Error())
		return Analytics{}, false
	}
	if get == "" {
		return Analytics{}, false
	}

	var a Analytics
	if err := json.Unmarshal([]byte(get), &a); err != nil {
		logger.Errorf("error parsing cached response for key %s: %s", key, err)
		return Analytics{}, false
	}
	return a, true
}
