package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ribgsilva/assistant-api/sys"
)

// Insert caches the analytics of a user record version within one store
func Insert(ctx context.Context, user, store string, version uint64, a Analytics) error {
	cache := sys.R.Cache
	if cache == nil {
		return nil
	}

	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics: %w", err)
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	key := fmt.Sprintf(analyticsKey, user, store, version)
	if err := cache.Set(tcCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set %s into cache: %w", key, err)
	}
	return nil
}
