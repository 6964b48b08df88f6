package redis

import (
	"context"
	"encoding/json"
	"strings"

	rd "github.com/go-redis/redis/v9"
	"github.com/sukh8282/exconsole/model"
	"github.com/sukh8282/exconsole/persistence"
)

const HISTORY_KEY string = "HISTORY"

var _ persistence.Storage = new(redisStorage)

type redisStorage struct {
	config      Config
	redisClient rd.UniversalClient
}

func NewRedisStorage(config Config) *redisStorage {
	if config.HistoryLimit <= 0 {
		config.HistoryLimit = 100
	}
	client := rd.NewUniversalClient(&rd.UniversalOptions{
		Addrs:    config.Addrs,
		PoolSize: config.PoolSize,
		Password: config.Password,
	})
	return &redisStorage{
		config:      config,
		redisClient: client,
	}
}

func (r *redisStorage) getNamespaceKey(keys ...string) string {
	return r.config.Namespace + ":" + strings.Join(keys, ":")
}

func (r *redisStorage) SaveInvocation(record model.InvocationRecord) error {
	key := r.getNamespaceKey(HISTORY_KEY)
	ctx := context.Background()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := r.redisClient.LPush(ctx, key, string(data)).Err(); err != nil {
		return persistence.StorageLayerError{Message: err.Error()}
	}
	if err := r.redisClient.LTrim(ctx, key, 0, int64(r.config.HistoryLimit)-1).Err(); err != nil {
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

func (r *redisStorage) ListInvocations(limit int) ([]model.InvocationRecord, error) {
	if limit <= 0 || limit > r.config.HistoryLimit {
		limit = r.config.HistoryLimit
	}
	key := r.getNamespaceKey(HISTORY_KEY)
	ctx := context.Background()
	items, err := r.redisClient.LRange(ctx, key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	records := make([]model.InvocationRecord, 0, len(items))
	for _, item := range items {
		var record model.InvocationRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
