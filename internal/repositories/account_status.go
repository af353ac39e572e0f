package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-payment-links/internal/logger"
	"github.com/sbilibin2017/gw-payment-links/internal/models"
)

// AccountStatusCacheRepository caches processor account statuses in Redis so
// repeated status polls do not hit the processor on every request.
type AccountStatusCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached statuses
}

// NewAccountStatusCacheRepository creates a new repository instance with the given TTL.
func NewAccountStatusCacheRepository(client *redis.Client, expiration time.Duration) *AccountStatusCacheRepository {
	return &AccountStatusCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached account status. Returns an error on a cache miss.
func (r *AccountStatusCacheRepository) Get(ctx context.Context, accountID string) (*models.AccountStatus, error) {
	key := fmt.Sprintf("account_status:%s", accountID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("account status not found in cache for %s", accountID)
		}
		return nil, err
	}

	var status models.AccountStatus
	if err := json.Unmarshal([]byte(val), &status); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", status,
		"error", nil,
	)

	return &status, nil
}

// Set caches an account status with expiration.
func (r *AccountStatusCacheRepository) Set(ctx context.Context, accountID string, status models.AccountStatus) error {
	key := fmt.Sprintf("account_status:%s", accountID)

	data, err := json.Marshal(status)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"status", status,
		"result", "ok",
		"error", err,
	)

	return err
}
