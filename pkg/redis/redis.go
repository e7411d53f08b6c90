package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ITokenStore is the revocation side of the token issuer: logout stamps a
// per-user revocation time, and every authenticated request compares the
// token's issued-at against it.
type ITokenStore interface {
	RevokeAll(ctx context.Context, userID string, at time.Time) error
	RevokedAt(ctx context.Context, userID string) (time.Time, bool, error)
}

type redisClient struct {
	client *redis.Client
}

const revocationKeyPrefix = "token_revoked_at:"

// Revocation stamps only need to outlive the longest-lived access token.
const revocationTTL = 24 * time.Hour

func New() ITokenStore {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) RevokeAll(ctx context.Context, userID string, at time.Time) error {
	key := revocationKeyPrefix + userID
	err := r.client.Set(ctx, key, at.Unix(), revocationTTL).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error stamping token revocation for user %s: %v", userID, err))
		return err
	}
	return nil
}

func (r *redisClient) RevokedAt(ctx context.Context, userID string) (time.Time, bool, error) {
	key := revocationKeyPrefix + userID
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading token revocation for user %s: %v", userID, err))
		return time.Time{}, false, err
	}

	unix, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, false, err
	}

	return time.Unix(unix, 0), true, nil
}
