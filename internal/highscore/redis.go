package highscore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/tomz197/asteroid-avoidance/internal/config"
)

// saveMax raises the score under KEYS[1] to ARGV[1] in one atomic step.
var saveMax = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
if tonumber(ARGV[1]) > current then
	redis.call("SET", KEYS[1], ARGV[1])
	return 1
end
return 0
`)

// RedisStore keeps the score under a single key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// OpenRedis connects to Redis and pings it.
func OpenRedis(ctx context.Context, s config.RedisSettings) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     s.Addr,
		Password: s.Password,
		DB:       s.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", s.Addr, err)
	}
	return NewRedisStore(client, s.Key), nil
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Load(ctx context.Context) (int, error) {
	score, err := r.client.Get(ctx, r.key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	return score, nil
}

func (r *RedisStore) Save(ctx context.Context, score int) error {
	if err := saveMax.Run(ctx, r.client, []string{r.key}, score).Err(); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
