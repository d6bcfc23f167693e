package store

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis"
)

const keyPrefix = "passgen_share_"

// ErrNotFound is returned when a share doesn't exist, expired, or was
// already redeemed.
var ErrNotFound = errors.New("share not found")

// Store defines the interface for one-time secret storage.
type Store interface {
	// Put attempts to store a secret under the given ID.
	// Returns true if stored, false if the ID already exists (collision).
	Put(id string, secret string) (bool, error)
	// Take retrieves a secret and deletes it in the same step, so each
	// share can be redeemed at most once. Returns ErrNotFound if it
	// doesn't exist.
	Take(id string) (string, error)
}

// RedisStore implements Store using Redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// takeScript gets and deletes a key atomically. The go-redis v6 API targets
// Redis servers without GETDEL, so the two steps run as one Lua script.
var takeScript = redis.NewScript(`
local v = redis.call("GET", KEYS[1])
if v then redis.call("DEL", KEYS[1]) end
return v`)

// NewRedis creates a new Redis-backed store and verifies connectivity.
func NewRedis(addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping().Result(); err != nil {
		return nil, err
	}

	return &RedisStore{
		client: client,
		ttl:    ttl,
	}, nil
}

// Put stores a secret using SetNX (atomic set-if-not-exists).
// Returns true if stored, false if the ID already exists.
func (s *RedisStore) Put(id string, secret string) (bool, error) {
	ok, err := s.client.SetNX(keyPrefix+id, secret, s.ttl).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Take redeems a share, removing it so it cannot be read twice.
func (s *RedisStore) Take(id string) (string, error) {
	res, err := takeScript.Run(s.client, []string{keyPrefix + id}).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	secret, ok := res.(string)
	if !ok {
		return "", ErrNotFound
	}
	return secret, nil
}

// ParseRedisURI parses a Redis URI in the form "host:port" and returns host and port separately.
// This is needed because the rate limiter package takes host and port as separate config fields.
func ParseRedisURI(uri string) (host string, port int) {
	host = "localhost"
	port = 6379

	if uri == "" {
		return
	}

	parts := strings.Split(uri, ":")
	if len(parts) >= 1 {
		host = parts[0]
	}
	if len(parts) >= 2 {
		if p, err := strconv.Atoi(parts[1]); err == nil {
			port = p
		}
	}
	return
}
