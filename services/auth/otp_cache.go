package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// OTPEntry is the scratch state of one email's verification flow.
type OTPEntry struct {
	Code      string    `json:"code"`
	Name      string    `json:"name,omitempty"`
	State     OTPState  `json:"state"`
	Attempts  int       `json:"attempts"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// OTPCache keeps OTP entries until they expire.
type OTPCache interface {
	Save(ctx context.Context, email string, entry OTPEntry, ttl time.Duration) error
	// Load returns nil, nil when there is no live entry.
	Load(ctx context.Context, email string) (*OTPEntry, error)
	Delete(ctx context.Context, email string) error
}

func otpKey(email string) string {
	return "otp:" + strings.ToLower(strings.TrimSpace(email))
}

// RedisOTPCache stores entries with a Redis TTL.
type RedisOTPCache struct {
	client *redis.Client
}

func NewRedisOTPCache(client *redis.Client) *RedisOTPCache {
	return &RedisOTPCache{client: client}
}

func (c *RedisOTPCache) Save(ctx context.Context, email string, entry OTPEntry, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, otpKey(email), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache OTP: %w", err)
	}
	return nil
}

func (c *RedisOTPCache) Load(ctx context.Context, email string) (*OTPEntry, error) {
	data, err := c.client.Get(ctx, otpKey(email)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve OTP: %w", err)
	}
	var entry OTPEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, nil
	}
	return &entry, nil
}

func (c *RedisOTPCache) Delete(ctx context.Context, email string) error {
	if err := c.client.Del(ctx, otpKey(email)).Err(); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}

type memoryOTP struct {
	entry     OTPEntry
	expiresAt time.Time
}

// MemoryOTPCache keeps entries in process memory.
type MemoryOTPCache struct {
	mu      sync.Mutex
	entries map[string]memoryOTP
	now     func() time.Time
}

func NewMemoryOTPCache() *MemoryOTPCache {
	return &MemoryOTPCache{entries: make(map[string]memoryOTP), now: time.Now}
}

func (c *MemoryOTPCache) Save(ctx context.Context, email string, entry OTPEntry, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[otpKey(email)] = memoryOTP{entry: entry, expiresAt: c.now().Add(ttl)}
	return nil
}

func (c *MemoryOTPCache) Load(ctx context.Context, email string) (*OTPEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := otpKey(email)
	e, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, nil
	}
	entry := e.entry
	return &entry, nil
}

func (c *MemoryOTPCache) Delete(ctx context.Context, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, otpKey(email))
	return nil
}
