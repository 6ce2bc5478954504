package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
)

// Persisted settings keys. Each holds one JSON-serialized value, except
// the auth flag which is stored as the strings "true"/"false".
const (
	KeyProfile               = "profile"
	KeyVoiceSettings         = "voice-settings"
	KeyVisualSettings        = "visual-settings"
	KeyAccessibilitySettings = "accessibility-settings"
	KeyNotificationSettings  = "notification-settings"
	KeyAuthFlag              = "auth-flag"
)

// SettingsRepository is the persisted settings store: a Redis-backed
// key-value map of JSON documents with no expiry. A nil client degrades
// to an empty store that accepts writes silently, so the app keeps
// working with in-memory defaults when Redis is unreachable.
type SettingsRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewSettingsRepository constructs the repository.
func NewSettingsRepository(client *redis.Client, logger *zap.Logger) *SettingsRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsRepository{client: client, logger: logger}
}

// Get unmarshals the persisted value for key into dest. It returns
// ErrSettingsMiss when nothing is stored and ErrSettingsCorrupt when the
// stored JSON cannot be decoded.
func (r *SettingsRepository) Get(ctx context.Context, key string, dest interface{}) error {
	if r.client == nil {
		return appErrors.ErrSettingsMiss
	}

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return appErrors.ErrSettingsMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrSettingsCorrupt.Code, appErrors.ErrSettingsCorrupt.Status, fmt.Sprintf("decode persisted %s", key))
	}

	return nil
}

// Set marshals the value and stores it under key with no expiry.
func (r *SettingsRepository) Set(ctx context.Context, key string, value interface{}) error {
	if r.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal persisted %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

// Delete removes the persisted value for key.
func (r *SettingsRepository) Delete(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// GetFlag reads a boolean key stored as "true"/"false".
func (r *SettingsRepository) GetFlag(ctx context.Context, key string) (bool, error) {
	if r.client == nil {
		return false, appErrors.ErrSettingsMiss
	}

	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, appErrors.ErrSettingsMiss
		}
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrSettingsCorrupt.Code, appErrors.ErrSettingsCorrupt.Status, fmt.Sprintf("decode persisted %s", key))
	}
	return value, nil
}

// SetFlag stores a boolean key as "true"/"false".
func (r *SettingsRepository) SetFlag(ctx context.Context, key string, value bool) error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Set(ctx, key, strconv.FormatBool(value), 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying Redis connection if present.
func (r *SettingsRepository) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
