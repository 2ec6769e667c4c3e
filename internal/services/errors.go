package services

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrEmptyCart          = errors.New("no items in order")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Cache is the subset of the Redis client the services use. A nil Cache
// disables caching.
type Cache interface {
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
}
