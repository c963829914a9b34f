package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

//go:generate mockgen -source=cache.go -destination=mocks/cache_mock.go -package=mocks

// RecordCache stores JSON-encoded records found by a list scan
type RecordCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// LookupKey namespaces a cached record per session:
// lookup:<kind>:<sha256(token)>:<id>. A record found with one access token
// is never served to another.
func LookupKey(kind, token, id string) string {
	sum := sha256.Sum256([]byte(token))
	return "lookup:" + kind + ":" + hex.EncodeToString(sum[:]) + ":" + id
}

// NoopCache always misses and ignores writes
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Get(context.Context, string) ([]byte, bool) {
	return nil, false
}

func (NoopCache) Set(context.Context, string, []byte, time.Duration) {}
