package service

import (
	"context"
	"time"
)

// VerificationStore is an ephemeral key-value store with per-key expiry.
// Entries vanish after their TTL whether or not they were read; an expired
// key is indistinguishable from one that never existed.
type VerificationStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}
