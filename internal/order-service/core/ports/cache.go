package ports

import "context"

type ICacheRepo interface {
	// SetIdempotency sets a key for idempotency check, returns false if already exists
	SetIdempotency(ctx context.Context, key string) (bool, error)
	// ReleaseIdempotency frees a claimed key so the request may be retried
	ReleaseIdempotency(ctx context.Context, key string) error
	Close() error
}
