package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

// Locker serializes booking writes against a single listing across instances.
type Locker interface {
	LockListing(ctx context.Context, listingID string) (func(context.Context) error, error)
}

type locker struct {
	rs *redsync.Redsync
}

func New(client *goredislib.Client) Locker {
	pool := goredis.NewPool(client)
	return &locker{rs: redsync.New(pool)}
}

func (l *locker) LockListing(ctx context.Context, listingID string) (func(context.Context) error, error) {
	mutex := l.rs.NewMutex(
		fmt.Sprintf("listing_lock:%s", listingID),
		redsync.WithExpiry(8*time.Second),
		redsync.WithTries(16),
	)

	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		_, err := mutex.UnlockContext(ctx)
		return err
	}, nil
}
