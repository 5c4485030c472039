package service

import (
	"context"
)

// RegionLocker serializes submissions that touch the same spatial cells.
type RegionLocker interface {
	// Lock blocks until every key is held or ctx is done. Keys are locked in
	// ascending order. The returned release function must be called exactly once.
	Lock(ctx context.Context, keys []int64) (release func(), err error)
}
