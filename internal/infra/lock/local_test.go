package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_MutualExclusion(t *testing.T) {
	locker := NewLocalLocker()
	keys := []int64{1, 2}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := locker.Lock(context.Background(), keys)
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			mu.Lock()
			inside++
			maxSeen = max(maxSeen, inside)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Zero(t, locker.size(), "released keys are dropped")
}

func TestLocalLocker_OverlappingKeysExclude(t *testing.T) {
	locker := NewLocalLocker()

	release, err := locker.Lock(context.Background(), []int64{1, 2})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(ctx, []int64{2, 3})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// Key 3 was released after the failed attempt.
	other, err := locker.Lock(context.Background(), []int64{3})
	require.NoError(t, err)
	other()

	release()
	release()

	again, err := locker.Lock(context.Background(), []int64{2, 3})
	require.NoError(t, err)
	again()
	assert.Zero(t, locker.size())
}

func TestLocalLocker_DisjointKeysDoNotBlock(t *testing.T) {
	locker := NewLocalLocker()

	first, err := locker.Lock(context.Background(), []int64{10})
	require.NoError(t, err)
	defer first()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	second, err := locker.Lock(ctx, []int64{11})
	require.NoError(t, err)
	second()
}
