package parallel_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/RiceaRaul/apriori/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountShardsSingleWorkerRunsInline(t *testing.T) {
	result, err := parallel.CountShards(context.Background(), 10, 1, func(ctx context.Context, lo, hi int) (map[uint64]int, error) {
		return map[uint64]int{0: hi - lo}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10, result[0])
}

func TestCountShardsMergesPartialsAssociatively(t *testing.T) {
	result, err := parallel.CountShards(context.Background(), 100, 4, func(ctx context.Context, lo, hi int) (map[uint64]int, error) {
		return map[uint64]int{0: hi - lo, 1: 1}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 100, result[0])
	assert.Equal(t, 4, result[1])
}

func TestCountShardsPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := parallel.CountShards(context.Background(), 100, 4, func(ctx context.Context, lo, hi int) (map[uint64]int, error) {
		if lo == 0 {
			return nil, boom
		}
		return map[uint64]int{}, nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestCountShardsZeroItems(t *testing.T) {
	calls := 0
	result, err := parallel.CountShards(context.Background(), 0, 4, func(ctx context.Context, lo, hi int) (map[uint64]int, error) {
		calls++
		return map[uint64]int{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, result)
}

func TestCountShardsClampsWorkersAboveN(t *testing.T) {
	var shardCount atomic.Int64
	_, err := parallel.CountShards(context.Background(), 3, 10, func(ctx context.Context, lo, hi int) (map[uint64]int, error) {
		shardCount.Add(1)
		return map[uint64]int{}, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, shardCount.Load(), int64(3))
}
