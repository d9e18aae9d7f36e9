// Package parallel shards an integer counting workload across goroutines.
// It exists for the Finder's optional support-counting parallelism (spec
// §5): splitting the transaction scan across workers is safe because the
// per-candidate reduction is plain integer addition, which is associative.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// CountShards splits [0, n) into at most workers contiguous shards and runs
// count on each concurrently, merging the per-shard uint64-keyed counters
// returned by count into a single map via associative summation. workers
// <= 1 runs the single shard inline without spawning goroutines.
func CountShards(ctx context.Context, n, workers int, count func(ctx context.Context, lo, hi int) (map[uint64]int, error)) (map[uint64]int, error) {
	if workers <= 1 || n == 0 {
		return count(ctx, 0, n)
	}
	if workers > n {
		workers = n
	}

	shardSize := (n + workers - 1) / workers
	partials := make([]map[uint64]int, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * shardSize
		hi := lo + shardSize
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			partial, err := count(gctx, lo, hi)
			if err != nil {
				return err
			}
			partials[w] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[uint64]int)
	for _, partial := range partials {
		for k, v := range partial {
			merged[k] += v
		}
	}
	return merged, nil
}
