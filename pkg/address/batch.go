package address

import (
	"context"
	"runtime"
	"sync"
)

// ClassifyAll classifies every address concurrently with a fixed pool of
// workers and returns the results in input order. Validations share no
// state, so the only coordination is the index feed. A cancelled context
// stops feeding work and returns the context's error; workers drain what
// they already picked up. workers <= 0 means one per CPU.
func ClassifyAll(ctx context.Context, addrs []string, workers int) ([]Decoded, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(addrs) {
		workers = len(addrs)
	}

	results := make([]Decoded, len(addrs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				results[idx] = Classify(addrs[idx])
			}
		}()
	}

	var err error
feed:
	for i := range addrs {
		select {
		case indexes <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return results, nil
}
