package parallel

import "sync"

// ForEachChunk splits items into contiguous chunks, submits one task per
// chunk, and blocks until every chunk has been processed. All workers
// complete the batch before ForEachChunk returns, which gives callers a
// barrier between successive batches.
func (wp *WorkerPool) ForEachChunk(items []int, fn func(chunk []int)) {
	if len(items) == 0 {
		return
	}

	// Use int64 to prevent overflow in the intermediate calculation
	chunkSize := int((int64(len(items)) + int64(wp.workers) - 1) / int64(wp.workers))
	if chunkSize < 1 {
		chunkSize = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < len(items); i += chunkSize {
		end := i + chunkSize
		if end > len(items) {
			end = len(items)
		}

		chunk := items[i:end]
		wg.Add(1)
		if !wp.Submit(func() {
			defer wg.Done()
			fn(chunk)
		}) {
			// Pool closed; run inline so the barrier still completes.
			fn(chunk)
			wg.Done()
		}
	}
	wg.Wait()
}

// ForEach is ForEachChunk with a per-item callback.
func (wp *WorkerPool) ForEach(items []int, fn func(item int)) {
	wp.ForEachChunk(items, func(chunk []int) {
		for _, item := range chunk {
			fn(item)
		}
	})
}
