package client

import (
	"context"
	"sync"
)

// DeleteOutcome reports the result of one deletion within a batch.
type DeleteOutcome struct {
	ID  string
	OK  bool
	Err error
}

// BulkDeleteFavorites deletes each favorite concurrently and waits for every
// request to settle. One rejected item never blocks the rest of the batch;
// the outcome slice matches the input order and carries the per-item error.
func (c *Client) BulkDeleteFavorites(ctx context.Context, ids []string) []DeleteOutcome {
	outcomes := make([]DeleteOutcome, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			err := c.DeleteFavorite(ctx, id)
			outcomes[i] = DeleteOutcome{ID: id, OK: err == nil, Err: err}
		}(i, id)
	}
	wg.Wait()

	return outcomes
}
