package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/finance-server/internal/storage"
)

const queueSize = 1000

// ErrStopped is returned for work submitted after Stop.
var ErrStopped = errors.New("operator: stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and
// enqueues units of work. numWorkers caps how many store sessions are open at
// once; it makes no ordering promise between units.
type OperatorDelegator struct {
	store      storage.Transactor
	queue      chan ActionItem
	numWorkers int
	onComplete func(err error)
	wg         sync.WaitGroup
	stopOnce   sync.Once

	mu      sync.RWMutex
	stopped bool
}

var _ storage.Transactor = (*OperatorDelegator)(nil)

func NewOperatorDelegator(store storage.Transactor, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		store:      store,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

// OnComplete sets a callback invoked with the outcome of every unit of work
// that ran. Call it before Start.
func (d *OperatorDelegator) OnComplete(fn func(err error)) {
	d.onComplete = fn
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.store, d.queue, d.onComplete)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop drains queued work and waits for the workers to exit.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// RunInTransaction queues work and waits for its outcome or for ctx.
func (d *OperatorDelegator) RunInTransaction(ctx context.Context, work func(ctx context.Context) error) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		work:     work,
		response: respCh,
	}

	d.mu.RLock()
	if d.stopped {
		d.mu.RUnlock()
		return ErrStopped
	}
	select {
	case d.queue <- item:
		d.mu.RUnlock()
	case <-ctx.Done():
		d.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
