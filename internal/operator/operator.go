package operator

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
)

// Work is one unit of work. Repository calls made with ctx join its
// transaction.
type Work func(ctx context.Context) error

// Operator is the worker that processes items from the queue.
type Operator struct {
	store      storage.Transactor
	queue      chan ActionItem
	onComplete func(err error)
}

func NewOperator(store storage.Transactor, queue chan ActionItem, onComplete func(err error)) *Operator {
	return &Operator{
		store:      store,
		queue:      queue,
		onComplete: onComplete,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller may have given up while the item sat in the queue.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := o.store.RunInTransaction(item.ctx, item.work)
	if o.onComplete != nil {
		o.onComplete(err)
	}
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	work     Work
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
