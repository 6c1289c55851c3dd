package storage

import (
	"sync"

	"github.com/domainscout/domainscout/pkg/domain/entity"
	"github.com/domainscout/domainscout/pkg/domain/repository"
)

// ResultQueue implements repository.ResultQueue on a buffered channel.
type ResultQueue struct {
	ch     chan *entity.ResultRecord
	closed bool
	mu     sync.RWMutex
}

// NewResultQueue creates a new result queue.
func NewResultQueue(size int) repository.ResultQueue {
	return &ResultQueue{
		ch: make(chan *entity.ResultRecord, size),
	}
}

// Send sends a record to the queue. Sends after Close are dropped.
func (q *ResultQueue) Send(record *entity.ResultRecord) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if !q.closed {
		q.ch <- record
	}
}

// Receive receives a record from the queue.
func (q *ResultQueue) Receive() (*entity.ResultRecord, bool) {
	record, ok := <-q.ch
	return record, ok
}

// Close closes the queue.
func (q *ResultQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.ch)
	}
}
