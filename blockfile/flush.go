package blockfile

import (
	"sync"

	"go.uber.org/zap"
)

// flushQueue moves physical writes off the writer's goroutine. Tasks run in
// submission order; once a task fails the remaining ones are skipped, since
// the file is broken past the failed offset anyway.
type flushQueue struct {
	ch     chan func() error
	wg     sync.WaitGroup
	mu     sync.Mutex
	err    error
	closed bool
}

func newFlushQueue(queueLen int) *flushQueue {
	q := &flushQueue{
		ch: make(chan func() error, queueLen),
	}
	q.wg.Add(1)
	go q.drainTask()
	return q
}

func (q *flushQueue) drainTask() {
	defer q.wg.Done()
	for task := range q.ch {
		if q.Err() != nil {
			continue
		}
		if err := task(); err != nil {
			zap.L().Error("Failed to flush block", zap.Error(err))
			q.mu.Lock()
			q.err = err
			q.mu.Unlock()
		}
	}
}

// put blocks until the queue has room for the task.
func (q *flushQueue) put(task func() error) {
	q.ch <- task
}

// Err reports the first task failure.
func (q *flushQueue) Err() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.err
}

// close waits for the queued tasks to drain and returns the first failure.
func (q *flushQueue) close() error {
	if q.closed {
		return q.Err()
	}
	close(q.ch)
	q.wg.Wait()
	q.closed = true
	return q.Err()
}
