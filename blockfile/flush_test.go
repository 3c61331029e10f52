package blockfile

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlushQueue_DrainsAllTasks(t *testing.T) {
	q := newFlushQueue(10)

	var mu sync.Mutex
	executed := 0
	for i := 0; i < 5; i++ {
		q.put(func() error {
			mu.Lock()
			executed++
			mu.Unlock()
			return nil
		})
	}

	assert.NoError(t, q.close())

	mu.Lock()
	assert.Equal(t, 5, executed, "All tasks should have been executed")
	mu.Unlock()
}

func TestFlushQueue_FirstErrorWins(t *testing.T) {
	q := newFlushQueue(4)

	first := errors.New("first error")
	second := errors.New("second error")
	q.put(func() error { return first })
	q.put(func() error { return second })

	err := q.close()
	assert.Equal(t, first, err)
	assert.Equal(t, first, q.Err())
}

func TestFlushQueue_SkipsTasksAfterError(t *testing.T) {
	q := newFlushQueue(4)

	var mu sync.Mutex
	executed := false
	q.put(func() error { return errors.New("boom") })
	q.put(func() error {
		mu.Lock()
		executed = true
		mu.Unlock()
		return nil
	})

	assert.Error(t, q.close())

	mu.Lock()
	assert.False(t, executed, "Tasks queued after a failure should be skipped")
	mu.Unlock()
}

func TestFlushQueue_CloseTwice(t *testing.T) {
	q := newFlushQueue(1)
	assert.NoError(t, q.close())
	assert.NoError(t, q.close())
}
