package presenter

import "sync"

// Queue runs functions in submission order. The adapter is only ever touched
// from the presenter's main queue.
type Queue interface {
	Do(fn func())
}

// QueueFunc adapts a function that schedules work to the Queue interface.
type QueueFunc func(fn func())

// Do calls q(fn).
func (q QueueFunc) Do(fn func()) { q(fn) }

type immediate struct{}

func (immediate) Do(fn func()) { fn() }

// Immediate runs every function inline on the calling goroutine.
var Immediate Queue = immediate{}

// SerialQueue runs submitted functions one at a time on its own goroutine.
type SerialQueue struct {
	jobs chan func()
	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewSerialQueue starts a queue goroutine. Call Close to stop it.
func NewSerialQueue() *SerialQueue {
	q := &SerialQueue{
		jobs: make(chan func(), 16),
		done: make(chan struct{}),
	}
	q.wg.Add(1)
	go q.run()
	return q
}

func (q *SerialQueue) run() {
	defer q.wg.Done()
	for {
		select {
		case fn := <-q.jobs:
			fn()
		case <-q.done:
			return
		}
	}
}

// Do enqueues fn. Functions submitted after Close are dropped.
func (q *SerialQueue) Do(fn func()) {
	select {
	case <-q.done:
		return
	default:
	}
	select {
	case q.jobs <- fn:
	case <-q.done:
	}
}

// Close stops the queue goroutine and waits for the running function.
func (q *SerialQueue) Close() {
	q.once.Do(func() { close(q.done) })
	q.wg.Wait()
}
