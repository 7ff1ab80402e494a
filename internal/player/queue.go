package player

import (
	"context"
	"sync"
	"time"
)

// Task is one unit of media work. Generation ties the task to the reel it
// was issued for so late results can be recognised as stale.
type Task struct {
	Generation uint64
	Op         string
	Run        func(ctx context.Context) error
}

// Result reports the outcome of a Task.
type Result struct {
	Generation uint64
	Op         string
	Err        error
}

// Queue runs tasks one at a time, in submission order, on a single worker
// goroutine. Results are delivered on Results().
type Queue struct {
	timeout time.Duration

	mu      sync.Mutex
	pending []Task
	wake    chan struct{}

	results chan Result
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewQueue starts the worker. timeout bounds each task.
func NewQueue(timeout time.Duration) *Queue {
	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{
		timeout: timeout,
		wake:    make(chan struct{}, 1),
		results: make(chan Result, 64),
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go q.loop()
	return q
}

// Submit enqueues t without blocking.
func (q *Queue) Submit(t Task) {
	q.mu.Lock()
	q.pending = append(q.pending, t)
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Results delivers task outcomes in completion order.
func (q *Queue) Results() <-chan Result {
	return q.results
}

// Close stops the worker after the running task returns. Pending tasks are
// dropped.
func (q *Queue) Close() {
	q.cancel()
	<-q.done
}

func (q *Queue) loop() {
	defer close(q.done)
	for {
		select {
		case <-q.ctx.Done():
			return
		case <-q.wake:
		}
		for {
			t, ok := q.next()
			if !ok {
				break
			}
			res := Result{Generation: t.Generation, Op: t.Op, Err: q.run(t)}
			select {
			case q.results <- res:
			case <-q.ctx.Done():
				return
			}
		}
	}
}

func (q *Queue) next() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return Task{}, false
	}
	t := q.pending[0]
	q.pending = q.pending[1:]
	return t, true
}

func (q *Queue) run(t Task) error {
	ctx, cancel := context.WithTimeout(q.ctx, q.timeout)
	defer cancel()
	return t.Run(ctx)
}
