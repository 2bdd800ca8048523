// Package scheduler implements the fixed worker pool spec.md section 4.8
// describes: a bounded set of workers, each owning a three-level priority
// notification queue, fed by round-robin submission and drained by
// round-robin work-stealing. Grounded on archivefs/async.go's
// channel-driven goroutine loop (non-blocking send via select+default,
// drain-then-exit on a dedicated done channel) generalized from one
// goroutine servicing one channel to a fixed pool servicing a priority
// queue per worker, plus golang.org/x/sync/errgroup for the worker-exit
// join barrier.
package scheduler

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Priority is one of the three notification-queue levels spec.md section
// 4.8 calls for.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
)

const numPriorities = 3

// queueDepth is the buffer each priority queue carries before a submitter's
// non-blocking push attempt fails over to the next worker (and, having
// tried every worker, to a blocking push).
const queueDepth = 64

type worker struct {
	queues [numPriorities]chan func()
	done   chan struct{}
}

func newWorker() *worker {
	w := &worker{done: make(chan struct{})}
	for i := range w.queues {
		w.queues[i] = make(chan func(), queueDepth)
	}
	return w
}

// Pool is a fixed set of workers, each with its own priority queue.
// Submission scans queues round-robin for a non-blocking slot; workers
// steal round-robin from each other, highest priority first, before
// blocking on their own queue.
type Pool struct {
	workers []*worker
	next    uint64

	tasks sync.WaitGroup
	eg    errgroup.Group
}

// New starts a pool of size workers (at least 1).
func New(size int) *Pool {
	if size < 1 {
		size = 1
	}

	p := &Pool{workers: make([]*worker, size)}
	for i := range p.workers {
		p.workers[i] = newWorker()
	}
	for i, w := range p.workers {
		self, wkr := i, w
		p.eg.Go(func() error {
			p.run(self, wkr)
			return nil
		})
	}
	return p
}

// Default starts a pool sized max(1, runtime.NumCPU()), matching spec.md
// section 4.8's "max(1, hardware_concurrency)".
func Default() *Pool {
	return New(runtime.NumCPU())
}

// Submit schedules task at normal priority. Its signature matches
// container.Handler.Submit and macho.Process's submit parameter, so a
// *Pool satisfies either directly — no adapter closure required.
func (p *Pool) Submit(task func()) {
	p.SubmitPriority(PriorityNormal, task)
}

// SubmitPriority schedules task at the given priority: the submitter scans
// every worker's queue at that priority, round-robin starting from an
// incrementing cursor, attempting a non-blocking push; the first to succeed
// takes the task. If every worker's queue at that priority is full, the
// submitter falls back to a blocking push on the cursor's own worker.
func (p *Pool) SubmitPriority(priority Priority, task func()) {
	p.tasks.Add(1)
	wrapped := func() {
		defer p.tasks.Done()
		task()
	}

	n := len(p.workers)
	start := int(atomic.AddUint64(&p.next, 1)-1) % n

	for i := 0; i < n; i++ {
		idx := (start + i) % n
		select {
		case p.workers[idx].queues[priority] <- wrapped:
			return
		default:
		}
	}

	p.workers[start].queues[priority] <- wrapped
}

// Join blocks until every task submitted so far has run to completion — the
// process-wide work counter spec.md section 4.8 calls for, letting the
// caller wait for a batch of submissions without tearing the pool down.
func (p *Pool) Join() {
	p.tasks.Wait()
}

// Shutdown marks every worker done. Each worker finishes draining whatever
// remains in its own queues before exiting; Shutdown blocks until every
// worker goroutine has returned.
func (p *Pool) Shutdown() {
	for _, w := range p.workers {
		close(w.done)
	}
	p.eg.Wait() //nolint:errcheck // workers never return a non-nil error
}

func (p *Pool) run(self int, w *worker) {
	n := len(p.workers)
	for {
		if task, ok := p.tryPop(self, n); ok {
			task()
			continue
		}

		select {
		case <-w.done:
			drain(w)
			return
		case task := <-w.queues[PriorityHigh]:
			task()
		case task := <-w.queues[PriorityNormal]:
			task()
		case task := <-w.queues[PriorityLow]:
			task()
		}
	}
}

// tryPop is the work-stealing scan: every priority level, highest first,
// scanned across all workers round-robin starting at self, each a
// non-blocking pop.
func (p *Pool) tryPop(self, n int) (func(), bool) {
	for lvl := PriorityHigh; lvl >= PriorityLow; lvl-- {
		for i := 0; i < n; i++ {
			idx := (self + i) % n
			select {
			case task := <-p.workers[idx].queues[lvl]:
				return task, true
			default:
			}
		}
	}
	return nil, false
}

func drain(w *worker) {
	for {
		select {
		case task := <-w.queues[PriorityHigh]:
			task()
		case task := <-w.queues[PriorityNormal]:
			task()
		case task := <-w.queues[PriorityLow]:
			task()
		default:
			return
		}
	}
}
