package scheduler

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/adobe-type-tools/orc/test"
)

func TestSubmitRunsTask(t *testing.T) {
	p := New(2)
	defer p.Shutdown()

	var ran int32
	p.Submit(func() { atomic.AddInt32(&ran, 1) })
	p.Join()

	test.Equate(t, ran, int32(1))
}

func TestJoinWaitsForEveryTask(t *testing.T) {
	p := New(4)
	defer p.Shutdown()

	const n = 200
	var count int32
	for i := 0; i < n; i++ {
		p.Submit(func() { atomic.AddInt32(&count, 1) })
	}
	p.Join()

	test.Equate(t, count, int32(n))
}

func TestPrioritySchedulingOrder(t *testing.T) {
	p := New(1)
	defer p.Shutdown()

	started := make(chan struct{})
	gate := make(chan struct{})

	p.Submit(func() {
		close(started)
		<-gate
	})
	<-started // the single worker is now blocked inside the gate task

	var mu sync.Mutex
	var order []string
	record := func(name string) func() {
		return func() {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
		}
	}

	p.SubmitPriority(PriorityLow, record("low"))
	p.SubmitPriority(PriorityHigh, record("high"))
	p.SubmitPriority(PriorityNormal, record("normal"))

	close(gate)
	p.Join()

	test.Equate(t, order, []string{"high", "normal", "low"})
}

func TestShutdownDrainsQueuedTasks(t *testing.T) {
	p := New(1)

	started := make(chan struct{})
	gate := make(chan struct{})
	var ran int32

	p.Submit(func() {
		close(started)
		<-gate
	})
	<-started

	for i := 0; i < 5; i++ {
		p.SubmitPriority(PriorityNormal, func() { atomic.AddInt32(&ran, 1) })
	}

	close(gate)
	p.Shutdown()

	test.Equate(t, ran, int32(5))
}

func TestNewPoolIsAtLeastOneWorker(t *testing.T) {
	p := New(0)
	defer p.Shutdown()

	test.Equate(t, len(p.workers) >= 1, true)
}
