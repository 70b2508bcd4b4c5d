package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"

	gallery "github.com/gogpu/nanogallery"
)

// Pool is a bounded pool of goroutines for background decode work.
//
// Workers are spawned lazily: Execute starts a new worker only when none is
// idle and fewer than Max() exist, so an idle gallery holds no goroutines.
// Tasks wait in a single unbounded FIFO shared by all workers; Execute never
// blocks, which lets callers submit while holding their own locks.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	max int

	mu    sync.Mutex
	cond  *sync.Cond
	queue []func()

	// workers is the number of live worker goroutines.
	workers int

	// idle counts workers parked in cond.Wait that nobody has signaled yet.
	idle int

	closed bool

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool that runs at most max workers.
// If max is 0 or negative, GOMAXPROCS is used. No goroutine is started
// until the first task arrives.
func NewPool(max int) *Pool {
	if max <= 0 {
		max = runtime.GOMAXPROCS(0)
	}
	p := &Pool{max: max}
	p.cond = sync.NewCond(&p.mu)
	p.running.Store(true)
	return p
}

// Execute queues task for execution. If the pool is closed or task is nil
// this is a no-op.
func (p *Pool) Execute(task func()) {
	if task == nil || !p.running.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	p.queue = append(p.queue, task)

	if p.idle > 0 {
		p.idle--
		p.cond.Signal()
		return
	}
	if p.workers < p.max {
		p.workers++
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.idle++
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			// Closed and drained.
			p.workers--
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue[0] = nil
		p.queue = p.queue[1:]
		p.mu.Unlock()

		p.run(task)
	}
}

// run executes one task, keeping the worker alive if it panics.
func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			gallery.Logger().Error("parallel: task panicked", "panic", r)
		}
	}()
	task()
}

// Close stops accepting work, waits for queued tasks to finish and then
// stops all workers. Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()
}

// Max returns the worker cap.
func (p *Pool) Max() int {
	return p.max
}

// Workers returns the number of live worker goroutines.
func (p *Pool) Workers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workers
}

// Pending returns the number of queued tasks no worker has picked up yet.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Idle returns the number of parked workers available for reuse.
func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idle
}
