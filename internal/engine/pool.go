package engine

import "golang.org/x/sync/errgroup"

// Pool is a fixed-size set of workers draining a PriorityQueue. Each worker
// runs dequeued tasks to completion; there are no cooperative yield points
// inside a task.
type Pool struct {
	Queue *PriorityQueue
	group errgroup.Group
}

// NewPool starts `workers` goroutines pulling from a fresh PriorityQueue.
func NewPool(workers int) *Pool {
	p := &Pool{Queue: NewPriorityQueue()}
	for i := 0; i < workers; i++ {
		p.group.Go(func() error {
			for {
				task, ok := p.Queue.Dequeue()
				if !ok {
					return nil
				}
				task()
			}
		})
	}
	return p
}

// Close stops accepting new tasks; workers finish whatever is already
// queued and then exit.
func (p *Pool) Close() {
	p.Queue.Close()
}

// Wait blocks until every worker has exited. Call Close first.
func (p *Pool) Wait() {
	_ = p.group.Wait()
}
