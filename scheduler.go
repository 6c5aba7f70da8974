package outcome

import "sync"

type asyncScheduler struct{}

func (asyncScheduler) Schedule(task func()) {
	go task()
}

// Async returns the default scheduler. Every task runs on its own goroutine.
func Async() Scheduler {
	return asyncScheduler{}
}

// SerialQueue is a deterministic Scheduler: Schedule only enqueues, nothing
// runs until Flush is called. One task body executes at a time, in FIFO
// order, so tests can drive continuation chains step by step instead of
// relying on real asynchronous timing.
type SerialQueue struct {
	mutex sync.Mutex
	tasks []func()
}

func NewSerialQueue() *SerialQueue {
	return &SerialQueue{}
}

func (q *SerialQueue) Schedule(task func()) {
	q.mutex.Lock()
	q.tasks = append(q.tasks, task)
	q.mutex.Unlock()
}

// Len reports the number of tasks waiting to run.
func (q *SerialQueue) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return len(q.tasks)
}

// Flush runs queued tasks in order until the queue is empty. Tasks scheduled
// while flushing (chained continuations) run in the same pass.
func (q *SerialQueue) Flush() {
	for {
		q.mutex.Lock()
		if 0 == len(q.tasks) {
			q.mutex.Unlock()
			return
		}
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.mutex.Unlock()

		task()
	}
}
