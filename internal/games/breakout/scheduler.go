package breakout

import "container/heap"

// Task is a pending power-up reversion.
// Epoch ties the task to the session run that scheduled it.
type Task struct {
	FireAt float64 // session timestamp in milliseconds
	Effect Effect
	Epoch  uint64

	seq uint64
}

// Scheduler is a time-ordered queue of reversions. It is not safe for
// concurrent use: the session owns it and drains it from its frame step.
type Scheduler struct {
	queue taskQueue
	seq   uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule enqueues a reversion. Tasks due at the same time run in the
// order they were scheduled.
func (s *Scheduler) Schedule(fireAt float64, effect Effect, epoch uint64) {
	s.seq++
	heap.Push(&s.queue, Task{FireAt: fireAt, Effect: effect, Epoch: epoch, seq: s.seq})
}

// PopDue removes and returns every task with FireAt <= now, earliest first.
func (s *Scheduler) PopDue(now float64) []Task {
	var due []Task
	for len(s.queue) > 0 && s.queue[0].FireAt <= now {
		due = append(due, heap.Pop(&s.queue).(Task))
	}
	return due
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Pending returns how many tasks of the given epoch are still queued.
func (s *Scheduler) Pending(epoch uint64) int {
	n := 0
	for _, t := range s.queue {
		if t.Epoch == epoch {
			n++
		}
	}
	return n
}

// taskQueue implements heap.Interface ordered by (FireAt, seq).
type taskQueue []Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].FireAt != q[j].FireAt {
		return q[i].FireAt < q[j].FireAt
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(Task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	*q = old[:n-1]
	return t
}
