package schedule

import (
	"slices"
	"sort"
)

// Task is an action and the tick at which it becomes due.
type Task struct {
	Action Action
	Wake   uint32

	seq uint64 // insertion order, stamped by the queue
}

// queue keeps tasks ascending by Wake, first-in first-out among equal Wake.
type queue struct {
	tasks []Task
	seq   uint64 // stamp for the next insert
}

// insert places t after every task whose Wake is not greater than its own.
func (q *queue) insert(t Task) {
	t.seq = q.seq
	q.seq++
	i := sort.Search(len(q.tasks), func(i int) bool { return q.tasks[i].Wake > t.Wake })
	q.tasks = slices.Insert(q.tasks, i, t)
}

func (q *queue) front() (Task, bool) {
	if len(q.tasks) == 0 {
		return Task{}, false
	}
	return q.tasks[0], true
}

func (q *queue) pop() (Task, bool) {
	t, ok := q.front()
	if !ok {
		return t, false
	}
	q.tasks[0] = Task{}
	q.tasks = q.tasks[1:]
	return t, true
}

func (q *queue) len() int { return len(q.tasks) }
