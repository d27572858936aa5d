package schedule

import (
	"math/rand"
	"testing"
)

func ascending(tasks []Task) bool {
	for i := 1; i < len(tasks); i++ {
		if tasks[i-1].Wake > tasks[i].Wake {
			return false
		}
	}
	return true
}

func TestQueueAscendingAfterRandomInserts(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for round := 0; round < 200; round++ {
		var q queue
		n := 1 + r.Intn(64)
		for i := 0; i < n; i++ {
			q.insert(Task{Wake: uint32(r.Intn(100))})
			if !ascending(q.tasks) {
				t.Fatalf("round %d insert %d: %v", round, i, wakes(q.tasks))
			}
		}
		if q.len() != n {
			t.Fatalf("len %d want %d", q.len(), n)
		}
	}
}

// The task with the latest wake must land at the back, not one slot before it.
func TestQueueLatestTaskAppends(t *testing.T) {
	var q queue
	for _, w := range []uint32{10, 20, 30} {
		q.insert(Task{Wake: w})
	}
	q.insert(Task{Wake: 40})
	if got := wakes(q.tasks); got[len(got)-1] != 40 || !ascending(q.tasks) {
		t.Fatalf("got %v", got)
	}
	q.insert(Task{Wake: 5})
	if got := wakes(q.tasks); got[0] != 5 {
		t.Fatalf("got %v", got)
	}
}

func TestQueueFIFOAmongEqualWake(t *testing.T) {
	var q queue
	var order []int
	mk := func(id int) Action { return func(*Scheduler) { order = append(order, id) } }

	q.insert(Task{Action: mk(1), Wake: 5})
	q.insert(Task{Action: mk(2), Wake: 5})
	q.insert(Task{Action: mk(0), Wake: 1})
	q.insert(Task{Action: mk(3), Wake: 5})
	q.insert(Task{Action: mk(4), Wake: 9})

	for {
		tk, ok := q.pop()
		if !ok {
			break
		}
		tk.Action(nil)
	}
	want := []int{0, 1, 2, 3, 4}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order %v want %v", order, want)
		}
	}
}

func TestQueuePopEmpty(t *testing.T) {
	var q queue
	if _, ok := q.pop(); ok {
		t.Fatal("pop on empty queue")
	}
	if _, ok := q.front(); ok {
		t.Fatal("front on empty queue")
	}
}

func wakes(tasks []Task) []uint32 {
	out := make([]uint32, len(tasks))
	for i, t := range tasks {
		out[i] = t.Wake
	}
	return out
}
