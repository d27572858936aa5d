// Package schedule is a single-threaded cooperative scheduler. Tasks run to
// completion in Wake order off a free-running tick counter; nothing preempts
// them and nothing runs between two of them.
package schedule

import (
	"context"

	"duecode-go/errcode"
)

// Clock is the monotonic tick source, usually *rtt.Timer.
type Clock interface {
	Ticks() uint32
}

// Action is a unit of work. It receives the scheduler so it can queue more
// work, yield, or re-arm itself with RepeatIn.
type Action func(*Scheduler)

// Config controls how the drain loops treat tasks that are not yet due.
type Config struct {
	// GateOnDue leaves the front task queued until its Wake tick has been
	// reached. When false, YieldFor, RunOnce and MainLoop run the front task
	// as soon as they see it, whatever its Wake.
	GateOnDue bool

	// Capacity preallocates the queue.
	Capacity int
}

// DefaultConfig runs tasks best effort: queue order only, no due-time gate.
func DefaultConfig() Config {
	return Config{Capacity: 8}
}

func (c Config) Validate() error {
	if c.Capacity < 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "schedule.Config", Msg: "Capacity must not be negative"}
	}
	return nil
}

// frame records one task invocation for RepeatIn.
type frame struct {
	action Action
	armed  bool
}

type Scheduler struct {
	clock Clock
	cfg   Config
	q     queue

	running []*frame // innermost last
	last    *frame   // most recently completed
}

func New(clock Clock, cfg Config) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scheduler{
		clock: clock,
		cfg:   cfg,
		q:     queue{tasks: make([]Task, 0, cfg.Capacity)},
	}, nil
}

// Push queues action to run delay ticks from now. Wake wraps silently.
func (s *Scheduler) Push(action Action, delay uint32) {
	s.q.insert(Task{Action: action, Wake: s.clock.Ticks() + delay})
}

// PushTask queues a task with an explicit Wake.
func (s *Scheduler) PushTask(t Task) { s.q.insert(t) }

// Len is the number of queued tasks.
func (s *Scheduler) Len() int { return s.q.len() }

// Next peeks at the front of the queue.
func (s *Scheduler) Next() (Task, bool) { return s.q.front() }

// popNext removes the front task. With GateOnDue it refuses a task whose
// Wake is still ahead of the clock.
func (s *Scheduler) popNext() (Task, bool) {
	t, ok := s.q.front()
	if !ok {
		return t, false
	}
	if s.cfg.GateOnDue && t.Wake > s.clock.Ticks() {
		return Task{}, false
	}
	return s.q.pop()
}

func (s *Scheduler) run(t Task) {
	f := &frame{action: t.Action}
	s.running = append(s.running, f)
	defer func() {
		s.running[len(s.running)-1] = nil
		s.running = s.running[:len(s.running)-1]
		s.last = f
	}()
	t.Action(s)
}

// RunOnce runs the next task if there is one and returns whether it did.
func (s *Scheduler) RunOnce() bool {
	t, ok := s.popNext()
	if !ok {
		return false
	}
	s.run(t)
	return true
}

// YieldFor runs queued tasks until ms ticks have passed. It returns at once
// if now+ms wraps past the top of the counter.
func (s *Scheduler) YieldFor(ms uint32) {
	until := s.clock.Ticks() + ms
	for s.clock.Ticks() < until {
		s.RunOnce()
	}
}

// RunDue runs the tasks that are due now, in order, and returns how many it
// started. Tasks queued after it was called wait for the next call even if
// already due, including those a task drains itself by yielding.
func (s *Scheduler) RunDue() int {
	now := s.clock.Ticks()
	start := s.q.seq
	ran := 0
	for {
		t, ok := s.q.front()
		if !ok || t.Wake > now || t.seq >= start {
			return ran
		}
		s.q.pop()
		s.run(t)
		ran++
	}
}

// MainLoop runs tasks forever.
func (s *Scheduler) MainLoop() {
	for {
		s.RunOnce()
	}
}

// Run is MainLoop with a way out. ctx is checked between tasks only.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.RunOnce()
	}
}

// RepeatIn queues the current task again, ms ticks from now. The current task
// is the innermost one still running, or the one that finished last. Each
// invocation can be re-armed once; a second call, or a call before any task
// has run, panics with errcode.NoTaskToRepeat.
func (s *Scheduler) RepeatIn(ms uint32) {
	f := s.last
	if n := len(s.running); n > 0 {
		f = s.running[n-1]
	}
	if f == nil || f.armed {
		errcode.Fatal(errcode.NoTaskToRepeat, "schedule.RepeatIn", "no task to repeat")
	}
	f.armed = true
	s.Push(f.action, ms)
}
