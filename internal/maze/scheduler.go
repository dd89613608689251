package maze

import (
	"sort"
	"time"
)

// Scheduler runs one-shot callbacks against virtual time. The owner of
// the game loop advances it once per tick, so callbacks always run on the
// loop's goroutine, between ticks.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*Task
}

// Task is a pending callback returned by AfterFunc.
type Task struct {
	at    time.Duration
	seq   uint64
	fn    func()
	sched *Scheduler
	done  bool
}

// NewScheduler returns a scheduler at virtual time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the virtual time elapsed so far.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// AfterFunc schedules fn to run once d has elapsed.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{at: s.now + max(d, 0), seq: s.seq, fn: fn, sched: s}
	s.tasks = append(s.tasks, t)
	return t
}

// Pending returns the number of tasks that have neither fired nor been
// cancelled.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves virtual time forward by d and runs every task that came
// due, earliest first. Tasks scheduled by a callback run in the same call
// if they fall due within d.
func (s *Scheduler) Advance(d time.Duration) {
	end := s.now + max(d, 0)
	for {
		t := s.nextDue(end)
		if t == nil {
			break
		}
		s.now = t.at
		s.remove(t)
		t.done = true
		t.fn()
	}
	s.now = end
}

func (s *Scheduler) nextDue(end time.Duration) *Task {
	if len(s.tasks) == 0 {
		return nil
	}
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].at != s.tasks[j].at {
			return s.tasks[i].at < s.tasks[j].at
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})
	if s.tasks[0].at > end {
		return nil
	}
	return s.tasks[0]
}

func (s *Scheduler) remove(t *Task) {
	for i, x := range s.tasks {
		if x == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Cancel stops the task from firing. It reports whether the task was
// still pending. Cancelling a nil task is a no-op.
func (t *Task) Cancel() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	t.sched.remove(t)
	return true
}
