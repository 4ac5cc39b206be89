package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Token cancels one scheduled task. Cancel reports whether the task was
// still pending; it is safe to call more than once.
type Token interface {
	Cancel() bool
}

// Scheduler runs fn once after d elapses.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Token
}

// Real schedules on the runtime timer.
type Real struct{}

func NewReal() Real {
	return Real{}
}

func (Real) AfterFunc(d time.Duration, fn func()) Token {
	return realToken{timer: time.AfterFunc(d, fn)}
}

type realToken struct {
	timer *time.Timer
}

func (t realToken) Cancel() bool {
	return t.timer.Stop()
}

// Manual is a deterministic scheduler driven by Advance. Tasks fire on the
// goroutine calling Advance, in due order.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*manualTask
}

type manualTask struct {
	owner *Manual
	due   time.Time
	seq   uint64
	fn    func()
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Token {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	task := &manualTask{owner: m, due: m.now.Add(d), seq: m.seq, fn: fn}
	m.pending = append(m.pending, task)
	return task
}

// Advance moves the clock forward by d and runs every task that becomes due,
// including tasks scheduled by callbacks within the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	for {
		task := m.nextDueLocked(target)
		if task == nil {
			break
		}
		if task.due.After(m.now) {
			m.now = task.due
		}
		m.mu.Unlock()
		task.fn()
		m.mu.Lock()
	}
	m.now = target
	m.mu.Unlock()
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of scheduled, uncancelled tasks.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

func (m *Manual) nextDueLocked(target time.Time) *manualTask {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if !m.pending[i].due.Equal(m.pending[j].due) {
			return m.pending[i].due.Before(m.pending[j].due)
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	task := m.pending[0]
	if task.due.After(target) {
		return nil
	}
	m.pending = m.pending[1:]
	return task
}

func (t *manualTask) Cancel() bool {
	m := t.owner
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, task := range m.pending {
		if task == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return true
		}
	}
	return false
}
