// Package actor provides the single-goroutine event loop and snapshot
// publisher shared by the session controllers.
package actor

import (
	"context"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

var (
	ErrStopped        = errors.New("event loop stopped")
	ErrAlreadyRunning = errors.New("event loop already running")
)

type command struct {
	apply func() error
	reply chan error
}

// Loop serializes closures onto one goroutine. Everything a closure touches
// is owned by the loop and must not be read elsewhere.
type Loop struct {
	cmds    chan command
	done    chan struct{}
	running atomic.Bool
}

func NewLoop() *Loop {
	return &Loop{
		cmds: make(chan command),
		done: make(chan struct{}),
	}
}

// Run processes commands until ctx is cancelled. onStop runs on the loop
// goroutine before Run returns. A Loop can run only once.
func (l *Loop) Run(ctx context.Context, onStop func()) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(l.done)
	if onStop != nil {
		defer onStop()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-l.cmds:
			err := cmd.apply()
			if cmd.reply != nil {
				cmd.reply <- err
			}
		}
	}
}

// Do runs fn on the loop and waits for its result.
func (l *Loop) Do(ctx context.Context, fn func() error) error {
	cmd := command{apply: fn, reply: make(chan error, 1)}

	select {
	case l.cmds <- cmd:
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.reply:
		return err
	case <-l.done:
		select {
		case err := <-cmd.reply:
			return err
		default:
			return ErrStopped
		}
	}
}

// Post queues fn without waiting. It is dropped once the loop has stopped.
func (l *Loop) Post(fn func()) {
	cmd := command{apply: func() error { fn(); return nil }}
	select {
	case l.cmds <- cmd:
	case <-l.done:
	}
}

func (l *Loop) Done() <-chan struct{} {
	return l.done
}
