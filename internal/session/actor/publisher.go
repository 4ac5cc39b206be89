package actor

import "sync/atomic"

const DefaultSubscriberBuffer = 8

// Publisher fans snapshots out to subscribers. Publish, Add and Remove must
// be called from the owning loop; Latest is safe from any goroutine.
type Publisher[S any] struct {
	latest atomic.Pointer[S]
	subs   map[uint64]chan S
	nextID uint64
	buffer int
}

func NewPublisher[S any](initial S, buffer int) *Publisher[S] {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	p := &Publisher[S]{
		subs:   make(map[uint64]chan S),
		buffer: buffer,
	}
	p.latest.Store(&initial)
	return p
}

func (p *Publisher[S]) Latest() S {
	return *p.latest.Load()
}

// Publish stores s as the latest snapshot and offers it to every
// subscriber. A subscriber whose buffer is full loses its oldest pending
// snapshot so that the newest one is always delivered.
func (p *Publisher[S]) Publish(s S) {
	p.latest.Store(&s)
	for _, ch := range p.subs {
		trySendLatest(ch, s)
	}
}

// Add registers a subscriber primed with the latest snapshot.
func (p *Publisher[S]) Add() (uint64, <-chan S) {
	p.nextID++
	id := p.nextID
	ch := make(chan S, p.buffer)
	ch <- p.Latest()
	p.subs[id] = ch
	return id, ch
}

func (p *Publisher[S]) Remove(id uint64) {
	if ch, ok := p.subs[id]; ok {
		delete(p.subs, id)
		close(ch)
	}
}

func (p *Publisher[S]) Len() int {
	return len(p.subs)
}

// Close removes every subscriber.
func (p *Publisher[S]) Close() {
	for id := range p.subs {
		p.Remove(id)
	}
}

func trySendLatest[S any](ch chan S, s S) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
