package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"smart-parking/internal/usecase/shared"
)

type Subscriber interface {
	HandleSpotEvent(ev shared.SpotEvent)
}

type SubscriberFunc func(ev shared.SpotEvent)

func (f SubscriberFunc) HandleSpotEvent(ev shared.SpotEvent) { f(ev) }

// Dispatcher fans spot events out to subscribers from a single goroutine,
// so every subscriber sees events in publish order. Publish never blocks:
// when the buffer is full the event is dropped and counted.
type Dispatcher struct {
	queue chan shared.SpotEvent

	mu          sync.RWMutex
	subscribers []Subscriber

	dropped atomic.Uint64

	cancel context.CancelFunc
	done   chan struct{}
}

func NewDispatcher(bufferSize int) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Dispatcher{
		queue: make(chan shared.SpotEvent, bufferSize),
	}
}

func (d *Dispatcher) Subscribe(s Subscriber) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers = append(d.subscribers, s)
}

func (d *Dispatcher) Publish(ev shared.SpotEvent) {
	select {
	case d.queue <- ev:
	default:
		n := d.dropped.Add(1)
		slog.Warn("event buffer full, dropping spot event",
			slog.String("type", string(ev.Type)),
			slog.String("spot_id", ev.SpotID),
			slog.Uint64("dropped_total", n))
	}
}

func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Start runs delivery until Stop is called.
func (d *Dispatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})
	go func() {
		defer close(d.done)
		d.Run(ctx)
	}()
}

// Stop ends delivery after the events already queued have been handed out.
func (d *Dispatcher) Stop(ctx context.Context) error {
	if d.cancel == nil {
		return nil
	}
	d.cancel()
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case ev := <-d.queue:
			d.deliver(ev)
		case <-ctx.Done():
			d.drain()
			return
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case ev := <-d.queue:
			d.deliver(ev)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ev shared.SpotEvent) {
	d.mu.RLock()
	subs := d.subscribers
	d.mu.RUnlock()

	for _, s := range subs {
		d.safeHandle(s, ev)
	}
}

func (d *Dispatcher) safeHandle(s Subscriber, ev shared.SpotEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("spot event subscriber panicked",
				slog.Any("panic", r),
				slog.String("spot_id", ev.SpotID))
		}
	}()
	s.HandleSpotEvent(ev)
}
