package result

import (
	"context"
	"sync"
)

// subscriberBuffer is how many undelivered values a subscriber may lag
// behind before the oldest ones are dropped.
const subscriberBuffer = 8

// Holder is an observable slot for one Result. Every subscriber receives
// values in the order they were set.
type Holder[T any] struct {
	pub sync.Mutex

	mu      sync.Mutex
	current Result[T]
	subs    map[int]chan Result[T]
	nextID  int
}

func NewHolder[T any]() *Holder[T] {
	return &Holder[T]{
		current: Idle[T](),
		subs:    make(map[int]chan Result[T]),
	}
}

func (h *Holder[T]) Get() Result[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Set replaces the current value and never blocks on subscribers. A
// subscriber whose buffer is full loses its oldest pending value; the
// newest value is always delivered.
func (h *Holder[T]) Set(r Result[T]) {
	h.pub.Lock()
	defer h.pub.Unlock()

	h.mu.Lock()
	h.current = r
	subs := make([]chan Result[T], 0, len(h.subs))
	for _, ch := range h.subs {
		subs = append(subs, ch)
	}
	h.mu.Unlock()

	for _, ch := range subs {
		deliver(ch, r)
	}
}

func deliver[T any](ch chan Result[T], r Result[T]) {
	select {
	case ch <- r:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- r:
	default:
	}
}

// Subscribe returns a channel receiving every value set after the call.
// The channel is closed once ctx is done; a ctx that can never be done
// keeps the subscription for the life of the holder.
func (h *Holder[T]) Subscribe(ctx context.Context) <-chan Result[T] {
	ch := make(chan Result[T], subscriberBuffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	if ctx.Done() == nil {
		return ch
	}

	go func() {
		<-ctx.Done()
		h.pub.Lock()
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
		close(ch)
		h.pub.Unlock()
	}()

	return ch
}
