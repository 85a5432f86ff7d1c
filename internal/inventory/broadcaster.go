package inventory

import (
	"log/slog"
	"sync"
)

// DefaultStreamBuffer is the per-subscriber queue depth used when the
// configured value is zero.
const DefaultStreamBuffer = 64

// Broadcaster fans a showtime's event stream out to live subscribers.
// Delivery is best-effort per subscriber: each one owns a bounded buffered
// channel, and a subscriber whose buffer is full when an event arrives is
// disconnected rather than ever blocking the publisher.
type Broadcaster struct {
	mu         sync.Mutex
	showtimeID int64
	buffer     int
	nextID     uint64
	subs       map[uint64]chan Event
	logger     *slog.Logger
}

func NewBroadcaster(showtimeID int64, buffer int, logger *slog.Logger) *Broadcaster {
	if buffer <= 0 {
		buffer = DefaultStreamBuffer
	}
	return &Broadcaster{
		showtimeID: showtimeID,
		buffer:     buffer,
		subs:       make(map[uint64]chan Event),
		logger:     logger,
	}
}

// Subscribe registers a new subscriber and queues the given snapshot as its
// first event. The returned cancel func detaches the subscriber and closes
// its channel; it is safe to call more than once.
func (b *Broadcaster) Subscribe(snapshot Event) (<-chan Event, func()) {
	ch := make(chan Event, b.buffer)
	ch <- snapshot

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(ch)
			}
			b.mu.Unlock()
		})
	}
	return ch, cancel
}

// Publish delivers events to every current subscriber in call order. A
// subscriber that cannot keep up is dropped on the spot.
func (b *Broadcaster) Publish(events ...Event) {
	if len(events) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs {
		alive := true
		for _, ev := range events {
			select {
			case ch <- ev:
			default:
				alive = false
			}
			if !alive {
				break
			}
		}
		if !alive {
			delete(b.subs, id)
			close(ch)
			if b.logger != nil {
				b.logger.Warn("dropping slow seat-stream subscriber",
					"showtime_id", b.showtimeID, "subscriber_id", id)
			}
		}
	}
}

// SubscriberCount is used by the heartbeat loop to skip idle topics.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
