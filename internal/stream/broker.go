package stream

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrBrokerClosed reports a Publish against a closed broker.
var ErrBrokerClosed = errors.New("broker is closed")

// Message is one unit on the query channel. Key routes it; Body carries the
// JSON payload.
type Message struct {
	ID   string
	Key  string
	Body []byte
}

// Consumer hands out inbound messages until the context ends.
type Consumer interface {
	Messages() <-chan Message
}

// Publisher emits outbound messages.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) error
}

// Broker is an in-process message channel implementing both sides. It stands
// in for an external broker in tests and single-binary deployments.
type Broker struct {
	messages  chan Message
	done      chan struct{}
	mu        sync.Mutex
	inflight  sync.WaitGroup
	closed    bool
	published []Message
}

func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = 64
	}
	return &Broker{
		messages: make(chan Message, buffer),
		done:     make(chan struct{}),
	}
}

func (b *Broker) Messages() <-chan Message {
	return b.messages
}

// Publish records the message and feeds it to consumers. Every key flows
// through the same channel; consumers filter on key, so the channel buffer
// must be large enough that a consumer replying to itself never fills it.
// A Publish blocked on a full channel unblocks with an error when the
// context ends or the broker closes.
func (b *Broker) Publish(ctx context.Context, key string, body []byte) error {
	msg := Message{ID: uuid.NewString(), Key: key, Body: body}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBrokerClosed
	}
	b.published = append(b.published, msg)
	b.inflight.Add(1)
	b.mu.Unlock()
	defer b.inflight.Done()

	select {
	case b.messages <- msg:
		return nil
	case <-b.done:
		return ErrBrokerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Published returns a copy of every message seen so far, in publish order.
func (b *Broker) Published() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Message, len(b.published))
	copy(out, b.published)
	return out
}

// Outputs returns the published messages whose key matches the given key.
func (b *Broker) Outputs(key string) []Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Message
	for _, m := range b.published {
		if m.Key == key {
			out = append(out, m)
		}
	}
	return out
}

// Close stops the consumer channel. Close waits for in-flight Publish calls
// to finish before closing the channel, so a blocked Publish never races the
// close; it unblocks with ErrBrokerClosed instead. Publishing after Close is
// an error.
func (b *Broker) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.done)
	b.mu.Unlock()

	b.inflight.Wait()
	close(b.messages)
}
