package production

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Outcome of one build attempt.
type Outcome string

const (
	Built    Outcome = "built"
	Rejected Outcome = "rejected"
)

// BuildEvent reports the outcome of finalizing one order.
type BuildEvent struct {
	RecordID  uuid.UUID `json:"recordID" yaml:"recordID"`
	Owner     string    `json:"owner" yaml:"owner"`
	Outcome   Outcome   `json:"outcome" yaml:"outcome"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// ChannelPublisher is a stdlib-only implementation that forwards events to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch chan<- BuildEvent
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- BuildEvent) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, event BuildEvent) error {
	select {
	case p.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // Non-blocking drop
	}
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}
