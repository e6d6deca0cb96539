package service

import (
	"context"
	"sync"
	"time"

	"github.com/ds124wfegd/eventease/internal/notify"
	"github.com/sirupsen/logrus"
)

// EventSender publishes record events on background goroutines.
type EventSender struct {
	publisher notify.Publisher
	timeout   time.Duration
	wg        sync.WaitGroup
}

func NewEventSender(publisher notify.Publisher, timeout time.Duration) *EventSender {
	return &EventSender{
		publisher: publisher,
		timeout:   timeout,
	}
}

func (s *EventSender) Send(ctx context.Context, event notify.Event) {
	if s == nil || s.publisher == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx := context.WithoutCancel(ctx)
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		if err := s.publisher.Publish(ctx, event); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"type": event.Type,
				"id":   event.ID,
			}).Warn("Failed to publish event")
		}
	}()
}

// Wait blocks until every event handed to Send has been published or failed.
func (s *EventSender) Wait() {
	if s == nil {
		return
	}
	s.wg.Wait()
}

// Drain is Wait bounded by ctx. Events still in flight when ctx ends are
// abandoned and ctx.Err() is returned.
func (s *EventSender) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
