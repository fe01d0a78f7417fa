package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDelay is the pause between a successful relay call and the
// response, so the page's "Sending..." state is visible.
const DefaultDelay = time.Second

// Receipt identifies an accepted submission.
type Receipt struct {
	ID     string    `json:"id"`
	SentAt time.Time `json:"sentAt"`
}

// Service runs a submission through validation, throttling and the relay.
type Service struct {
	sender   Sender
	throttle Throttle
	delay    time.Duration
	log      *zap.Logger
	now      func() time.Time
}

// NewService builds a Service. A nil throttle allows everything; a
// negative delay means none.
func NewService(sender Sender, throttle Throttle, delay time.Duration, log *zap.Logger) *Service {
	if throttle == nil {
		throttle = NopThrottle{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if delay < 0 {
		delay = 0
	}
	return &Service{
		sender:   sender,
		throttle: throttle,
		delay:    delay,
		log:      log,
		now:      time.Now,
	}
}

// Submit validates msg, checks the client's quota and forwards it. Errors
// match ErrInvalid, ErrThrottled or ErrRelay, or are the context's error
// when the caller gave up during the delay.
func (s *Service) Submit(ctx context.Context, client string, msg Message) (Receipt, error) {
	msg = msg.Normalize()
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	ok, err := s.throttle.Allow(ctx, client)
	if err != nil {
		// Fail open when the throttle store is unreachable
		s.log.Warn("throttle unavailable", zap.String("client", client), zap.Error(err))
		ok = true
	}
	if !ok {
		s.log.Info("contact throttled", zap.String("client", client))
		return Receipt{}, ErrThrottled
	}

	id := uuid.NewString()
	log := s.log.With(zap.String("id", id), zap.String("client", client))

	if err := s.sender.Send(ctx, msg); err != nil {
		log.Error("relay send failed", zap.Error(err))
		return Receipt{}, err
	}
	log.Info("contact message relayed", zap.Int("length", len(msg.Message)))

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-t.C:
		}
	}
	return Receipt{ID: id, SentAt: s.now()}, nil
}
