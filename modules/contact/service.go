package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/contactform/pkg/async"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/sanitizer"
)

// Service validates submissions and hands them to a Submitter in the background.
type Service struct {
	submitter Submitter
	locker    Locker
	lockTTL   time.Duration
	log       *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLocker sets the in-flight guard. Defaults to a MemoryLocker.
func WithLocker(l Locker) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.locker = l
		}
	}
}

// WithLockTTL sets how long a submission lock may be held.
func WithLockTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService creates a Service. A nil submitter uses a SimulatedSubmitter
// with DefaultSubmitDelay.
func NewService(submitter Submitter, opts ...ServiceOption) *Service {
	if submitter == nil {
		submitter = NewSimulatedSubmitter(DefaultSubmitDelay)
	}
	s := &Service{
		submitter: submitter,
		locker:    NewMemoryLocker(),
		lockTTL:   DefaultLockTTL,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate normalizes and validates data.
func (s *Service) Validate(data FormData) Result {
	return Validate(data)
}

// Submit starts delivering data and returns a future for the receipt.
// key identifies the sender (usually the client IP); while a submission for
// key is in flight, further calls fail with ErrSubmissionInProgress.
// Invalid data fails with ErrInvalidSubmission without reaching the submitter.
func (s *Service) Submit(ctx context.Context, key string, data FormData) *async.Future[Receipt] {
	data = data.Normalize()
	if !Validate(data).IsValid {
		return async.Failed[Receipt](ErrInvalidSubmission)
	}

	token, err := s.locker.Acquire(ctx, key, s.lockTTL)
	if err != nil {
		if !errors.Is(err, ErrSubmissionInProgress) {
			s.log.ErrorContext(ctx, "failed to acquire submission lock",
				logger.Error(err),
				slog.String("lock_key", key),
				logger.Component("contact"),
			)
		}
		return async.Failed[Receipt](err)
	}

	s.log.DebugContext(ctx, "contact form submitted",
		slog.String("name", data.Name),
		slog.String("email", sanitizer.MaskEmail(data.Email)),
		slog.String("phone", sanitizer.MaskPhone(data.Phone)),
		slog.Int("message_length", len(data.Message)),
		logger.Component("contact"),
	)

	var ran atomic.Bool
	future := async.Async(ctx, data, func(ctx context.Context, data FormData) (Receipt, error) {
		ran.Store(true)
		defer s.release(context.WithoutCancel(ctx), key, token)
		start := time.Now()

		receipt, err := s.submitter.Submit(ctx, data)
		if err != nil {
			if ctx.Err() == nil && !errors.Is(err, ErrDeliveryFailed) {
				err = fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
			}
			s.log.WarnContext(ctx, "contact form delivery failed",
				logger.Error(err),
				logger.Duration(time.Since(start)),
				logger.Event("submit_failed"),
			)
			return Receipt{}, err
		}

		s.log.InfoContext(ctx, "contact form delivered",
			logger.SubmissionID(receipt.ID),
			logger.Duration(time.Since(start)),
			logger.Event("submitted"),
		)
		return receipt, nil
	})

	// Async skips fn when ctx is already done.
	go func() {
		<-future.Done()
		if !ran.Load() {
			s.release(context.WithoutCancel(ctx), key, token)
		}
	}()

	return future
}

func (s *Service) release(ctx context.Context, key, token string) {
	if err := s.locker.Release(ctx, key, token); err != nil {
		s.log.WarnContext(ctx, "failed to release submission lock",
			logger.Error(err),
			slog.String("lock_key", key),
		)
	}
}
