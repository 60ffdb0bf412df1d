package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultSubmitDelay is how long SimulatedSubmitter takes to "send".
const DefaultSubmitDelay = 2000 * time.Millisecond

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func newReceipt(now time.Time) Receipt {
	return Receipt{ID: uuid.NewString(), SubmittedAt: now.UTC()}
}

// Submitter delivers a validated submission.
type Submitter interface {
	Submit(ctx context.Context, data FormData) (Receipt, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, data FormData) (Receipt, error)

func (f SubmitterFunc) Submit(ctx context.Context, data FormData) (Receipt, error) {
	return f(ctx, data)
}

// SimulatedSubmitter stands in for a real backend: it waits Delay and succeeds.
type SimulatedSubmitter struct {
	Delay time.Duration
}

// NewSimulatedSubmitter returns a submitter that waits delay before succeeding.
// A non-positive delay falls back to DefaultSubmitDelay.
func NewSimulatedSubmitter(delay time.Duration) *SimulatedSubmitter {
	if delay <= 0 {
		delay = DefaultSubmitDelay
	}
	return &SimulatedSubmitter{Delay: delay}
}

// Submit waits for the configured delay or until ctx is done.
func (s *SimulatedSubmitter) Submit(ctx context.Context, _ FormData) (Receipt, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	return newReceipt(time.Now()), nil
}
