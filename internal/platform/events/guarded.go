package events

import (
	"context"
	"log/slog"

	"librarian/pkg/platform/circuit"
)

// GuardedPublisher sends events to a primary publisher behind a circuit
// breaker. While the circuit is open, events go to the fallback instead.
type GuardedPublisher struct {
	primary  Publisher
	fallback Publisher
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

func NewGuardedPublisher(primary, fallback Publisher, breaker *circuit.Breaker, logger *slog.Logger) *GuardedPublisher {
	return &GuardedPublisher{
		primary:  primary,
		fallback: fallback,
		breaker:  breaker,
		logger:   logger,
	}
}

// Publish tries the primary when the breaker allows it. A primary failure is
// recorded and the event is handed to the fallback; the primary error is still
// returned so callers can log it.
func (p *GuardedPublisher) Publish(ctx context.Context, event Event) error {
	if !p.breaker.Allow() {
		return p.fallback.Publish(ctx, event)
	}

	err := p.primary.Publish(ctx, event)
	if err == nil {
		if p.breaker.RecordSuccess() {
			p.logger.InfoContext(ctx, "event publisher recovered", "breaker", p.breaker.Name())
		}
		return nil
	}

	if p.breaker.RecordFailure() {
		p.logger.WarnContext(ctx, "event publisher circuit opened",
			"breaker", p.breaker.Name(),
			"error", err,
		)
	}
	if fbErr := p.fallback.Publish(ctx, event); fbErr != nil {
		p.logger.ErrorContext(ctx, "fallback publish failed", "event_id", event.ID, "error", fbErr)
	}
	return err
}
