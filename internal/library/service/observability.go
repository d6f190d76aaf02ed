package service

import (
	"context"
	"time"

	"librarian/internal/platform/events"
	"librarian/pkg/platform/requestcontext"
	"librarian/pkg/platform/tracer"
)

// Observability helpers for audit logging, event publishing, and metrics.

// audit logs a successful mutation and publishes it as a domain event.
// Publish failures are logged and never fail the operation.
func (s *Service) audit(ctx context.Context, event string, payload any, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)

	if s.publisher == nil {
		return
	}
	evt, err := events.New(event, s.now(), requestID, payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build domain event", "event", event, "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish domain event",
			"event", event,
			"event_id", evt.ID,
			"error", err,
		)
	}
}

// reject records a business rule rejection.
func (s *Service) reject(ctx context.Context, reason string, attributes ...any) {
	args := append(attributes, "reason", reason, "log_type", "standard")
	s.logger.WarnContext(ctx, "library operation rejected", args...)
	if s.metrics != nil {
		s.metrics.IncrementRejection(reason)
	}
}

// startOp opens a span and returns a finisher that ends it and records latency.
func (s *Service) startOp(ctx context.Context, span, operation string, attrs ...tracer.Attribute) (context.Context, func(err error)) {
	start := time.Now()
	ctx, sp := s.tracer.Start(ctx, span, attrs...)
	return ctx, func(err error) {
		sp.End(err)
		if s.metrics != nil {
			s.metrics.ObserveOperation(operation, start)
		}
	}
}

func (s *Service) incrementBorrowerRegistered() {
	if s.metrics != nil {
		s.metrics.IncrementBorrowerRegistered()
	}
}

func (s *Service) incrementBookRegistered() {
	if s.metrics != nil {
		s.metrics.IncrementBookRegistered()
	}
}

func (s *Service) incrementBorrowed() {
	if s.metrics != nil {
		s.metrics.IncrementBorrowed()
	}
}

func (s *Service) incrementReturned() {
	if s.metrics != nil {
		s.metrics.IncrementReturned()
	}
}
