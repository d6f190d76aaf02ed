package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarian/pkg/platform/circuit"
)

func TestGuardedPublisher(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	primary := NewRecorder()
	fallback := NewRecorder()
	breaker := circuit.New("amqp", circuit.WithFailureThreshold(1), circuit.WithCooldown(time.Hour))
	pub := NewGuardedPublisher(primary, fallback, breaker, logger)

	evt, err := New("book.registered", time.Now(), "", map[string]string{"bookId": "1"})
	require.NoError(t, err)

	require.NoError(t, pub.Publish(ctx, evt))
	assert.Len(t, primary.Events(), 1)
	assert.Empty(t, fallback.Events())

	brokerDown := errors.New("broker down")
	primary.FailWith(brokerDown)
	assert.ErrorIs(t, pub.Publish(ctx, evt), brokerDown)
	assert.Equal(t, circuit.StateOpen, breaker.State())
	assert.Len(t, fallback.Events(), 1, "failed event handed to fallback")

	require.NoError(t, pub.Publish(ctx, evt), "open circuit skips the primary")
	assert.Len(t, fallback.Events(), 2)
	assert.Len(t, primary.Events(), 1)
}
