package amqp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/pkg/log"
)

type fakeChannel struct {
	exchange   string
	routingKey string
	published  []amqp091.Publishing
	err        error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	f.exchange, f.routingKey = exchange, key
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func TestPublisher_PublishRunCompleted(t *testing.T) {
	now := time.Date(2024, 9, 1, 6, 0, 0, 0, time.UTC)
	run := domain.ForecastRun{RunID: "run-9", Input: "ledger.csv", Output: "forecast.xlsx", Periods: 6, Categories: 3, ARIMAFits: 2, Fallbacks: 1}

	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "Publica a execução como JSON persistente"},
		{name: "Erro do canal é propagado", err: errors.New("channel closed"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := &fakeChannel{err: tt.err}
			p := &Publisher{channel: ch, exchange: "budget", routingKey: "forecast.completed", now: func() time.Time { return now }}

			ctx, correlationID := log.WithCorrelationID(context.Background())
			err := p.PublishRunCompleted(ctx, run)

			assert.Equal(t, "budget", ch.exchange)
			assert.Equal(t, "forecast.completed", ch.routingKey)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Len(t, ch.published, 1)
			msg := ch.published[0]
			assert.Equal(t, "application/json", msg.ContentType)
			assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
			assert.Equal(t, "run-9", msg.MessageId)
			assert.Equal(t, correlationID, msg.CorrelationId)

			decoded, err := RunCompletedMessageFromJSON(msg.Body)
			require.NoError(t, err)
			assert.Equal(t, RunCompletedType, decoded.Type)
			assert.Equal(t, run.RunID, decoded.Run.RunID)
			assert.Equal(t, 2, decoded.Run.ARIMAFits)
			assert.True(t, now.Equal(decoded.PublishedAt))
		})
	}
}
