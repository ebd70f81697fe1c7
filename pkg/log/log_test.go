package log

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForContext(t *testing.T) {
	SetupTestLogger()
	hook := test.NewGlobal()
	defer hook.Reset()

	t.Setenv("APP_ENV", "production")

	ctx, correlationID := WithCorrelationID(context.Background())
	ctx = WithRunID(ctx, "run-0001")

	ForContext(ctx).WithField("periods", 6).WithError(errors.New("boom")).Error("falha")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, correlationID, entry.Data["correlation_id"])
	assert.Equal(t, "run-0001", entry.Data["run_id"])
	assert.Equal(t, 6, entry.Data["periods"])
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	SetupTestLogger()
	hook := test.NewGlobal()
	defer hook.Reset()

	t.Setenv("APP_ENV", "development")

	L.WithFields(Fields{
		"category":        "Rent",
		"forecast_method": "arima",
		"query":           "periods=3",
	}).Info("categoria prevista")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Rent", entry.Data["category"])
	assert.Equal(t, "arima", entry.Data["forecast_method"])
	assert.NotContains(t, entry.Data, "query")
}

func TestGetCorrelationID_Empty(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestConfigure_InvalidLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Configure("verbose")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Configure("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
