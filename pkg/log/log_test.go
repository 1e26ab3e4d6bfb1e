package log

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestLogger_DevelopmentFieldFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	var out bytes.Buffer
	SetupTestLogger(&out)

	L.WithFields(Fields{"dataset": "earlier", "irrelevant": "x"}).Info("carregado")

	assert.Contains(t, out.String(), "dataset=earlier")
	assert.NotContains(t, out.String(), "irrelevant")
}

func TestLogger_ProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	var out bytes.Buffer
	SetupTestLogger(&out)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithField("rows", 10).WithError(errors.New("falha")).Warn("aviso")

	assert.Contains(t, out.String(), "rows=10")
	assert.Contains(t, out.String(), id)
	assert.Contains(t, out.String(), "error=falha")
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	var out bytes.Buffer
	logrus.SetOutput(&out)

	assert.Equal(t, logrus.InfoLevel, Setup("verbose"))
	assert.Equal(t, logrus.DebugLevel, Setup("debug"))
}
