package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishbay/wishbay/pkg/logger"
)

func TestNewJSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithService("wishbay", "test"),
	)

	log.Info("hello", logger.Component("authn"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "wishbay", record["service"])
	assert.Equal(t, "test", record["env"])
	assert.Equal(t, "authn", record["component"])
}

func TestPrincipalIDAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("acted", logger.PrincipalID("d5f1c1fa-0000-4000-8000-000000000001"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "d5f1c1fa-0000-4000-8000-000000000001", record["principal_id"])

	buf.Reset()
	log.Info("anonymous", logger.PrincipalID(nil))

	record = map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "principal_id")
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelWarn),
	)

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestNewTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
	)

	log.Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func TestNewDiscard(t *testing.T) {
	t.Parallel()

	log := logger.NewDiscard()
	require.NotNil(t, log)
	log.Info("nowhere") // must not panic
}
