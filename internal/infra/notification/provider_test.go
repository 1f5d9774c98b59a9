package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"neighborly/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfig_WithoutFirebase(t *testing.T) {
	svc, err := NewFromConfig(context.Background(), &config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, err)
	assert.Nil(t, svc)
}
