package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"neighborly/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Env.Log.SlowQuery = 50 * time.Millisecond

	return newGormSlogLogger(base, cfg), &buf
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "users" WHERE email = 'a@example.com'`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("unexpected failure logs at error", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("connection reset"))

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "connection reset")
	})

	t.Run("duplicate key is not an error", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrDuplicatedKey)
		l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("duplicate key shows at debug", func(t *testing.T) {
		l, buf := newTestGormLogger(true)

		l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrDuplicatedKey)

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "GORM query rejected")
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query is quiet outside debug", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlAndRows, nil)

		assert.Empty(t, buf.String())
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		l, buf := newTestGormLogger(true)

		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
