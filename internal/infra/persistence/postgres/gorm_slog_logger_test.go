package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"ecobazaar/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
		assert.Contains(t, buf.String(), "query failed")
		assert.Contains(t, buf.String(), "component=gorm")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "slow query")
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		l, buf = newTestGormLogger(true)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newTestGormLogger(true)
		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}
