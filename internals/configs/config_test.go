package configs

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormLogger "gorm.io/gorm/logger"
)

func TestGormLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(orig) })

	l := NewGormLogger()
	require.NotNil(t, l)

	// query cepat → [QUERY]
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT 1`, 1
	}, nil)
	assert.Contains(t, buf.String(), "[QUERY]")

	// melewati ambang lambat → [SLOW SQL]
	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return `SELECT pg_sleep(1)`, 0
	}, nil)
	assert.Contains(t, buf.String(), "[SLOW SQL]")
}

func TestGormLoggerLogMode(t *testing.T) {
	l := NewGormLogger()
	assert.Same(t, l, l.LogMode(gormLogger.Silent))
}
