package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"sommelier/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingLogger(debug bool, slow time.Duration) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{Persistence: &config.PersistenceConfig{Driver: "postgres", SlowQueryThreshold: slow}}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines[len(lines)-1], "nothing was logged")

	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))

	return entry
}

func TestGormSlogLogger_Trace(t *testing.T) {
	const stmt = `UPDATE "drinks" SET "num_of_review"=1 WHERE "id" = 'x'`

	testCases := []struct {
		name    string
		elapsed time.Duration
		err     error
		level   string
		msg     string
	}{
		{name: "fast statement", elapsed: time.Millisecond, level: "DEBUG", msg: "SQL statement"},
		{name: "slow statement", elapsed: 80 * time.Millisecond, level: "WARN", msg: "SQL statement slow"},
		{name: "missing row", err: gorm.ErrRecordNotFound, level: "DEBUG", msg: "SQL statement rejected"},
		{name: "duplicate review", err: errors.Wrap(&pgconn.PgError{Code: sqlStateUniqueViolation}, "insert"), level: "DEBUG", msg: "SQL statement rejected"},
		{name: "deadlock on drink row", err: &pgconn.PgError{Code: sqlStateDeadlockDetected}, level: "WARN", msg: "SQL lock contention"},
		{name: "serialization failure", err: &pgconn.PgError{Code: sqlStateSerializationFail}, level: "WARN", msg: "SQL lock contention"},
		{name: "broken connection", err: errors.New("conn closed"), level: "ERROR", msg: "SQL statement failed"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, buf := newCapturingLogger(true, 50*time.Millisecond)

			l.Trace(context.Background(), time.Now().Add(-tc.elapsed), func() (string, int64) { return stmt, 1 }, tc.err)

			entry := lastEntry(t, buf)
			assert.Equal(t, tc.level, entry["level"])
			assert.Equal(t, tc.msg, entry["msg"])
			assert.Equal(t, "gorm", entry["component"])
			assert.Equal(t, stmt, entry["sql"])
			assert.EqualValues(t, 1, entry["rows"])
			if tc.err != nil {
				assert.Equal(t, tc.err.Error(), entry["error"])
			} else {
				assert.NotContains(t, entry, "error")
			}
		})
	}
}

func TestGormSlogLogger_WarnLevelDropsRoutineStatements(t *testing.T) {
	l, buf := newCapturingLogger(false, 0)
	ctx := context.Background()
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(ctx, time.Now(), sqlFn, nil)
	l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
	l.Info(ctx, "connected to %s", "sommelier")
	assert.Zero(t, buf.Len())

	// the default threshold applies when none is configured
	l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
	assert.Equal(t, "SQL statement slow", lastEntry(t, buf)["msg"])

	l.Warn(ctx, "pool %d%% busy", 90)
	assert.Equal(t, "pool 90% busy", lastEntry(t, buf)["msg"])
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	l, buf := newCapturingLogger(true, 0)
	silent := l.LogMode(logger.Silent)

	silent.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	silent.Error(context.Background(), "boom")
	assert.Zero(t, buf.Len())

	l.Error(context.Background(), "boom")
	assert.Equal(t, "ERROR", lastEntry(t, buf)["level"])
}
