package database

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/helixml/wikitree/internal/config"
	"github.com/helixml/wikitree/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openLogged(t *testing.T, level string, opts ...Option) (Database, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := log.NewLoggerWithWriter(&buf, config.LogFormatJSON, level)
	opts = append([]Option{WithLogger(l.Slog())}, opts...)
	db, err := NewDatabase(context.Background(), "sqlite:///"+filepath.Join(t.TempDir(), "log.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	buf.Reset()
	return db, &buf
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec), sc.Text())
		out = append(out, rec)
	}
	return out
}

func TestSQLLogger_FailureCarriesContextIDs(t *testing.T) {
	db, buf := openLogged(t, "INFO")
	ctx := log.WithViewerID(log.WithCorrelationID(context.Background(), "corr-9"), "alice")

	require.Error(t, db.Session(ctx).Exec("SELECT * FROM missing_table").Error)

	recs := records(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "sql failed", recs[0]["msg"])
	assert.Equal(t, "ERROR", recs[0]["level"])
	assert.Equal(t, "corr-9", recs[0]["correlation_id"])
	assert.Equal(t, "alice", recs[0]["viewer_id"])
	assert.Contains(t, recs[0]["sql"], "missing_table")
}

func TestSQLLogger_DebugOnlyWhenEnabled(t *testing.T) {
	db, buf := openLogged(t, "INFO")
	require.NoError(t, db.Session(context.Background()).Exec("SELECT 1").Error)
	assert.Empty(t, records(t, buf))

	db, buf = openLogged(t, "DEBUG")
	require.NoError(t, db.Session(context.Background()).Exec("SELECT 1").Error)
	recs := records(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "sql", recs[0]["msg"])
	assert.Equal(t, "DEBUG", recs[0]["level"])
}

func TestSQLLogger_SlowQueryWarns(t *testing.T) {
	db, buf := openLogged(t, "WARN", WithSlowQueryThreshold(time.Nanosecond))

	require.NoError(t, db.Session(context.Background()).Exec("SELECT 1").Error)

	recs := records(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "slow sql", recs[0]["msg"])
	assert.Equal(t, "WARN", recs[0]["level"])
}

func TestConfigurePool(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, db.ConfigurePool(5, 2, time.Minute))

	sqlDB, err := db.GORM().DB()
	require.NoError(t, err)
	assert.Equal(t, 5, sqlDB.Stats().MaxOpenConnections)
}
