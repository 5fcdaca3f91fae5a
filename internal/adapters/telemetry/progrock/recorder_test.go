package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/shrink/internal/adapters/telemetry/progrock"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
)

type captureWriter struct {
	mu      sync.Mutex
	updates []*vprogrock.StatusUpdate
	closed  bool
}

func (w *captureWriter) WriteStatus(update *vprogrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, update)
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *captureWriter) logs() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var buf bytes.Buffer
	for _, u := range w.updates {
		for _, l := range u.Logs {
			buf.Write(l.Data)
		}
	}
	return buf.String()
}

func (w *captureWriter) vertexNames() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var names []string
	for _, u := range w.updates {
		for _, v := range u.Vertexes {
			names = append(names, v.Name)
		}
	}
	return names
}

func TestRecorder_Record(t *testing.T) {
	w := &captureWriter{}
	recorder := progrock.NewRecorder(w, "")

	ctx, vertex := recorder.Record(context.Background(), "proguard app")

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("ProGuard, version 7.4.2\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("Warning: there were 2 unresolved references\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelInfo, "input hash 0123456789abcdef")
	vertex.Complete(errors.New("exit status 1"))

	require.NoError(t, recorder.Close())

	assert.True(t, w.closed)
	assert.Contains(t, w.vertexNames(), "proguard app")
	logs := w.logs()
	assert.Contains(t, logs, "ProGuard, version 7.4.2")
	assert.Contains(t, logs, "unresolved references")
	assert.Contains(t, logs, "shrink: INFO: input hash 0123456789abcdef")
}

func TestRecorder_CloseWithoutRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".shrink", "journal.json")
	recorder := progrock.New(path)

	require.NoError(t, recorder.Close())
	assert.NoFileExists(t, path)

	run, err := recorder.LastRun()
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestRecorder_Journal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		failed   bool
		canceled bool
		errText  string
	}{
		{name: "success"},
		{name: "failure", err: errors.New("exit status 3"), failed: true, errText: "exit status 3"},
		{name: "canceled", err: context.Canceled, failed: true, canceled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".shrink", "journal.json")
			recorder := progrock.New(path)

			_, vertex := recorder.Record(context.Background(), "proguard app")
			_, err := vertex.Stdout().Write([]byte("ProGuard, version 7.4.2\n"))
			require.NoError(t, err)
			vertex.Log(domain.LogLevelWarn, "output hash unavailable")
			vertex.Complete(tt.err)
			require.NoError(t, recorder.Close())

			require.FileExists(t, path)

			run, err := progrock.ReadJournal(path)
			require.NoError(t, err)
			require.NotNil(t, run)

			assert.Equal(t, "proguard app", run.Name)
			assert.Contains(t, string(run.Output), "ProGuard, version 7.4.2\n")
			assert.Contains(t, string(run.Output), "shrink: WARN: output hash unavailable\n")
			assert.True(t, run.Finished())
			assert.GreaterOrEqual(t, run.Duration(), time.Duration(0))
			assert.Equal(t, tt.failed, run.Failed())
			assert.Equal(t, tt.canceled, run.Canceled)
			assert.Equal(t, tt.errText, run.Error)
		})
	}
}

func TestRecorder_JournalReplacedEachRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	first := progrock.New(path)
	_, v := first.Record(context.Background(), "proguard old")
	v.Complete(nil)
	require.NoError(t, first.Close())

	second := progrock.New(path)
	_, v = second.Record(context.Background(), "proguard new")
	v.Complete(nil)
	require.NoError(t, second.Close())

	run, err := second.LastRun()
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, "proguard new", run.Name)
}

func TestRecorder_OpenFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	recorder := progrock.New(filepath.Join(blocker, "journal.json"))
	_, vertex := recorder.Record(context.Background(), "proguard app")
	_, err := vertex.Stdout().Write([]byte("still accepted\n"))
	require.NoError(t, err)
	vertex.Complete(nil)

	assert.Error(t, recorder.Close())
}

func TestReadJournal(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		run, err := progrock.ReadJournal(filepath.Join(t.TempDir(), "journal.json"))
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.json")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		run, err := progrock.ReadJournal(path)
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("corrupt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := progrock.ReadJournal(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrJournalReadFailed)
	})
}
