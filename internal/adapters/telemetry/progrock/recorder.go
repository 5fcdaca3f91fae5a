// Package progrock records ProGuard runs as progrock vertices and keeps the
// last run in a journal file.
package progrock

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultJournal is the journal location relative to the working directory.
var DefaultJournal = filepath.Join(".shrink", "journal.json")

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry. The progrock writer is opened on the
// first Record call, so commands that never record leave the journal alone.
type Recorder struct {
	journal string
	open    func() (progrock.Writer, error)

	mu      sync.Mutex
	w       progrock.Writer
	rec     *progrock.Recorder
	openErr error
}

// New creates a Recorder writing a fresh journal at path on the first run.
func New(path string) *Recorder {
	return &Recorder{
		journal: path,
		open: func() (progrock.Writer, error) {
			if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
				return nil, err
			}
			return progrock.CreateJournal(path)
		},
	}
}

// NewRecorder creates a Recorder sending updates to w. LastRun reads the
// journal at path, which may be empty when w is not a journal.
func NewRecorder(w progrock.Writer, path string) *Recorder {
	return &Recorder{
		journal: path,
		open:    func() (progrock.Writer, error) { return w, nil },
	}
}

// Record starts a focused vertex named name and attaches it to the returned context.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	rec := r.recorder()
	v := &Vertex{vertex: rec.Vertex(digest.FromString(name), name, progrock.Focused())}
	return ports.ContextWithVertex(ctx, v), v
}

func (r *Recorder) recorder() *progrock.Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rec != nil {
		return r.rec
	}

	w, err := r.open()
	if err != nil {
		r.openErr = zerr.With(zerr.Wrap(err, "failed to open run journal"), "path", r.journal)
		w = progrock.Discard{}
	}
	r.w = w
	r.rec = progrock.NewRecorder(w)
	return r.rec
}

// Close completes the recording and closes the writer. A journal that could
// not be opened is reported here.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rec == nil {
		return nil
	}
	r.rec.Complete()
	if err := r.rec.Close(); err != nil {
		return zerr.Wrap(err, "failed to close run journal")
	}
	return r.openErr
}
