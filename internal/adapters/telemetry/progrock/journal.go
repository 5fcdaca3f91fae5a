package progrock

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/vito/progrock"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/zerr"
)

// LastRun replays the journal and returns the last vertex it recorded.
func (r *Recorder) LastRun() (*domain.RunLog, error) {
	return ReadJournal(r.journal)
}

// ReadJournal replays the progrock journal at path. It returns nil when the
// journal does not exist or holds no vertex.
func ReadJournal(path string) (*domain.RunLog, error) {
	//nolint:gosec // path is the configured journal location
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(zerr.With(zerr.Wrap(err, "failed to open run journal"), "path", path), domain.ErrJournalReadFailed)
	}
	defer func() { _ = f.Close() }()

	var (
		last    *progrock.Vertex
		outputs = make(map[string][]byte)
	)

	dec := json.NewDecoder(f)
	for {
		var update progrock.StatusUpdate
		if err := dec.Decode(&update); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Join(zerr.With(zerr.Wrap(err, "failed to decode run journal"), "path", path), domain.ErrJournalReadFailed)
		}

		for _, v := range update.GetVertexes() {
			if last == nil || last.GetId() != v.GetId() {
				delete(outputs, v.GetId())
			}
			last = v
		}
		for _, l := range update.GetLogs() {
			outputs[l.GetVertex()] = append(outputs[l.GetVertex()], l.GetData()...)
		}
	}

	if last == nil {
		return nil, nil
	}

	run := &domain.RunLog{
		Name:     last.GetName(),
		Output:   outputs[last.GetId()],
		Error:    last.GetError(),
		Canceled: last.GetCanceled(),
	}
	if ts := last.GetStarted(); ts != nil {
		run.Started = ts.AsTime()
	}
	if ts := last.GetCompleted(); ts != nil {
		run.Completed = ts.AsTime()
	}
	return run, nil
}
