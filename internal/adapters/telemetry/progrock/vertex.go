package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/shrink/internal/core/domain"
)

// Vertex implements ports.Vertex on top of a progrock vertex.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer for the process's standard output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer for the process's error output.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log adds a line to the vertex output. Warnings and errors go to the
// error stream.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "shrink: %s: %s\n", level, msg)
}

// Complete marks the vertex as done. A cancelled context marks it canceled
// rather than failed.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
