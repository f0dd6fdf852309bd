// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// Options are the presentation switches a format handler may honor.
type Options struct {
	Header   bool
	Products bool // attach amplicon sequences where the format allows
}

// StreamFunc consumes in until it is closed and writes one format.
type StreamFunc[T any] func(w io.Writer, in <-chan T, o Options) error

// Registry maps format name → handler for one result kind.
type Registry[T any] struct {
	kind string
	m    map[string]StreamFunc[T]
}

// NewRegistry returns an empty registry; kind names it in error messages.
func NewRegistry[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, m: map[string]StreamFunc[T]{}}
}

// Register adds or replaces (last wins) a format handler.
func (r *Registry[T]) Register(format string, fn StreamFunc[T]) { r.m[format] = fn }

// Formats lists the registered format names, sorted.
func (r *Registry[T]) Formats() []string {
	out := make([]string, 0, len(r.m))
	for f := range r.m {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Has reports whether format is registered.
func (r *Registry[T]) Has(format string) bool {
	_, ok := r.m[format]
	return ok
}

// Start spins up a writer goroutine for format. The returned channel must be
// closed by the caller; the error channel yields exactly one value. Items
// sent after a write failure are drained and dropped.
func (r *Registry[T]) Start(out io.Writer, format string, o Options, bufSize int) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	errCh := make(chan error, 1)

	fn, ok := r.m[format]
	go func() {
		var err error
		if !ok {
			err = fmt.Errorf("unknown %s format %q (no writer registered)", r.kind, format)
		} else {
			err = fn(out, in, o)
		}
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}
