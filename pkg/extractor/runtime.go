// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extractor implements the runtime side of the extractor contract.
// An extractor is a one-shot program driven by a harness:
//
//	extractor --meta   writes {"name","types","cacheKey"} and exits 0
//	extractor          reads one JSON document from stdin and writes
//	                   {"meta","caches","logs"} to stdout
//
// A Runtime owns the single output document of an invocation and hands it
// to extractor code explicitly. Most programs only need Run.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/extractor-kit/pkg/types"
)

// Runtime carries the channels of one invocation and its output document.
// A Runtime is owned by a single goroutine and is not reused across
// invocations.
type Runtime struct {
	ctx    context.Context
	args   []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	exit   func(int)

	out *types.Output

	read    bool
	raw     []byte
	data    any
	readErr error
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithArgs sets the program arguments, excluding the program name.
// The default is os.Args[1:].
func WithArgs(args []string) Option {
	return func(r *Runtime) { r.args = args }
}

// WithStdin sets the input channel. The default is os.Stdin.
func WithStdin(in io.Reader) Option {
	return func(r *Runtime) { r.stdin = in }
}

// WithStdout sets the output channel. The default is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(r *Runtime) { r.stdout = w }
}

// WithStderr sets where Run reports a fatal error. The default is os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(r *Runtime) { r.stderr = w }
}

// WithExit replaces os.Exit for Meta.
func WithExit(exit func(int)) Option {
	return func(r *Runtime) { r.exit = exit }
}

// WithContext sets the context handed to the extractor function by Run.
func WithContext(ctx context.Context) Option {
	return func(r *Runtime) { r.ctx = ctx }
}

// New returns a Runtime with an empty output document.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		ctx:    context.Background(),
		args:   os.Args[1:],
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		exit:   os.Exit,
		out:    types.NewOutput(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Meta answers a discovery invocation with d and terminates the process
// with status 0. For any other invocation it returns nil without reading
// or writing anything. The returned error is a failed descriptor write.
func (r *Runtime) Meta(d types.Descriptor) error {
	ok, err := Discover(r.args, r.stdout, d)
	if err != nil {
		return err
	}
	if ok {
		r.exit(0)
	}
	return nil
}

// Data reads the input channel on first use and returns the parsed
// document. Later calls return the same result without reading again.
func (r *Runtime) Data() (any, error) {
	if !r.read {
		r.read = true
		r.raw, r.readErr = io.ReadAll(r.stdin)
		if r.readErr != nil {
			r.readErr = fmt.Errorf("%w: reading input: %w", ErrIO, r.readErr)
		} else {
			r.readErr = parse(r.raw, &r.data)
		}
	}
	return r.data, r.readErr
}

// Input returns the typed view of the input document. A document that is
// not a JSON object yields a view with only Raw set. Each known key is
// decoded on its own; a key whose value has an unexpected shape (a string
// "context", say) is left at its zero value and stays reachable via Raw.
func (r *Runtime) Input() (types.Input, error) {
	data, err := r.Data()
	if err != nil {
		return types.Input{}, err
	}
	in := types.Input{Raw: data}
	if _, ok := data.(map[string]any); !ok {
		return in, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r.raw, &fields); err != nil {
		return types.Input{}, fmt.Errorf("%w: decoding input view: %w", ErrParse, err)
	}
	decodeField(fields, "context", &in.Context)
	decodeField(fields, "meta", &in.Meta)
	decodeField(fields, "indicies", &in.Indices)
	decodeField(fields, "caches", &in.Caches)
	decodeField(fields, "config", &in.Config)
	decodeField(fields, "resource", &in.Resource)
	return in, nil
}

// decodeField decodes fields[key] into dst. dst is only assigned when the
// whole value decodes.
func decodeField[T any](fields map[string]json.RawMessage, key string, dst *T) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*dst = v
}

// Output returns the live output document of this invocation.
func (r *Runtime) Output() *types.Output {
	return r.out
}

// Log appends message to the output logs.
func (r *Runtime) Log(message string) {
	r.out.Log(message)
}

// SetMeta sets meta[key] on the output document.
func (r *Runtime) SetMeta(key string, value any) {
	r.out.SetMeta(key, value)
}

// SetCache sets caches[key] on the output document.
func (r *Runtime) SetCache(key string, value any) {
	r.out.SetCache(key, value)
}

// WriteOutput writes the output document to the output channel.
func (r *Runtime) WriteOutput() error {
	return WriteOutput(r.stdout, r.out)
}
