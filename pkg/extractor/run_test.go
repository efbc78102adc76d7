// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/extractor-kit/pkg/types"
)

func echoBehavior(_ context.Context, in types.Input, out *types.Output) error {
	if b, ok := in.Resource["behavior"].(string); ok {
		out.Logf("Found behavior %s", b)
		out.SetMeta("behavior_python", b)
	}
	out.SetCache("behavior_python", true)
	return nil
}

func TestRunDiscovery(t *testing.T) {
	var stdout, stderr bytes.Buffer
	called := false
	code := Run(behaviorDescriptor, func(context.Context, types.Input, *types.Output) error {
		called = true
		return nil
	},
		WithArgs([]string{MetaFlag}),
		WithStdin(forbiddenReader{t}),
		WithStdout(&stdout),
		WithStderr(&stderr),
	)

	assert.Equal(t, 0, code)
	assert.False(t, called, "extractor function ran in discovery mode")
	assert.Equal(t, `{"name":"Python extract!","types":["Manifest"],"cacheKey":"behavior_python"}`, stdout.String())
	assert.Zero(t, stderr.Len())
}

func TestRunNormal(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(behaviorDescriptor, echoBehavior,
		WithArgs(nil),
		WithStdin(strings.NewReader(`{"resource": {"behavior": "walk"}}`)),
		WithStdout(&stdout),
		WithStderr(&stderr),
	)

	assert.Equal(t, 0, code)
	assert.Equal(t,
		`{"meta":{"behavior_python":"walk"},"caches":{"behavior_python":true},"logs":["Found behavior walk"]}`,
		stdout.String())
	assert.Zero(t, stderr.Len(), "successful runs must not write to stderr")
}

func TestRunPassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	var got any
	Run(behaviorDescriptor, func(ctx context.Context, _ types.Input, _ *types.Output) error {
		got = ctx.Value(key{})
		return nil
	},
		WithArgs(nil),
		WithContext(ctx),
		WithStdin(strings.NewReader(`{}`)),
		WithStdout(&bytes.Buffer{}),
	)
	assert.Equal(t, "v", got)
}

func TestRunFailures(t *testing.T) {
	errDomain := errors.New("no manifest")

	tests := []struct {
		name       string
		args       []string
		stdin      string
		stdout     func() *failOrBuffer
		fn         Func
		wantStderr string
	}{
		{
			name:       "malformed input",
			stdin:      `{"resource":`,
			fn:         echoBehavior,
			wantStderr: "Python extract!: extractor parse error",
		},
		{
			name:       "empty input",
			stdin:      ``,
			fn:         echoBehavior,
			wantStderr: "Python extract!: extractor parse error",
		},
		{
			name:  "extractor error",
			stdin: `{}`,
			fn: func(_ context.Context, _ types.Input, out *types.Output) error {
				out.SetMeta("partial", true)
				return errDomain
			},
			wantStderr: "Python extract!: no manifest",
		},
		{
			name:       "output write failure",
			stdin:      `{}`,
			stdout:     func() *failOrBuffer { return &failOrBuffer{fail: true} },
			fn:         echoBehavior,
			wantStderr: "Python extract!: extractor io error",
		},
		{
			name:       "descriptor write failure",
			args:       []string{MetaFlag},
			stdout:     func() *failOrBuffer { return &failOrBuffer{fail: true} },
			fn:         echoBehavior,
			wantStderr: "Python extract!: extractor io error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &failOrBuffer{}
			if tt.stdout != nil {
				stdout = tt.stdout()
			}
			var stderr bytes.Buffer
			code := Run(behaviorDescriptor, tt.fn,
				WithArgs(tt.args),
				WithStdin(strings.NewReader(tt.stdin)),
				WithStdout(stdout),
				WithStderr(&stderr),
			)

			assert.Equal(t, 1, code)
			assert.Zero(t, stdout.buf.Len(), "no output document on failure")
			assert.True(t, strings.HasPrefix(stderr.String(), tt.wantStderr), "stderr = %q", stderr.String())
			assert.Equal(t, 1, strings.Count(stderr.String(), "\n"), "error reported once")
		})
	}
}

func TestRunToleratesUnexpectedFieldShapes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(behaviorDescriptor, echoBehavior,
		WithArgs(nil),
		WithStdin(strings.NewReader(`{"context":{"id":1},"meta":[],"resource":{"behavior":"walk"}}`)),
		WithStdout(&stdout),
		WithStderr(&stderr),
	)

	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t,
		`{"meta":{"behavior_python":"walk"},"caches":{"behavior_python":true},"logs":["Found behavior walk"]}`,
		stdout.String())
}

func TestRunUnnamedExtractorError(t *testing.T) {
	var stderr bytes.Buffer
	Run(types.Descriptor{}, echoBehavior,
		WithArgs(nil),
		WithStdin(strings.NewReader(`nope`)),
		WithStdout(&bytes.Buffer{}),
		WithStderr(&stderr),
	)
	assert.True(t, strings.HasPrefix(stderr.String(), "extractor: "), "stderr = %q", stderr.String())
}

// failOrBuffer buffers writes, or rejects them when fail is set.
type failOrBuffer struct {
	fail bool
	buf  bytes.Buffer
}

func (f *failOrBuffer) Write(p []byte) (int, error) {
	if f.fail {
		return 0, errBroken
	}
	return f.buf.Write(p)
}
