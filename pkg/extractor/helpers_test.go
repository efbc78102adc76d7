// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"errors"
	"io"
	"testing"
)

var errBroken = errors.New("broken pipe")

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errBroken }

// failReader fails after yielding data once.
type failReader struct {
	data []byte
	done bool
}

func (f *failReader) Read(p []byte) (int, error) {
	if !f.done && len(f.data) > 0 {
		f.done = true
		return copy(p, f.data), nil
	}
	return 0, errBroken
}

// forbiddenReader fails the test if anything reads from it.
type forbiddenReader struct{ t *testing.T }

func (f forbiddenReader) Read([]byte) (int, error) {
	f.t.Helper()
	f.t.Error("input channel was read")
	return 0, io.EOF
}

// countingReader counts Read calls.
type countingReader struct {
	r     io.Reader
	calls int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.calls++
	return c.r.Read(p)
}
