// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"context"
	"fmt"

	"github.com/pdiddy/extractor-kit/pkg/types"
)

// Func is the domain logic of an extractor. It reads in and records its
// findings on out. A returned error fails the whole invocation.
type Func func(ctx context.Context, in types.Input, out *types.Output) error

// Run drives one invocation and returns the process exit status. In
// discovery mode it writes d and returns 0 without reading input. Otherwise
// it reads the input, calls fn with the invocation's output document, and
// writes that document. Any failure is reported once on stderr and returns
// 1 with no output document written.
//
//	func main() {
//		os.Exit(extractor.Run(descriptor, extract))
//	}
func Run(d types.Descriptor, fn Func, opts ...Option) int {
	r := New(opts...)

	if ok, err := Discover(r.args, r.stdout, d); ok {
		if err != nil {
			return r.fail(d, err)
		}
		return 0
	}

	in, err := r.Input()
	if err != nil {
		return r.fail(d, err)
	}

	if err := fn(r.ctx, in, r.out); err != nil {
		return r.fail(d, err)
	}

	if err := r.WriteOutput(); err != nil {
		return r.fail(d, err)
	}
	return 0
}

func (r *Runtime) fail(d types.Descriptor, err error) int {
	name := d.Name
	if name == "" {
		name = "extractor"
	}
	fmt.Fprintf(r.stderr, "%s: %v\n", name, err)
	return 1
}
