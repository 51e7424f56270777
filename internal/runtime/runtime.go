package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/object"
)

// Runtime embeds a Risor VM and exposes the add host function to scripts.
type Runtime struct {
	logOut io.Writer
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithLogWriter sets where the script-facing log object writes.
// Defaults to os.Stderr.
func WithLogWriter(w io.Writer) RuntimeOption {
	return func(r *Runtime) {
		r.logOut = w
	}
}

// NewRuntime creates a Runtime.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{logOut: os.Stderr}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Eval executes Risor source with all standard globals plus any extra
// globals provided by the caller, and returns the script's final value
// converted to Go. Integers come back as int64, floats as float64, strings
// as string, booleans as bool and nil as nil. Any other value is returned
// as its Risor inspect string.
func (r *Runtime) Eval(ctx context.Context, source string, extraGlobals map[string]any) (any, error) {
	return r.eval(ctx, source, "<inline>", extraGlobals)
}

func (r *Runtime) eval(ctx context.Context, source, label string, extraGlobals map[string]any) (any, error) {
	globals := r.buildGlobals(extraGlobals)

	var opts []risor.Option
	for name, val := range globals {
		opts = append(opts, risor.WithGlobal(name, val))
	}

	result, err := risor.Eval(ctx, source, opts...)
	if err != nil {
		return nil, fmt.Errorf("runtime: script %s: %w", label, err)
	}
	return toGo(result), nil
}

// buildGlobals constructs the full set of globals exposed to Risor scripts.
func (r *Runtime) buildGlobals(extra map[string]any) map[string]any {
	globals := map[string]any{
		"add": makeAddFn(),
		"log": mustProxy(&logObject{prefix: "adder", out: r.logOut}),
	}
	for k, v := range extra {
		globals[k] = v
	}
	return globals
}

func toGo(obj object.Object) any {
	switch v := obj.(type) {
	case nil:
		return nil
	case *object.NilType:
		return nil
	case *object.Int:
		return v.Value()
	case *object.Float:
		return v.Value()
	case *object.String:
		return v.Value()
	case *object.Bool:
		return v.Value()
	default:
		return obj.Inspect()
	}
}

func mustProxy(v any) object.Object {
	p, err := object.NewProxy(v)
	if err != nil {
		panic(fmt.Sprintf("runtime: proxy error: %v", err))
	}
	return p
}
