package runtime

import (
	"context"
	"fmt"
	"io"

	"github.com/risor-io/risor/object"

	"github.com/jward/adder"
)

// makeAddFn creates the "add" host function.
//
// add(a, b) → int when both operands are ints, float otherwise
func makeAddFn() *object.Builtin {
	return object.NewBuiltin("add", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.NewArgsError("add", 2, len(args))
		}

		a, aInt, ok := numberArg(args[0])
		if !ok {
			return object.Errorf("add: argument 1 must be a number, got %s", args[0].Type())
		}
		b, bInt, ok := numberArg(args[1])
		if !ok {
			return object.Errorf("add: argument 2 must be a number, got %s", args[1].Type())
		}

		if aInt && bInt {
			return object.NewInt(adder.Add(args[0].(*object.Int).Value(), args[1].(*object.Int).Value()))
		}
		return object.NewFloat(adder.Add(a, b))
	})
}

// numberArg reports the float value of v and whether v is an int.
func numberArg(v object.Object) (f float64, isInt bool, ok bool) {
	switch n := v.(type) {
	case *object.Int:
		return float64(n.Value()), true, true
	case *object.Float:
		return n.Value(), false, true
	}
	return 0, false, false
}

// logObject provides log.info/warn/error methods for Risor scripts.
type logObject struct {
	prefix string
	out    io.Writer
}

func (l *logObject) Info(msg string) {
	fmt.Fprintf(l.out, "[%s] INFO: %s\n", l.prefix, msg)
}

func (l *logObject) Warn(msg string) {
	fmt.Fprintf(l.out, "[%s] WARN: %s\n", l.prefix, msg)
}

func (l *logObject) Error(msg string) {
	fmt.Fprintf(l.out, "[%s] ERROR: %s\n", l.prefix, msg)
}
