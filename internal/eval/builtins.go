package eval

import (
	"abacus/internal/ast"
	"abacus/internal/bigint"
	"abacus/internal/diag"
	"abacus/internal/source"
)

// Builtins lists the callable function names in sorted order.
func Builtins() []string {
	return []string{"abs", "cmp", "divmod", "max", "min", "neg", "pow", "sign"}
}

func (ev *evaluator) evalCall(id ast.ExprID, data *ast.ExprCallData) (bigint.Int, bool) {
	span := ev.builder.Exprs.Span(id)
	target, ok := ev.builder.Exprs.Ident(data.Target)
	if !ok {
		ev.report(diag.EvalUnknownFunction, ev.builder.Exprs.Span(data.Target), "only named builtin functions can be called")
		return bigint.Int{}, false
	}
	name := NormalizeName(target.Name)
	switch name {
	case "abs":
		args, ok := ev.callArgs(name, data.Args, span, 1, 1)
		if !ok {
			return bigint.Int{}, false
		}
		return args[0].Abs(), true
	case "neg":
		args, ok := ev.callArgs(name, data.Args, span, 1, 1)
		if !ok {
			return bigint.Int{}, false
		}
		return args[0].Negated(), true
	case "sign":
		args, ok := ev.callArgs(name, data.Args, span, 1, 1)
		if !ok {
			return bigint.Int{}, false
		}
		return bigint.FromInt64(int64(args[0].Sign())), true
	case "min":
		args, ok := ev.callArgs(name, data.Args, span, 1, -1)
		if !ok {
			return bigint.Int{}, false
		}
		return pick(args, func(c int) bool { return c < 0 }), true
	case "max":
		args, ok := ev.callArgs(name, data.Args, span, 1, -1)
		if !ok {
			return bigint.Int{}, false
		}
		return pick(args, func(c int) bool { return c > 0 }), true
	case "pow":
		args, ok := ev.callArgs(name, data.Args, span, 2, 2)
		if !ok {
			return bigint.Int{}, false
		}
		return ev.evalPow(args[0], args[1], span)
	case "divmod":
		args, ok := ev.callArgs(name, data.Args, span, 2, 2)
		if !ok {
			return bigint.Int{}, false
		}
		q, r, err := bigint.DivMod(args[0], args[1])
		if err != nil {
			ev.report(diag.EvalDivisionByZero, span, "division by zero")
			return bigint.Int{}, false
		}
		ev.env.Set(RemName, r)
		return q, true
	case "cmp":
		args, ok := ev.callArgs(name, data.Args, span, 2, 2)
		if !ok {
			return bigint.Int{}, false
		}
		return bigint.FromInt64(int64(args[0].Cmp(args[1]))), true
	default:
		ev.report(diag.EvalUnknownFunction, ev.builder.Exprs.Span(data.Target), "unknown function %q", target.Name)
		return bigint.Int{}, false
	}
}

// callArgs checks the argument count and evaluates the arguments left to
// right. max below zero means no upper bound.
func (ev *evaluator) callArgs(name string, args []ast.ExprID, span source.Span, min, max int) ([]bigint.Int, bool) {
	n := len(args)
	switch {
	case min == max && n != min:
		ev.report(diag.EvalBadArity, span, "%s expects %d %s, got %d", name, min, argNoun(min), n)
		return nil, false
	case n < min:
		ev.report(diag.EvalBadArity, span, "%s expects at least %d %s, got %d", name, min, argNoun(min), n)
		return nil, false
	case max >= 0 && n > max:
		ev.report(diag.EvalBadArity, span, "%s expects at most %d %s, got %d", name, max, argNoun(max), n)
		return nil, false
	}
	values := make([]bigint.Int, 0, n)
	for _, argID := range args {
		v, ok := ev.evalExpr(argID)
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

// pick folds the argument list keeping the value the comparison favors.
func pick(args []bigint.Int, better func(c int) bool) bigint.Int {
	best := args[0]
	for _, v := range args[1:] {
		if better(v.Cmp(best)) {
			best = v
		}
	}
	return best
}

func argNoun(n int) string {
	if n == 1 {
		return "argument"
	}
	return "arguments"
}
